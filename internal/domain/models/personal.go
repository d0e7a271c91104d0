package models

// UserTask is work assigned to a team member on a client project.
type UserTask struct {
	ID                   string `json:"id"`
	UserID               string `json:"userId"`
	Title                string `json:"title"`
	Description          string `json:"description"`
	DueDate              string `json:"dueDate"`
	Status               string `json:"status"`   // pending, in_progress, completed
	Priority             string `json:"priority"` // low, medium, high
	CompletionPercentage int    `json:"completionPercentage"`
}

// InternalTask is company work rewarded with a bonus on completion.
type InternalTask struct {
	ID           string  `json:"id"`
	UserID       string  `json:"userId"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	DueDate      string  `json:"dueDate"`
	AssignedDate string  `json:"assignedDate"`
	Status       string  `json:"status"`
	Type         string  `json:"type"` // development, content, training
	BonusAmount  float64 `json:"bonusAmount"`
}

type UserIncome struct {
	ID          string  `json:"id"`
	UserID      string  `json:"userId"`
	Source      string  `json:"source"` // course, fyp, project, contract
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
}

type WorkHours struct {
	UserID      string  `json:"userId"`
	Date        string  `json:"date"`
	Hours       float64 `json:"hours"`
	Project     string  `json:"project"`
	Description string  `json:"description"`
}

// Employment holds the fixed terms the personal stats are measured against.
type Employment struct {
	UserID          string  `json:"userId"`
	BaseSalary      float64 `json:"baseSalary"`
	TargetWorkHours float64 `json:"targetWorkHours"`
}
