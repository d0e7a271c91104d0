package models

type Client struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Company string `json:"company,omitempty"`
	Phone   string `json:"phone"`
	Country string `json:"country"`
	City    string `json:"city"`
}

type ProjectProgrammer struct {
	ProgrammerID string   `json:"programmerId"`
	Name         string   `json:"name"`
	Role         string   `json:"role"`
	HoursPerWeek int      `json:"hoursPerWeek"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate,omitempty"`
	Tasks        []string `json:"tasks"`
}

type Milestone struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	DueDate      string   `json:"dueDate"`
	Status       string   `json:"status"`
	Deliverables []string `json:"deliverables"`
}

// Project is a freelance client project.
type Project struct {
	ID             string              `json:"id"`
	Title          string              `json:"title" binding:"required"`
	Description    string              `json:"description"`
	Clients        []Client            `json:"clients"`
	Programmers    []ProjectProgrammer `json:"programmers"`
	StartDate      string              `json:"startDate" binding:"required"`
	TargetEndDate  string              `json:"targetEndDate"`
	ActualEndDate  string              `json:"actualEndDate,omitempty"`
	Status         string              `json:"status" binding:"required,oneof=proposed in_progress on_hold completed cancelled"`
	Priority       string              `json:"priority" binding:"required,oneof=low medium high urgent"`
	Budget         float64             `json:"budget" binding:"gte=0"`
	TotalPaid      float64             `json:"totalPaid" binding:"gte=0"`
	Milestones     []Milestone         `json:"milestones"`
	Payments       []Payment           `json:"payments"`
	Technologies   []string            `json:"technologies"`
	Repository     string              `json:"repository,omitempty"`
	ProjectManager string              `json:"projectManager,omitempty"`
	Requirements   string              `json:"requirements"`
	Features       []string            `json:"features"`
}
