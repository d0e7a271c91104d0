package models

// Fund types.
const (
	FundCourses    = "courses"
	FundFYPs       = "fyps"
	FundProjects   = "projects"
	FundContracts  = "contracts"
	FundCompany    = "company"
	FundAdditional = "additional"
)

type Fund struct {
	ID            string            `json:"id"`
	Type          string            `json:"type"`
	Name          string            `json:"name"`
	Balance       float64           `json:"balance"`
	MonthlyTarget float64           `json:"monthlyTarget"`
	CurrentMonth  float64           `json:"currentMonth"`
	Transactions  []FundTransaction `json:"transactions"`
}

type FundTransaction struct {
	ID          string  `json:"id"`
	FundID      string  `json:"fundId"`
	Amount      float64 `json:"amount"`
	Type        string  `json:"type"` // income, expense, transfer
	Description string  `json:"description"`
	Date        string  `json:"date"`
	Category    string  `json:"category,omitempty"`
}

type CompanyExpense struct {
	ID          string  `json:"id"`
	Amount      float64 `json:"amount" binding:"gt=0"`
	Description string  `json:"description" binding:"required"`
	Date        string  `json:"date" binding:"required"`
	Category    string  `json:"category" binding:"required,oneof=salary utilities rent equipment other"`
	Status      string  `json:"status" binding:"omitempty,oneof=pending approved paid"`
}

// Transfer moves money between funds (typically into the company fund).
type Transfer struct {
	FromFundID  string  `json:"fromFundId" binding:"required"`
	ToFundID    string  `json:"toFundId" binding:"required,nefield=FromFundID"`
	Amount      float64 `json:"amount" binding:"gt=0"`
	Description string  `json:"description"`
}

type TaskProgress struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
}

type UserTarget struct {
	UserID          string       `json:"userId"`
	Name            string       `json:"name"`
	Role            string       `json:"role"`
	MonthlyTarget   float64      `json:"monthlyTarget"`
	CurrentProgress float64      `json:"currentProgress"`
	Tasks           TaskProgress `json:"tasks"`
	LastActive      string       `json:"lastActive"`
}

type AdminNotification struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Type    string `json:"type"` // success, warning, info, error
	UserID  string `json:"userId,omitempty"`
	Date    string `json:"date"`
	Read    bool   `json:"read"`
}
