package models

type ContractCompany struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Country string `json:"country"`
	City    string `json:"city"`
}

type Supervisor struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Specialization string  `json:"specialization"`
	Rate           float64 `json:"rate"`
	Availability   string  `json:"availability"`
}

// Payment is shared by contracts (monthly) and projects (per milestone).
type Payment struct {
	ID          string  `json:"id"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Status      string  `json:"status"`
	Month       string  `json:"month,omitempty"`
	MilestoneID string  `json:"milestoneId,omitempty"`
}

// Contract is a supervision agreement between a company and a supervisor.
type Contract struct {
	ID                 string          `json:"id"`
	Company            ContractCompany `json:"company"`
	Supervisor         Supervisor      `json:"supervisor"`
	StartDate          string          `json:"startDate" binding:"required"`
	EndDate            string          `json:"endDate,omitempty"`
	Status             string          `json:"status" binding:"required,oneof=active completed terminated pending"`
	MonthlyRate        float64         `json:"monthlyRate" binding:"gte=0"`
	Description        string          `json:"description"`
	Responsibilities   []string        `json:"responsibilities"`
	Payments           []Payment       `json:"payments"`
	TotalPaid          float64         `json:"totalPaid"`
	ContractDuration   int             `json:"contractDuration" binding:"gte=0"`
	TermsAndConditions string          `json:"termsAndConditions"`
}
