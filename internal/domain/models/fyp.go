package models

// FYPStudent is a student attached to a final-year project.
type FYPStudent struct {
	ID             string `json:"id"`
	Name           string `json:"name" binding:"required"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	University     string `json:"university"`
	Department     string `json:"department"`
	GraduationYear string `json:"graduationYear"`
}

type JuryMember struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Title          string `json:"title"`
	Specialization string `json:"specialization"`
	University     string `json:"university"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
}

type Programmer struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Specialization string  `json:"specialization"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	Rate           float64 `json:"rate"`
}

// FinalYearProject is a brokered graduation project.
type FinalYearProject struct {
	ID               string       `json:"id"`
	Title            string       `json:"title" binding:"required"`
	Description      string       `json:"description"`
	Students         []FYPStudent `json:"students" binding:"dive"`
	JuryMembers      []JuryMember `json:"juryMembers"`
	Programmers      []Programmer `json:"programmers"`
	StartDate        string       `json:"startDate" binding:"required"`
	EndDate          string       `json:"endDate"`
	Status           string       `json:"status" binding:"required,oneof=pending in_progress under_review completed"`
	Price            float64      `json:"price" binding:"gte=0"`
	PaymentStatus    string       `json:"paymentStatus" binding:"omitempty,oneof=paid partial pending"`
	AmountPaid       float64      `json:"amountPaid" binding:"gte=0"`
	Requirements     string       `json:"requirements"`
	Technologies     []string     `json:"technologies"`
	PresentationDate string       `json:"presentationDate,omitempty"`
}
