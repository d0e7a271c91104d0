package models

// Teacher runs one or more courses.
type Teacher struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Phone          string  `json:"phone"`
	Email          string  `json:"email"`
	Specialization string  `json:"specialization"`
	Salary         float64 `json:"salary"`
}

// CourseStudent is an enrolment with its payment state.
type CourseStudent struct {
	ID            string  `json:"id"`
	Name          string  `json:"name" binding:"required"`
	Phone         string  `json:"phone"`
	JoinDate      string  `json:"joinDate"`
	PaymentStatus string  `json:"paymentStatus" binding:"omitempty,oneof=paid pending partial"`
	Amount        float64 `json:"amount" binding:"gte=0"`
}

type Course struct {
	ID            string          `json:"id"`
	Name          string          `json:"name" binding:"required"`
	Description   string          `json:"description"`
	Teacher       Teacher         `json:"teacher"`
	Students      []CourseStudent `json:"students" binding:"dive"`
	StartDate     string          `json:"startDate" binding:"required"`
	EndDate       string          `json:"endDate"`
	Schedule      string          `json:"schedule"`
	Price         float64         `json:"price" binding:"gte=0"`
	Status        string          `json:"status" binding:"required,oneof=ongoing completed upcoming"`
	TotalStudents int             `json:"totalStudents"`
	MaxStudents   int             `json:"maxStudents" binding:"gte=0"`
}
