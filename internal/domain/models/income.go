package models

// Shift is a cashier working period; income is recorded against the open shift.
type Shift struct {
	ID          string  `json:"id"`
	StartTime   string  `json:"startTime"`
	EndTime     string  `json:"endTime,omitempty"`
	TotalIncome float64 `json:"totalIncome"`
	Status      string  `json:"status"` // open, closed
}

type Income struct {
	ID          string  `json:"id"`
	Amount      float64 `json:"amount" binding:"gt=0"`
	Category    string  `json:"category" binding:"required,oneof=course fyp project contract"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	ShiftID     string  `json:"shiftId"`
}
