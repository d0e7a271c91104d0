package models

// Invoice is one income or outcome line of the ledger.
type Invoice struct {
	ID          string  `json:"id"`
	Date        string  `json:"date" binding:"required"`
	Type        string  `json:"type" binding:"required,oneof=income outcome"`
	Amount      float64 `json:"amount" binding:"gt=0"`
	Description string  `json:"description"`
	Category    string  `json:"category" binding:"required,oneof=wages company course project other"`
	Employee    string  `json:"employee,omitempty"`
	Reference   string  `json:"reference,omitempty"`
	Status      string  `json:"status,omitempty" binding:"omitempty,oneof=pending completed cancelled"`
}
