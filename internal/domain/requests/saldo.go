package requests

// CreateSaldoRequest opens a balance record for a card.
type CreateSaldoRequest struct {
	CardNumber   string `json:"card_number" binding:"required"`
	TotalBalance int64  `json:"total_balance" binding:"required,gte=0"`
}

// UpdateSaldoRequest replaces a card's balance.
type UpdateSaldoRequest struct {
	CardNumber   string `json:"card_number" binding:"required"`
	TotalBalance int64  `json:"total_balance" binding:"required,gte=0"`
}
