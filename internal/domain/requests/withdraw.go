package requests

// CreateWithdrawRequest withdraws balance from a card.
type CreateWithdrawRequest struct {
	CardNumber     string `json:"card_number" binding:"required"`
	WithdrawAmount int64  `json:"withdraw_amount" binding:"required,gt=0"`
}

// UpdateWithdrawRequest updates a recorded withdrawal.
type UpdateWithdrawRequest struct {
	CardNumber     string `json:"card_number" binding:"required"`
	WithdrawAmount int64  `json:"withdraw_amount" binding:"required,gt=0"`
}
