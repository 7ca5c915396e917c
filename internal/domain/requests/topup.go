package requests

// CreateTopupRequest tops up a card balance.
type CreateTopupRequest struct {
	CardNumber  string `json:"card_number" binding:"required"`
	TopupAmount int64  `json:"topup_amount" binding:"required,gt=0"`
	TopupMethod string `json:"topup_method" binding:"required,min=1,max=50"`
}

// UpdateTopupRequest updates a pending top-up.
type UpdateTopupRequest struct {
	CardNumber  string `json:"card_number" binding:"required"`
	TopupAmount int64  `json:"topup_amount" binding:"required,gt=0"`
	TopupMethod string `json:"topup_method" binding:"required,min=1,max=50"`
}
