package requests

// CreateTransactionRequest records a card payment at a merchant. The
// merchant is resolved from the x-api-key header, not the body.
type CreateTransactionRequest struct {
	CardNumber    string `json:"card_number" binding:"required"`
	Amount        int64  `json:"amount" binding:"required,gt=0"`
	PaymentMethod string `json:"payment_method" binding:"required,min=1,max=50"`
}

// UpdateTransactionRequest updates a recorded payment.
type UpdateTransactionRequest struct {
	CardNumber    string `json:"card_number" binding:"required"`
	Amount        int64  `json:"amount" binding:"required,gt=0"`
	PaymentMethod string `json:"payment_method" binding:"required,min=1,max=50"`
}
