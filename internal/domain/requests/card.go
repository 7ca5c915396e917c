package requests

// CreateCardRequest issues a new card for a user.
type CreateCardRequest struct {
	UserID       int    `json:"user_id" binding:"required,gt=0"`
	CardType     string `json:"card_type" binding:"required,oneof=credit debit"`
	ExpireDate   string `json:"expire_date" binding:"required"`
	CVV          string `json:"cvv" binding:"required,len=3,numeric"`
	CardProvider string `json:"card_provider" binding:"required,min=1,max=50"`
}

// UpdateCardRequest updates an issued card.
type UpdateCardRequest struct {
	UserID       int    `json:"user_id" binding:"required,gt=0"`
	CardType     string `json:"card_type" binding:"required,oneof=credit debit"`
	ExpireDate   string `json:"expire_date" binding:"required"`
	CVV          string `json:"cvv" binding:"required,len=3,numeric"`
	CardProvider string `json:"card_provider" binding:"required,min=1,max=50"`
}
