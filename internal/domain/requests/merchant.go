package requests

// CreateMerchantRequest registers a merchant for a user.
type CreateMerchantRequest struct {
	Name   string `json:"name" binding:"required,min=1,max=100"`
	UserID int    `json:"user_id" binding:"required,gt=0"`
}

// UpdateMerchantRequest updates a merchant account.
type UpdateMerchantRequest struct {
	Name   string `json:"name" binding:"required,min=1,max=100"`
	UserID int    `json:"user_id" binding:"required,gt=0"`
	Status string `json:"status" binding:"required,oneof=active inactive"`
}

// UpdateMerchantStatusRequest flips a merchant's status.
type UpdateMerchantStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active inactive"`
}
