package requests

// CreateTransferRequest moves balance between two cards.
type CreateTransferRequest struct {
	TransferFrom   string `json:"transfer_from" binding:"required"`
	TransferTo     string `json:"transfer_to" binding:"required,nefield=TransferFrom"`
	TransferAmount int64  `json:"transfer_amount" binding:"required,gt=0"`
}

// UpdateTransferRequest updates a recorded transfer.
type UpdateTransferRequest struct {
	TransferFrom   string `json:"transfer_from" binding:"required"`
	TransferTo     string `json:"transfer_to" binding:"required,nefield=TransferFrom"`
	TransferAmount int64  `json:"transfer_amount" binding:"required,gt=0"`
}
