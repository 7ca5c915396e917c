package requests

// CreateRoleRequest creates an access role.
type CreateRoleRequest struct {
	Name string `json:"name" binding:"required,min=1,max=50"`
}

// UpdateRoleRequest renames an access role.
type UpdateRoleRequest struct {
	Name string `json:"name" binding:"required,min=1,max=50"`
}
