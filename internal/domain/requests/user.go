package requests

// CreateUserRequest creates a user through the admin surface.
type CreateUserRequest struct {
	Firstname       string `json:"firstname" binding:"required,min=1,max=100"`
	Lastname        string `json:"lastname" binding:"required,min=1,max=100"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" binding:"required,eqfield=Password"`
}

// UpdateUserRequest updates an existing user.
type UpdateUserRequest struct {
	Firstname       string `json:"firstname" binding:"required,min=1,max=100"`
	Lastname        string `json:"lastname" binding:"required,min=1,max=100"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"omitempty,min=6"`
	ConfirmPassword string `json:"confirm_password" binding:"omitempty,eqfield=Password"`
}
