package responses

import "payment-gateway/internal/model"

// UserResponse is the external user shape. Password hashes never leave the
// service layer.
type UserResponse struct {
	ID        int    `json:"id"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// UserResponseDeleteAt is the user shape for trash listings.
type UserResponseDeleteAt struct {
	ID        int     `json:"id"`
	Firstname string  `json:"firstname"`
	Lastname  string  `json:"lastname"`
	Email     string  `json:"email"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
	DeletedAt *string `json:"deleted_at"`
}

func NewUserResponse(m model.User) UserResponse {
	return UserResponse{
		ID:        m.ID,
		Firstname: m.Firstname,
		Lastname:  m.Lastname,
		Email:     m.Email,
		CreatedAt: formatTime(m.CreatedAt),
		UpdatedAt: formatTime(m.UpdatedAt),
	}
}

func NewUserResponseDeleteAt(m model.User) UserResponseDeleteAt {
	return UserResponseDeleteAt{
		ID:        m.ID,
		Firstname: m.Firstname,
		Lastname:  m.Lastname,
		Email:     m.Email,
		CreatedAt: formatTime(m.CreatedAt),
		UpdatedAt: formatTime(m.UpdatedAt),
		DeletedAt: formatTimePtr(m.DeletedAt),
	}
}

func NewUserResponses(rows []model.User) []UserResponse {
	out := make([]UserResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, NewUserResponse(m))
	}
	return out
}

func NewUserResponsesDeleteAt(rows []model.User) []UserResponseDeleteAt {
	out := make([]UserResponseDeleteAt, 0, len(rows))
	for _, m := range rows {
		out = append(out, NewUserResponseDeleteAt(m))
	}
	return out
}
