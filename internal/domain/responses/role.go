package responses

import "payment-gateway/internal/model"

// RoleResponse is the external role shape.
type RoleResponse struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// RoleResponseDeleteAt is the role shape for trash listings.
type RoleResponseDeleteAt struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
	DeletedAt *string `json:"deleted_at"`
}

func NewRoleResponse(m model.Role) RoleResponse {
	return RoleResponse{
		ID:        m.ID,
		Name:      m.Name,
		CreatedAt: formatTime(m.CreatedAt),
		UpdatedAt: formatTime(m.UpdatedAt),
	}
}

func NewRoleResponseDeleteAt(m model.Role) RoleResponseDeleteAt {
	return RoleResponseDeleteAt{
		ID:        m.ID,
		Name:      m.Name,
		CreatedAt: formatTime(m.CreatedAt),
		UpdatedAt: formatTime(m.UpdatedAt),
		DeletedAt: formatTimePtr(m.DeletedAt),
	}
}

func NewRoleResponses(rows []model.Role) []RoleResponse {
	out := make([]RoleResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, NewRoleResponse(m))
	}
	return out
}

func NewRoleResponsesDeleteAt(rows []model.Role) []RoleResponseDeleteAt {
	out := make([]RoleResponseDeleteAt, 0, len(rows))
	for _, m := range rows {
		out = append(out, NewRoleResponseDeleteAt(m))
	}
	return out
}
