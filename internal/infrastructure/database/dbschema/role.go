package dbschema

import (
	"time"

	"gorm.io/gorm"

	"payment-gateway/internal/model"
)

// Role represents the database schema for access roles.
type Role struct {
	ID        int            `gorm:"primaryKey"`
	Name      string         `gorm:"type:varchar(50);uniqueIndex;not null"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for Role.
func (Role) TableName() string {
	return "roles"
}

// UserRole links users to their assigned roles.
type UserRole struct {
	ID        int       `gorm:"primaryKey"`
	UserID    int       `gorm:"uniqueIndex:idx_user_role;not null"`
	RoleID    int       `gorm:"uniqueIndex:idx_user_role;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// TableName specifies the table name for UserRole.
func (UserRole) TableName() string {
	return "user_roles"
}

// RefreshToken stores the single active refresh token per user.
type RefreshToken struct {
	ID        int       `gorm:"primaryKey"`
	UserID    int       `gorm:"uniqueIndex;not null"`
	Token     string    `gorm:"type:varchar(512);uniqueIndex;not null"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TableName specifies the table name for RefreshToken.
func (RefreshToken) TableName() string {
	return "refresh_tokens"
}

// EtoD converts the database entity to the domain model.
func (r *Role) EtoD() *model.Role {
	if r == nil {
		return nil
	}
	return &model.Role{
		ID:        r.ID,
		Name:      r.Name,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
		DeletedAt: deletedAtToPtr(r.DeletedAt),
	}
}

// NewSchemaRole creates a database entity from the domain model.
func NewSchemaRole(d *model.Role) *Role {
	if d == nil {
		return nil
	}
	return &Role{
		ID:        d.ID,
		Name:      d.Name,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
		DeletedAt: ptrToDeletedAt(d.DeletedAt),
	}
}

// EtoD converts the database entity to the domain model.
func (r *RefreshToken) EtoD() *model.RefreshToken {
	if r == nil {
		return nil
	}
	return &model.RefreshToken{
		ID:        r.ID,
		UserID:    r.UserID,
		Token:     r.Token,
		ExpiresAt: r.ExpiresAt,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// NewSchemaRefreshToken creates a database entity from the domain model.
func NewSchemaRefreshToken(d *model.RefreshToken) *RefreshToken {
	if d == nil {
		return nil
	}
	return &RefreshToken{
		ID:        d.ID,
		UserID:    d.UserID,
		Token:     d.Token,
		ExpiresAt: d.ExpiresAt,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}
