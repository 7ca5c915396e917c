package dbschema

import (
	"time"

	"gorm.io/gorm"

	"payment-gateway/internal/model"
)

// User represents the database schema for platform accounts.
type User struct {
	ID          int            `gorm:"primaryKey"`
	Firstname   string         `gorm:"type:varchar(100);not null"`
	Lastname    string         `gorm:"type:varchar(100);not null"`
	Email       string         `gorm:"type:varchar(255);uniqueIndex;not null"`
	Password    string         `gorm:"type:varchar(255);not null"`
	NocTransfer string         `gorm:"type:varchar(255);uniqueIndex;not null"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for User.
func (User) TableName() string {
	return "users"
}

// EtoD converts the database entity to the domain model.
func (u *User) EtoD() *model.User {
	if u == nil {
		return nil
	}
	return &model.User{
		ID:          u.ID,
		Firstname:   u.Firstname,
		Lastname:    u.Lastname,
		Email:       u.Email,
		Password:    u.Password,
		NocTransfer: u.NocTransfer,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
		DeletedAt:   deletedAtToPtr(u.DeletedAt),
	}
}

// NewSchemaUser creates a database entity from the domain model.
func NewSchemaUser(d *model.User) *User {
	if d == nil {
		return nil
	}
	return &User{
		ID:          d.ID,
		Firstname:   d.Firstname,
		Lastname:    d.Lastname,
		Email:       d.Email,
		Password:    d.Password,
		NocTransfer: d.NocTransfer,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
		DeletedAt:   ptrToDeletedAt(d.DeletedAt),
	}
}
