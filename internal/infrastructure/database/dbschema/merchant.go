package dbschema

import (
	"time"

	"gorm.io/gorm"

	"payment-gateway/internal/model"
)

// Merchant represents the database schema for merchant accounts.
type Merchant struct {
	ID        int            `gorm:"primaryKey"`
	Name      string         `gorm:"type:varchar(100);not null"`
	APIKey    string         `gorm:"column:api_key;type:varchar(64);uniqueIndex;not null"`
	UserID    int            `gorm:"index;not null"`
	Status    string         `gorm:"type:varchar(20);not null;default:'active'"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for Merchant.
func (Merchant) TableName() string {
	return "merchants"
}

// EtoD converts the database entity to the domain model.
func (m *Merchant) EtoD() *model.Merchant {
	if m == nil {
		return nil
	}
	return &model.Merchant{
		ID:        m.ID,
		Name:      m.Name,
		APIKey:    m.APIKey,
		UserID:    m.UserID,
		Status:    m.Status,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		DeletedAt: deletedAtToPtr(m.DeletedAt),
	}
}

// NewSchemaMerchant creates a database entity from the domain model.
func NewSchemaMerchant(d *model.Merchant) *Merchant {
	if d == nil {
		return nil
	}
	return &Merchant{
		ID:        d.ID,
		Name:      d.Name,
		APIKey:    d.APIKey,
		UserID:    d.UserID,
		Status:    d.Status,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
		DeletedAt: ptrToDeletedAt(d.DeletedAt),
	}
}
