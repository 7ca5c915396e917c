package dbschema

import (
	"time"

	"gorm.io/gorm"

	"payment-gateway/internal/model"
)

// Saldo represents the database schema for card balances.
type Saldo struct {
	ID             int            `gorm:"primaryKey"`
	CardNumber     string         `gorm:"type:varchar(32);uniqueIndex;not null"`
	TotalBalance   int64          `gorm:"not null;default:0"`
	WithdrawAmount int64          `gorm:"not null;default:0"`
	WithdrawTime   *time.Time     `gorm:""`
	CreatedAt      time.Time      `gorm:"autoCreateTime"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime"`
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for Saldo.
func (Saldo) TableName() string {
	return "saldos"
}

// EtoD converts the database entity to the domain model.
func (s *Saldo) EtoD() *model.Saldo {
	if s == nil {
		return nil
	}
	return &model.Saldo{
		ID:             s.ID,
		CardNumber:     s.CardNumber,
		TotalBalance:   s.TotalBalance,
		WithdrawAmount: s.WithdrawAmount,
		WithdrawTime:   s.WithdrawTime,
		CreatedAt:      s.CreatedAt,
		UpdatedAt:      s.UpdatedAt,
		DeletedAt:      deletedAtToPtr(s.DeletedAt),
	}
}

// NewSchemaSaldo creates a database entity from the domain model.
func NewSchemaSaldo(d *model.Saldo) *Saldo {
	if d == nil {
		return nil
	}
	return &Saldo{
		ID:             d.ID,
		CardNumber:     d.CardNumber,
		TotalBalance:   d.TotalBalance,
		WithdrawAmount: d.WithdrawAmount,
		WithdrawTime:   d.WithdrawTime,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
		DeletedAt:      ptrToDeletedAt(d.DeletedAt),
	}
}
