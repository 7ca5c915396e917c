package dbschema

import (
	"time"

	"gorm.io/gorm"

	"payment-gateway/internal/model"
)

// Withdraw represents the database schema for balance withdrawals.
type Withdraw struct {
	ID             int            `gorm:"primaryKey"`
	WithdrawNo     string         `gorm:"type:varchar(64);uniqueIndex;not null"`
	CardNumber     string         `gorm:"type:varchar(32);index;not null"`
	WithdrawAmount int64          `gorm:"not null"`
	WithdrawTime   time.Time      `gorm:"index;not null"`
	Status         string         `gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt      time.Time      `gorm:"autoCreateTime"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime"`
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for Withdraw.
func (Withdraw) TableName() string {
	return "withdraws"
}

// EtoD converts the database entity to the domain model.
func (w *Withdraw) EtoD() *model.Withdraw {
	if w == nil {
		return nil
	}
	return &model.Withdraw{
		ID:             w.ID,
		WithdrawNo:     w.WithdrawNo,
		CardNumber:     w.CardNumber,
		WithdrawAmount: w.WithdrawAmount,
		WithdrawTime:   w.WithdrawTime,
		Status:         w.Status,
		CreatedAt:      w.CreatedAt,
		UpdatedAt:      w.UpdatedAt,
		DeletedAt:      deletedAtToPtr(w.DeletedAt),
	}
}

// NewSchemaWithdraw creates a database entity from the domain model.
func NewSchemaWithdraw(d *model.Withdraw) *Withdraw {
	if d == nil {
		return nil
	}
	return &Withdraw{
		ID:             d.ID,
		WithdrawNo:     d.WithdrawNo,
		CardNumber:     d.CardNumber,
		WithdrawAmount: d.WithdrawAmount,
		WithdrawTime:   d.WithdrawTime,
		Status:         d.Status,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
		DeletedAt:      ptrToDeletedAt(d.DeletedAt),
	}
}
