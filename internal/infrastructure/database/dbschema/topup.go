package dbschema

import (
	"time"

	"gorm.io/gorm"

	"payment-gateway/internal/model"
)

// Topup represents the database schema for balance top-ups.
type Topup struct {
	ID          int            `gorm:"primaryKey"`
	CardNumber  string         `gorm:"type:varchar(32);index;not null"`
	TopupNo     string         `gorm:"type:varchar(64);uniqueIndex;not null"`
	TopupAmount int64          `gorm:"not null"`
	TopupMethod string         `gorm:"type:varchar(50);not null"`
	TopupTime   time.Time      `gorm:"index;not null"`
	Status      string         `gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt   time.Time      `gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for Topup.
func (Topup) TableName() string {
	return "topups"
}

// EtoD converts the database entity to the domain model.
func (t *Topup) EtoD() *model.Topup {
	if t == nil {
		return nil
	}
	return &model.Topup{
		ID:          t.ID,
		CardNumber:  t.CardNumber,
		TopupNo:     t.TopupNo,
		TopupAmount: t.TopupAmount,
		TopupMethod: t.TopupMethod,
		TopupTime:   t.TopupTime,
		Status:      t.Status,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
		DeletedAt:   deletedAtToPtr(t.DeletedAt),
	}
}

// NewSchemaTopup creates a database entity from the domain model.
func NewSchemaTopup(d *model.Topup) *Topup {
	if d == nil {
		return nil
	}
	return &Topup{
		ID:          d.ID,
		CardNumber:  d.CardNumber,
		TopupNo:     d.TopupNo,
		TopupAmount: d.TopupAmount,
		TopupMethod: d.TopupMethod,
		TopupTime:   d.TopupTime,
		Status:      d.Status,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
		DeletedAt:   ptrToDeletedAt(d.DeletedAt),
	}
}
