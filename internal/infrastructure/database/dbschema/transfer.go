package dbschema

import (
	"time"

	"gorm.io/gorm"

	"payment-gateway/internal/model"
)

// Transfer represents the database schema for card-to-card transfers.
type Transfer struct {
	ID             int            `gorm:"primaryKey"`
	TransferNo     string         `gorm:"type:varchar(64);uniqueIndex;not null"`
	TransferFrom   string         `gorm:"type:varchar(32);index;not null"`
	TransferTo     string         `gorm:"type:varchar(32);index;not null"`
	TransferAmount int64          `gorm:"not null"`
	TransferTime   time.Time      `gorm:"index;not null"`
	Status         string         `gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt      time.Time      `gorm:"autoCreateTime"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime"`
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for Transfer.
func (Transfer) TableName() string {
	return "transfers"
}

// EtoD converts the database entity to the domain model.
func (t *Transfer) EtoD() *model.Transfer {
	if t == nil {
		return nil
	}
	return &model.Transfer{
		ID:             t.ID,
		TransferNo:     t.TransferNo,
		TransferFrom:   t.TransferFrom,
		TransferTo:     t.TransferTo,
		TransferAmount: t.TransferAmount,
		TransferTime:   t.TransferTime,
		Status:         t.Status,
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
		DeletedAt:      deletedAtToPtr(t.DeletedAt),
	}
}

// NewSchemaTransfer creates a database entity from the domain model.
func NewSchemaTransfer(d *model.Transfer) *Transfer {
	if d == nil {
		return nil
	}
	return &Transfer{
		ID:             d.ID,
		TransferNo:     d.TransferNo,
		TransferFrom:   d.TransferFrom,
		TransferTo:     d.TransferTo,
		TransferAmount: d.TransferAmount,
		TransferTime:   d.TransferTime,
		Status:         d.Status,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
		DeletedAt:      ptrToDeletedAt(d.DeletedAt),
	}
}
