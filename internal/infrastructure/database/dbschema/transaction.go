package dbschema

import (
	"time"

	"gorm.io/gorm"

	"payment-gateway/internal/model"
)

// Transaction represents the database schema for card payments.
type Transaction struct {
	ID              int            `gorm:"primaryKey"`
	CardNumber      string         `gorm:"type:varchar(32);index;not null"`
	TransactionNo   string         `gorm:"type:varchar(64);uniqueIndex;not null"`
	Amount          int64          `gorm:"not null"`
	PaymentMethod   string         `gorm:"type:varchar(50);not null"`
	MerchantID      int            `gorm:"index;not null"`
	TransactionTime time.Time      `gorm:"index;not null"`
	Status          string         `gorm:"type:varchar(20);not null;default:'pending'"`
	CreatedAt       time.Time      `gorm:"autoCreateTime"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime"`
	DeletedAt       gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for Transaction.
func (Transaction) TableName() string {
	return "transactions"
}

// EtoD converts the database entity to the domain model.
func (t *Transaction) EtoD() *model.Transaction {
	if t == nil {
		return nil
	}
	return &model.Transaction{
		ID:              t.ID,
		CardNumber:      t.CardNumber,
		TransactionNo:   t.TransactionNo,
		Amount:          t.Amount,
		PaymentMethod:   t.PaymentMethod,
		MerchantID:      t.MerchantID,
		TransactionTime: t.TransactionTime,
		Status:          t.Status,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
		DeletedAt:       deletedAtToPtr(t.DeletedAt),
	}
}

// NewSchemaTransaction creates a database entity from the domain model.
func NewSchemaTransaction(d *model.Transaction) *Transaction {
	if d == nil {
		return nil
	}
	return &Transaction{
		ID:              d.ID,
		CardNumber:      d.CardNumber,
		TransactionNo:   d.TransactionNo,
		Amount:          d.Amount,
		PaymentMethod:   d.PaymentMethod,
		MerchantID:      d.MerchantID,
		TransactionTime: d.TransactionTime,
		Status:          d.Status,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
		DeletedAt:       ptrToDeletedAt(d.DeletedAt),
	}
}
