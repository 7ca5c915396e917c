package dbschema

import (
	"time"

	"gorm.io/gorm"

	"payment-gateway/internal/model"
)

// Card represents the database schema for issued cards.
type Card struct {
	ID           int            `gorm:"primaryKey"`
	UserID       int            `gorm:"index;not null"`
	CardNumber   string         `gorm:"type:varchar(32);uniqueIndex;not null"`
	CardType     string         `gorm:"type:varchar(20);not null"`
	ExpireDate   time.Time      `gorm:"not null"`
	CVV          string         `gorm:"type:varchar(8);not null"`
	CardProvider string         `gorm:"type:varchar(50);not null"`
	CreatedAt    time.Time      `gorm:"autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime"`
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for Card.
func (Card) TableName() string {
	return "cards"
}

// EtoD converts the database entity to the domain model.
func (c *Card) EtoD() *model.Card {
	if c == nil {
		return nil
	}
	return &model.Card{
		ID:           c.ID,
		UserID:       c.UserID,
		CardNumber:   c.CardNumber,
		CardType:     c.CardType,
		ExpireDate:   c.ExpireDate,
		CVV:          c.CVV,
		CardProvider: c.CardProvider,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
		DeletedAt:    deletedAtToPtr(c.DeletedAt),
	}
}

// NewSchemaCard creates a database entity from the domain model.
func NewSchemaCard(d *model.Card) *Card {
	if d == nil {
		return nil
	}
	return &Card{
		ID:           d.ID,
		UserID:       d.UserID,
		CardNumber:   d.CardNumber,
		CardType:     d.CardType,
		ExpireDate:   d.ExpireDate,
		CVV:          d.CVV,
		CardProvider: d.CardProvider,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
		DeletedAt:    ptrToDeletedAt(d.DeletedAt),
	}
}
