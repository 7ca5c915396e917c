package model

import "time"

// Merchant represents a merchant account row.
type Merchant struct {
	ID        int
	Name      string
	APIKey    string
	UserID    int
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

// MerchantTransaction is a transaction row joined with its merchant.
type MerchantTransaction struct {
	TransactionID   int
	CardNumber      string
	Amount          int64
	PaymentMethod   string
	MerchantID      int
	MerchantName    string
	TransactionTime time.Time
}

// MerchantMonthlyPaymentMethod is a monthly aggregate per payment method.
type MerchantMonthlyPaymentMethod struct {
	Month         string
	PaymentMethod string
	TotalAmount   int64
}

// MerchantYearlyPaymentMethod is a yearly aggregate per payment method.
type MerchantYearlyPaymentMethod struct {
	Year          string
	PaymentMethod string
	TotalAmount   int64
}

// MerchantMonthlyAmount is a monthly amount aggregate.
type MerchantMonthlyAmount struct {
	Month       string
	TotalAmount int64
}

// MerchantYearlyAmount is a yearly amount aggregate.
type MerchantYearlyAmount struct {
	Year        string
	TotalAmount int64
}
