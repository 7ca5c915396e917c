package model

import "time"

// Transaction represents a card payment row.
type Transaction struct {
	ID              int
	CardNumber      string
	TransactionNo   string
	Amount          int64
	PaymentMethod   string
	MerchantID      int
	TransactionTime time.Time
	Status          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       *time.Time
}

// TransactionMonthAmount is a monthly amount aggregate.
type TransactionMonthAmount struct {
	Month       string
	TotalAmount int64
}

// TransactionYearAmount is a yearly amount aggregate.
type TransactionYearAmount struct {
	Year        string
	TotalAmount int64
}

// TransactionMonthMethod is a monthly aggregate per payment method.
type TransactionMonthMethod struct {
	Month         string
	PaymentMethod string
	TotalAmount   int64
}

// TransactionYearMethod is a yearly aggregate per payment method.
type TransactionYearMethod struct {
	Year          string
	PaymentMethod string
	TotalAmount   int64
}

// TransactionMonthStatus is a month-of-year aggregate for a single status.
type TransactionMonthStatus struct {
	Year        string
	Month       string
	TotalCount  int64
	TotalAmount int64
}

// TransactionYearStatus is a yearly aggregate for a single status.
type TransactionYearStatus struct {
	Year        string
	TotalCount  int64
	TotalAmount int64
}
