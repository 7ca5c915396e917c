package model

import "time"

// Transfer represents a card-to-card transfer row.
type Transfer struct {
	ID             int
	TransferNo     string
	TransferFrom   string
	TransferTo     string
	TransferAmount int64
	TransferTime   time.Time
	Status         string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      *time.Time
}

// TransferMonthAmount is a monthly amount aggregate.
type TransferMonthAmount struct {
	Month       string
	TotalAmount int64
}

// TransferYearAmount is a yearly amount aggregate.
type TransferYearAmount struct {
	Year        string
	TotalAmount int64
}

// TransferMonthStatus is a month-of-year aggregate for a single status.
type TransferMonthStatus struct {
	Year        string
	Month       string
	TotalCount  int64
	TotalAmount int64
}

// TransferYearStatus is a yearly aggregate for a single status.
type TransferYearStatus struct {
	Year        string
	TotalCount  int64
	TotalAmount int64
}
