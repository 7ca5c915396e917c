package model

import "time"

// Withdraw represents a balance withdrawal row.
type Withdraw struct {
	ID             int
	WithdrawNo     string
	CardNumber     string
	WithdrawAmount int64
	WithdrawTime   time.Time
	Status         string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      *time.Time
}

// WithdrawMonthAmount is a monthly amount aggregate.
type WithdrawMonthAmount struct {
	Month       string
	TotalAmount int64
}

// WithdrawYearAmount is a yearly amount aggregate.
type WithdrawYearAmount struct {
	Year        string
	TotalAmount int64
}

// WithdrawMonthStatus is a month-of-year aggregate for a single status.
type WithdrawMonthStatus struct {
	Year        string
	Month       string
	TotalCount  int64
	TotalAmount int64
}

// WithdrawYearStatus is a yearly aggregate for a single status.
type WithdrawYearStatus struct {
	Year        string
	TotalCount  int64
	TotalAmount int64
}
