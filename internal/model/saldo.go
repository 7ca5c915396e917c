package model

import "time"

// Saldo represents a card balance row.
type Saldo struct {
	ID             int
	CardNumber     string
	TotalBalance   int64
	WithdrawAmount int64
	WithdrawTime   *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      *time.Time
}

// SaldoMonthTotalBalance is a month-of-year total balance aggregate.
type SaldoMonthTotalBalance struct {
	Year         string
	Month        string
	TotalBalance int64
}

// SaldoYearTotalBalance is a yearly total balance aggregate.
type SaldoYearTotalBalance struct {
	Year         string
	TotalBalance int64
}
