package model

import "time"

// Topup represents a balance top-up row.
type Topup struct {
	ID          int
	CardNumber  string
	TopupNo     string
	TopupAmount int64
	TopupMethod string
	TopupTime   time.Time
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

// TopupMonthAmount is a monthly amount aggregate.
type TopupMonthAmount struct {
	Month       string
	TotalAmount int64
}

// TopupYearAmount is a yearly amount aggregate.
type TopupYearAmount struct {
	Year        string
	TotalAmount int64
}

// TopupMonthMethod is a monthly aggregate per top-up method.
type TopupMonthMethod struct {
	Month       string
	TopupMethod string
	TotalTopups int64
	TotalAmount int64
}

// TopupYearMethod is a yearly aggregate per top-up method.
type TopupYearMethod struct {
	Year        string
	TopupMethod string
	TotalTopups int64
	TotalAmount int64
}

// TopupMonthStatus is a month-of-year aggregate for a single status.
type TopupMonthStatus struct {
	Year        string
	Month       string
	TotalCount  int64
	TotalAmount int64
}

// TopupYearStatus is a yearly aggregate for a single status.
type TopupYearStatus struct {
	Year        string
	TotalCount  int64
	TotalAmount int64
}
