package model

import "time"

// Card represents an issued card row.
type Card struct {
	ID           int
	UserID       int
	CardNumber   string
	CardType     string
	ExpireDate   time.Time
	CVV          string
	CardProvider string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time
}

// CardMonthBalance is a monthly balance aggregate row.
type CardMonthBalance struct {
	Month        string
	TotalBalance int64
}

// CardYearBalance is a yearly balance aggregate row.
type CardYearBalance struct {
	Year         string
	TotalBalance int64
}

// CardDashboard aggregates platform-wide totals for the card dashboard.
type CardDashboard struct {
	TotalBalance     int64
	TotalTopup       int64
	TotalWithdraw    int64
	TotalTransaction int64
	TotalTransfer    int64
}

// CardDashboardByNumber aggregates totals for a single card number, with
// transfers split by direction.
type CardDashboardByNumber struct {
	TotalBalance         int64
	TotalTopup           int64
	TotalWithdraw        int64
	TotalTransaction     int64
	TotalTransferSend    int64
	TotalTransferReceive int64
}
