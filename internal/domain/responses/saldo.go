package responses

import "payment-gateway/internal/model"

// SaldoResponse is the external balance shape.
type SaldoResponse struct {
	ID             int    `json:"id"`
	CardNumber     string `json:"card_number"`
	TotalBalance   int64  `json:"total_balance"`
	WithdrawAmount int64  `json:"withdraw_amount"`
	WithdrawTime   string `json:"withdraw_time"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
}

// SaldoResponseDeleteAt is the balance shape for trash listings.
type SaldoResponseDeleteAt struct {
	ID             int     `json:"id"`
	CardNumber     string  `json:"card_number"`
	TotalBalance   int64   `json:"total_balance"`
	WithdrawAmount int64   `json:"withdraw_amount"`
	WithdrawTime   string  `json:"withdraw_time"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
	DeletedAt      *string `json:"deleted_at"`
}

// SaldoMonthTotalBalanceResponse is a month-of-year balance aggregate.
type SaldoMonthTotalBalanceResponse struct {
	Year         string `json:"year"`
	Month        string `json:"month"`
	TotalBalance int64  `json:"total_balance"`
}

// SaldoYearTotalBalanceResponse is a yearly balance aggregate.
type SaldoYearTotalBalanceResponse struct {
	Year         string `json:"year"`
	TotalBalance int64  `json:"total_balance"`
}

func NewSaldoResponse(m model.Saldo) SaldoResponse {
	wt := ""
	if m.WithdrawTime != nil {
		wt = formatTime(*m.WithdrawTime)
	}
	return SaldoResponse{
		ID:             m.ID,
		CardNumber:     m.CardNumber,
		TotalBalance:   m.TotalBalance,
		WithdrawAmount: m.WithdrawAmount,
		WithdrawTime:   wt,
		CreatedAt:      formatTime(m.CreatedAt),
		UpdatedAt:      formatTime(m.UpdatedAt),
	}
}

func NewSaldoResponseDeleteAt(m model.Saldo) SaldoResponseDeleteAt {
	wt := ""
	if m.WithdrawTime != nil {
		wt = formatTime(*m.WithdrawTime)
	}
	return SaldoResponseDeleteAt{
		ID:             m.ID,
		CardNumber:     m.CardNumber,
		TotalBalance:   m.TotalBalance,
		WithdrawAmount: m.WithdrawAmount,
		WithdrawTime:   wt,
		CreatedAt:      formatTime(m.CreatedAt),
		UpdatedAt:      formatTime(m.UpdatedAt),
		DeletedAt:      formatTimePtr(m.DeletedAt),
	}
}

func NewSaldoResponses(rows []model.Saldo) []SaldoResponse {
	out := make([]SaldoResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, NewSaldoResponse(m))
	}
	return out
}

func NewSaldoResponsesDeleteAt(rows []model.Saldo) []SaldoResponseDeleteAt {
	out := make([]SaldoResponseDeleteAt, 0, len(rows))
	for _, m := range rows {
		out = append(out, NewSaldoResponseDeleteAt(m))
	}
	return out
}

func NewSaldoMonthTotalBalances(rows []model.SaldoMonthTotalBalance) []SaldoMonthTotalBalanceResponse {
	out := make([]SaldoMonthTotalBalanceResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, SaldoMonthTotalBalanceResponse{Year: m.Year, Month: m.Month, TotalBalance: m.TotalBalance})
	}
	return out
}

func NewSaldoYearTotalBalances(rows []model.SaldoYearTotalBalance) []SaldoYearTotalBalanceResponse {
	out := make([]SaldoYearTotalBalanceResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, SaldoYearTotalBalanceResponse{Year: m.Year, TotalBalance: m.TotalBalance})
	}
	return out
}
