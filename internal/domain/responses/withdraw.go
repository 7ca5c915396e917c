package responses

import "payment-gateway/internal/model"

// WithdrawResponse is the external withdrawal shape.
type WithdrawResponse struct {
	ID             int    `json:"id"`
	WithdrawNo     string `json:"withdraw_no"`
	CardNumber     string `json:"card_number"`
	WithdrawAmount int64  `json:"withdraw_amount"`
	WithdrawTime   string `json:"withdraw_time"`
	Status         string `json:"status"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
}

// WithdrawResponseDeleteAt is the withdrawal shape for trash listings.
type WithdrawResponseDeleteAt struct {
	ID             int     `json:"id"`
	WithdrawNo     string  `json:"withdraw_no"`
	CardNumber     string  `json:"card_number"`
	WithdrawAmount int64   `json:"withdraw_amount"`
	WithdrawTime   string  `json:"withdraw_time"`
	Status         string  `json:"status"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
	DeletedAt      *string `json:"deleted_at"`
}

// WithdrawMonthAmountResponse is a monthly amount aggregate.
type WithdrawMonthAmountResponse struct {
	Month       string `json:"month"`
	TotalAmount int64  `json:"total_amount"`
}

// WithdrawYearAmountResponse is a yearly amount aggregate.
type WithdrawYearAmountResponse struct {
	Year        string `json:"year"`
	TotalAmount int64  `json:"total_amount"`
}

// WithdrawMonthStatusResponse is a month-of-year single-status aggregate.
type WithdrawMonthStatusResponse struct {
	Year        string `json:"year"`
	Month       string `json:"month"`
	TotalCount  int64  `json:"total_count"`
	TotalAmount int64  `json:"total_amount"`
}

// WithdrawYearStatusResponse is a yearly single-status aggregate.
type WithdrawYearStatusResponse struct {
	Year        string `json:"year"`
	TotalCount  int64  `json:"total_count"`
	TotalAmount int64  `json:"total_amount"`
}

func NewWithdrawResponse(m model.Withdraw) WithdrawResponse {
	return WithdrawResponse{
		ID:             m.ID,
		WithdrawNo:     m.WithdrawNo,
		CardNumber:     m.CardNumber,
		WithdrawAmount: m.WithdrawAmount,
		WithdrawTime:   formatTime(m.WithdrawTime),
		Status:         m.Status,
		CreatedAt:      formatTime(m.CreatedAt),
		UpdatedAt:      formatTime(m.UpdatedAt),
	}
}

func NewWithdrawResponseDeleteAt(m model.Withdraw) WithdrawResponseDeleteAt {
	return WithdrawResponseDeleteAt{
		ID:             m.ID,
		WithdrawNo:     m.WithdrawNo,
		CardNumber:     m.CardNumber,
		WithdrawAmount: m.WithdrawAmount,
		WithdrawTime:   formatTime(m.WithdrawTime),
		Status:         m.Status,
		CreatedAt:      formatTime(m.CreatedAt),
		UpdatedAt:      formatTime(m.UpdatedAt),
		DeletedAt:      formatTimePtr(m.DeletedAt),
	}
}

func NewWithdrawResponses(rows []model.Withdraw) []WithdrawResponse {
	out := make([]WithdrawResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, NewWithdrawResponse(m))
	}
	return out
}

func NewWithdrawResponsesDeleteAt(rows []model.Withdraw) []WithdrawResponseDeleteAt {
	out := make([]WithdrawResponseDeleteAt, 0, len(rows))
	for _, m := range rows {
		out = append(out, NewWithdrawResponseDeleteAt(m))
	}
	return out
}

func NewWithdrawMonthAmounts(rows []model.WithdrawMonthAmount) []WithdrawMonthAmountResponse {
	out := make([]WithdrawMonthAmountResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, WithdrawMonthAmountResponse{Month: m.Month, TotalAmount: m.TotalAmount})
	}
	return out
}

func NewWithdrawYearAmounts(rows []model.WithdrawYearAmount) []WithdrawYearAmountResponse {
	out := make([]WithdrawYearAmountResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, WithdrawYearAmountResponse{Year: m.Year, TotalAmount: m.TotalAmount})
	}
	return out
}

func NewWithdrawMonthStatuses(rows []model.WithdrawMonthStatus) []WithdrawMonthStatusResponse {
	out := make([]WithdrawMonthStatusResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, WithdrawMonthStatusResponse{Year: m.Year, Month: m.Month, TotalCount: m.TotalCount, TotalAmount: m.TotalAmount})
	}
	return out
}

func NewWithdrawYearStatuses(rows []model.WithdrawYearStatus) []WithdrawYearStatusResponse {
	out := make([]WithdrawYearStatusResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, WithdrawYearStatusResponse{Year: m.Year, TotalCount: m.TotalCount, TotalAmount: m.TotalAmount})
	}
	return out
}
