package responses

import "payment-gateway/internal/model"

// TopupResponse is the external top-up shape.
type TopupResponse struct {
	ID          int    `json:"id"`
	CardNumber  string `json:"card_number"`
	TopupNo     string `json:"topup_no"`
	TopupAmount int64  `json:"topup_amount"`
	TopupMethod string `json:"topup_method"`
	TopupTime   string `json:"topup_time"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// TopupResponseDeleteAt is the top-up shape for trash listings.
type TopupResponseDeleteAt struct {
	ID          int     `json:"id"`
	CardNumber  string  `json:"card_number"`
	TopupNo     string  `json:"topup_no"`
	TopupAmount int64   `json:"topup_amount"`
	TopupMethod string  `json:"topup_method"`
	TopupTime   string  `json:"topup_time"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
	DeletedAt   *string `json:"deleted_at"`
}

// TopupMonthAmountResponse is a monthly amount aggregate.
type TopupMonthAmountResponse struct {
	Month       string `json:"month"`
	TotalAmount int64  `json:"total_amount"`
}

// TopupYearAmountResponse is a yearly amount aggregate.
type TopupYearAmountResponse struct {
	Year        string `json:"year"`
	TotalAmount int64  `json:"total_amount"`
}

// TopupMonthMethodResponse is a monthly per-method aggregate.
type TopupMonthMethodResponse struct {
	Month       string `json:"month"`
	TopupMethod string `json:"topup_method"`
	TotalTopups int64  `json:"total_topups"`
	TotalAmount int64  `json:"total_amount"`
}

// TopupYearMethodResponse is a yearly per-method aggregate.
type TopupYearMethodResponse struct {
	Year        string `json:"year"`
	TopupMethod string `json:"topup_method"`
	TotalTopups int64  `json:"total_topups"`
	TotalAmount int64  `json:"total_amount"`
}

// TopupMonthStatusResponse is a month-of-year single-status aggregate.
type TopupMonthStatusResponse struct {
	Year        string `json:"year"`
	Month       string `json:"month"`
	TotalCount  int64  `json:"total_count"`
	TotalAmount int64  `json:"total_amount"`
}

// TopupYearStatusResponse is a yearly single-status aggregate.
type TopupYearStatusResponse struct {
	Year        string `json:"year"`
	TotalCount  int64  `json:"total_count"`
	TotalAmount int64  `json:"total_amount"`
}

func NewTopupResponse(m model.Topup) TopupResponse {
	return TopupResponse{
		ID:          m.ID,
		CardNumber:  m.CardNumber,
		TopupNo:     m.TopupNo,
		TopupAmount: m.TopupAmount,
		TopupMethod: m.TopupMethod,
		TopupTime:   formatTime(m.TopupTime),
		Status:      m.Status,
		CreatedAt:   formatTime(m.CreatedAt),
		UpdatedAt:   formatTime(m.UpdatedAt),
	}
}

func NewTopupResponseDeleteAt(m model.Topup) TopupResponseDeleteAt {
	return TopupResponseDeleteAt{
		ID:          m.ID,
		CardNumber:  m.CardNumber,
		TopupNo:     m.TopupNo,
		TopupAmount: m.TopupAmount,
		TopupMethod: m.TopupMethod,
		TopupTime:   formatTime(m.TopupTime),
		Status:      m.Status,
		CreatedAt:   formatTime(m.CreatedAt),
		UpdatedAt:   formatTime(m.UpdatedAt),
		DeletedAt:   formatTimePtr(m.DeletedAt),
	}
}

func NewTopupResponses(rows []model.Topup) []TopupResponse {
	out := make([]TopupResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, NewTopupResponse(m))
	}
	return out
}

func NewTopupResponsesDeleteAt(rows []model.Topup) []TopupResponseDeleteAt {
	out := make([]TopupResponseDeleteAt, 0, len(rows))
	for _, m := range rows {
		out = append(out, NewTopupResponseDeleteAt(m))
	}
	return out
}

func NewTopupMonthAmounts(rows []model.TopupMonthAmount) []TopupMonthAmountResponse {
	out := make([]TopupMonthAmountResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, TopupMonthAmountResponse{Month: m.Month, TotalAmount: m.TotalAmount})
	}
	return out
}

func NewTopupYearAmounts(rows []model.TopupYearAmount) []TopupYearAmountResponse {
	out := make([]TopupYearAmountResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, TopupYearAmountResponse{Year: m.Year, TotalAmount: m.TotalAmount})
	}
	return out
}

func NewTopupMonthMethods(rows []model.TopupMonthMethod) []TopupMonthMethodResponse {
	out := make([]TopupMonthMethodResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, TopupMonthMethodResponse{Month: m.Month, TopupMethod: m.TopupMethod, TotalTopups: m.TotalTopups, TotalAmount: m.TotalAmount})
	}
	return out
}

func NewTopupYearMethods(rows []model.TopupYearMethod) []TopupYearMethodResponse {
	out := make([]TopupYearMethodResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, TopupYearMethodResponse{Year: m.Year, TopupMethod: m.TopupMethod, TotalTopups: m.TotalTopups, TotalAmount: m.TotalAmount})
	}
	return out
}

func NewTopupMonthStatuses(rows []model.TopupMonthStatus) []TopupMonthStatusResponse {
	out := make([]TopupMonthStatusResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, TopupMonthStatusResponse{Year: m.Year, Month: m.Month, TotalCount: m.TotalCount, TotalAmount: m.TotalAmount})
	}
	return out
}

func NewTopupYearStatuses(rows []model.TopupYearStatus) []TopupYearStatusResponse {
	out := make([]TopupYearStatusResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, TopupYearStatusResponse{Year: m.Year, TotalCount: m.TotalCount, TotalAmount: m.TotalAmount})
	}
	return out
}
