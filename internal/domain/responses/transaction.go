package responses

import "payment-gateway/internal/model"

// TransactionResponse is the external transaction shape.
type TransactionResponse struct {
	ID              int    `json:"id"`
	CardNumber      string `json:"card_number"`
	TransactionNo   string `json:"transaction_no"`
	Amount          int64  `json:"amount"`
	PaymentMethod   string `json:"payment_method"`
	MerchantID      int    `json:"merchant_id"`
	TransactionTime string `json:"transaction_time"`
	Status          string `json:"status"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
}

// TransactionResponseDeleteAt is the transaction shape for trash listings.
type TransactionResponseDeleteAt struct {
	ID              int     `json:"id"`
	CardNumber      string  `json:"card_number"`
	TransactionNo   string  `json:"transaction_no"`
	Amount          int64   `json:"amount"`
	PaymentMethod   string  `json:"payment_method"`
	MerchantID      int     `json:"merchant_id"`
	TransactionTime string  `json:"transaction_time"`
	Status          string  `json:"status"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
	DeletedAt       *string `json:"deleted_at"`
}

// TransactionMonthAmountResponse is a monthly amount aggregate.
type TransactionMonthAmountResponse struct {
	Month       string `json:"month"`
	TotalAmount int64  `json:"total_amount"`
}

// TransactionYearAmountResponse is a yearly amount aggregate.
type TransactionYearAmountResponse struct {
	Year        string `json:"year"`
	TotalAmount int64  `json:"total_amount"`
}

// TransactionMonthMethodResponse is a monthly per-method aggregate.
type TransactionMonthMethodResponse struct {
	Month         string `json:"month"`
	PaymentMethod string `json:"payment_method"`
	TotalAmount   int64  `json:"total_amount"`
}

// TransactionYearMethodResponse is a yearly per-method aggregate.
type TransactionYearMethodResponse struct {
	Year          string `json:"year"`
	PaymentMethod string `json:"payment_method"`
	TotalAmount   int64  `json:"total_amount"`
}

// TransactionMonthStatusResponse is a month-of-year single-status aggregate.
type TransactionMonthStatusResponse struct {
	Year        string `json:"year"`
	Month       string `json:"month"`
	TotalCount  int64  `json:"total_count"`
	TotalAmount int64  `json:"total_amount"`
}

// TransactionYearStatusResponse is a yearly single-status aggregate.
type TransactionYearStatusResponse struct {
	Year        string `json:"year"`
	TotalCount  int64  `json:"total_count"`
	TotalAmount int64  `json:"total_amount"`
}

func NewTransactionResponse(m model.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:              m.ID,
		CardNumber:      m.CardNumber,
		TransactionNo:   m.TransactionNo,
		Amount:          m.Amount,
		PaymentMethod:   m.PaymentMethod,
		MerchantID:      m.MerchantID,
		TransactionTime: formatTime(m.TransactionTime),
		Status:          m.Status,
		CreatedAt:       formatTime(m.CreatedAt),
		UpdatedAt:       formatTime(m.UpdatedAt),
	}
}

func NewTransactionResponseDeleteAt(m model.Transaction) TransactionResponseDeleteAt {
	return TransactionResponseDeleteAt{
		ID:              m.ID,
		CardNumber:      m.CardNumber,
		TransactionNo:   m.TransactionNo,
		Amount:          m.Amount,
		PaymentMethod:   m.PaymentMethod,
		MerchantID:      m.MerchantID,
		TransactionTime: formatTime(m.TransactionTime),
		Status:          m.Status,
		CreatedAt:       formatTime(m.CreatedAt),
		UpdatedAt:       formatTime(m.UpdatedAt),
		DeletedAt:       formatTimePtr(m.DeletedAt),
	}
}

func NewTransactionResponses(rows []model.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, NewTransactionResponse(m))
	}
	return out
}

func NewTransactionResponsesDeleteAt(rows []model.Transaction) []TransactionResponseDeleteAt {
	out := make([]TransactionResponseDeleteAt, 0, len(rows))
	for _, m := range rows {
		out = append(out, NewTransactionResponseDeleteAt(m))
	}
	return out
}

func NewTransactionMonthAmounts(rows []model.TransactionMonthAmount) []TransactionMonthAmountResponse {
	out := make([]TransactionMonthAmountResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, TransactionMonthAmountResponse{Month: m.Month, TotalAmount: m.TotalAmount})
	}
	return out
}

func NewTransactionYearAmounts(rows []model.TransactionYearAmount) []TransactionYearAmountResponse {
	out := make([]TransactionYearAmountResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, TransactionYearAmountResponse{Year: m.Year, TotalAmount: m.TotalAmount})
	}
	return out
}

func NewTransactionMonthMethods(rows []model.TransactionMonthMethod) []TransactionMonthMethodResponse {
	out := make([]TransactionMonthMethodResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, TransactionMonthMethodResponse{Month: m.Month, PaymentMethod: m.PaymentMethod, TotalAmount: m.TotalAmount})
	}
	return out
}

func NewTransactionYearMethods(rows []model.TransactionYearMethod) []TransactionYearMethodResponse {
	out := make([]TransactionYearMethodResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, TransactionYearMethodResponse{Year: m.Year, PaymentMethod: m.PaymentMethod, TotalAmount: m.TotalAmount})
	}
	return out
}

func NewTransactionMonthStatuses(rows []model.TransactionMonthStatus) []TransactionMonthStatusResponse {
	out := make([]TransactionMonthStatusResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, TransactionMonthStatusResponse{Year: m.Year, Month: m.Month, TotalCount: m.TotalCount, TotalAmount: m.TotalAmount})
	}
	return out
}

func NewTransactionYearStatuses(rows []model.TransactionYearStatus) []TransactionYearStatusResponse {
	out := make([]TransactionYearStatusResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, TransactionYearStatusResponse{Year: m.Year, TotalCount: m.TotalCount, TotalAmount: m.TotalAmount})
	}
	return out
}
