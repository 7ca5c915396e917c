package responses

import "payment-gateway/internal/model"

// TransferResponse is the external transfer shape.
type TransferResponse struct {
	ID             int    `json:"id"`
	TransferNo     string `json:"transfer_no"`
	TransferFrom   string `json:"transfer_from"`
	TransferTo     string `json:"transfer_to"`
	TransferAmount int64  `json:"transfer_amount"`
	TransferTime   string `json:"transfer_time"`
	Status         string `json:"status"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
}

// TransferResponseDeleteAt is the transfer shape for trash listings.
type TransferResponseDeleteAt struct {
	ID             int     `json:"id"`
	TransferNo     string  `json:"transfer_no"`
	TransferFrom   string  `json:"transfer_from"`
	TransferTo     string  `json:"transfer_to"`
	TransferAmount int64   `json:"transfer_amount"`
	TransferTime   string  `json:"transfer_time"`
	Status         string  `json:"status"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
	DeletedAt      *string `json:"deleted_at"`
}

// TransferMonthAmountResponse is a monthly amount aggregate.
type TransferMonthAmountResponse struct {
	Month       string `json:"month"`
	TotalAmount int64  `json:"total_amount"`
}

// TransferYearAmountResponse is a yearly amount aggregate.
type TransferYearAmountResponse struct {
	Year        string `json:"year"`
	TotalAmount int64  `json:"total_amount"`
}

// TransferMonthStatusResponse is a month-of-year single-status aggregate.
type TransferMonthStatusResponse struct {
	Year        string `json:"year"`
	Month       string `json:"month"`
	TotalCount  int64  `json:"total_count"`
	TotalAmount int64  `json:"total_amount"`
}

// TransferYearStatusResponse is a yearly single-status aggregate.
type TransferYearStatusResponse struct {
	Year        string `json:"year"`
	TotalCount  int64  `json:"total_count"`
	TotalAmount int64  `json:"total_amount"`
}

func NewTransferResponse(m model.Transfer) TransferResponse {
	return TransferResponse{
		ID:             m.ID,
		TransferNo:     m.TransferNo,
		TransferFrom:   m.TransferFrom,
		TransferTo:     m.TransferTo,
		TransferAmount: m.TransferAmount,
		TransferTime:   formatTime(m.TransferTime),
		Status:         m.Status,
		CreatedAt:      formatTime(m.CreatedAt),
		UpdatedAt:      formatTime(m.UpdatedAt),
	}
}

func NewTransferResponseDeleteAt(m model.Transfer) TransferResponseDeleteAt {
	return TransferResponseDeleteAt{
		ID:             m.ID,
		TransferNo:     m.TransferNo,
		TransferFrom:   m.TransferFrom,
		TransferTo:     m.TransferTo,
		TransferAmount: m.TransferAmount,
		TransferTime:   formatTime(m.TransferTime),
		Status:         m.Status,
		CreatedAt:      formatTime(m.CreatedAt),
		UpdatedAt:      formatTime(m.UpdatedAt),
		DeletedAt:      formatTimePtr(m.DeletedAt),
	}
}

func NewTransferResponses(rows []model.Transfer) []TransferResponse {
	out := make([]TransferResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, NewTransferResponse(m))
	}
	return out
}

func NewTransferResponsesDeleteAt(rows []model.Transfer) []TransferResponseDeleteAt {
	out := make([]TransferResponseDeleteAt, 0, len(rows))
	for _, m := range rows {
		out = append(out, NewTransferResponseDeleteAt(m))
	}
	return out
}

func NewTransferMonthAmounts(rows []model.TransferMonthAmount) []TransferMonthAmountResponse {
	out := make([]TransferMonthAmountResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, TransferMonthAmountResponse{Month: m.Month, TotalAmount: m.TotalAmount})
	}
	return out
}

func NewTransferYearAmounts(rows []model.TransferYearAmount) []TransferYearAmountResponse {
	out := make([]TransferYearAmountResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, TransferYearAmountResponse{Year: m.Year, TotalAmount: m.TotalAmount})
	}
	return out
}

func NewTransferMonthStatuses(rows []model.TransferMonthStatus) []TransferMonthStatusResponse {
	out := make([]TransferMonthStatusResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, TransferMonthStatusResponse{Year: m.Year, Month: m.Month, TotalCount: m.TotalCount, TotalAmount: m.TotalAmount})
	}
	return out
}

func NewTransferYearStatuses(rows []model.TransferYearStatus) []TransferYearStatusResponse {
	out := make([]TransferYearStatusResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, TransferYearStatusResponse{Year: m.Year, TotalCount: m.TotalCount, TotalAmount: m.TotalAmount})
	}
	return out
}
