package responses

import (
	"payment-gateway/internal/model"
	"payment-gateway/internal/utils/mask"
)

// MerchantResponse is the external merchant shape. The API key is always
// masked on the way out; the full key is only shown once at creation.
type MerchantResponse struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	APIKey    string `json:"api_key"`
	UserID    int    `json:"user_id"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// MerchantResponseDeleteAt is the merchant shape for trash listings.
type MerchantResponseDeleteAt struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	APIKey    string  `json:"api_key"`
	UserID    int     `json:"user_id"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
	DeletedAt *string `json:"deleted_at"`
}

// MerchantCreatedResponse carries the one-time plaintext API key.
type MerchantCreatedResponse struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	APIKey    string `json:"api_key"`
	UserID    int    `json:"user_id"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// MerchantTransactionResponse is a merchant-scoped transaction row.
type MerchantTransactionResponse struct {
	TransactionID   int    `json:"transaction_id"`
	CardNumber      string `json:"card_number"`
	Amount          int64  `json:"amount"`
	PaymentMethod   string `json:"payment_method"`
	MerchantID      int    `json:"merchant_id"`
	MerchantName    string `json:"merchant_name"`
	TransactionTime string `json:"transaction_time"`
}

// MerchantResponseMonthlyPaymentMethod is a monthly per-method aggregate.
type MerchantResponseMonthlyPaymentMethod struct {
	Month         string `json:"month"`
	PaymentMethod string `json:"payment_method"`
	TotalAmount   int64  `json:"total_amount"`
}

// MerchantResponseYearlyPaymentMethod is a yearly per-method aggregate.
type MerchantResponseYearlyPaymentMethod struct {
	Year          string `json:"year"`
	PaymentMethod string `json:"payment_method"`
	TotalAmount   int64  `json:"total_amount"`
}

// MerchantResponseMonthlyAmount is a monthly amount aggregate.
type MerchantResponseMonthlyAmount struct {
	Month       string `json:"month"`
	TotalAmount int64  `json:"total_amount"`
}

// MerchantResponseYearlyAmount is a yearly amount aggregate.
type MerchantResponseYearlyAmount struct {
	Year        string `json:"year"`
	TotalAmount int64  `json:"total_amount"`
}

func NewMerchantResponse(m model.Merchant) MerchantResponse {
	return MerchantResponse{
		ID:        m.ID,
		Name:      m.Name,
		APIKey:    mask.APIKey(m.APIKey),
		UserID:    m.UserID,
		Status:    m.Status,
		CreatedAt: formatTime(m.CreatedAt),
		UpdatedAt: formatTime(m.UpdatedAt),
	}
}

func NewMerchantResponseDeleteAt(m model.Merchant) MerchantResponseDeleteAt {
	return MerchantResponseDeleteAt{
		ID:        m.ID,
		Name:      m.Name,
		APIKey:    mask.APIKey(m.APIKey),
		UserID:    m.UserID,
		Status:    m.Status,
		CreatedAt: formatTime(m.CreatedAt),
		UpdatedAt: formatTime(m.UpdatedAt),
		DeletedAt: formatTimePtr(m.DeletedAt),
	}
}

func NewMerchantCreatedResponse(m model.Merchant) MerchantCreatedResponse {
	return MerchantCreatedResponse{
		ID:        m.ID,
		Name:      m.Name,
		APIKey:    m.APIKey,
		UserID:    m.UserID,
		Status:    m.Status,
		CreatedAt: formatTime(m.CreatedAt),
		UpdatedAt: formatTime(m.UpdatedAt),
	}
}

func NewMerchantResponses(rows []model.Merchant) []MerchantResponse {
	out := make([]MerchantResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, NewMerchantResponse(m))
	}
	return out
}

func NewMerchantResponsesDeleteAt(rows []model.Merchant) []MerchantResponseDeleteAt {
	out := make([]MerchantResponseDeleteAt, 0, len(rows))
	for _, m := range rows {
		out = append(out, NewMerchantResponseDeleteAt(m))
	}
	return out
}

func NewMerchantTransactionResponses(rows []model.MerchantTransaction) []MerchantTransactionResponse {
	out := make([]MerchantTransactionResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, MerchantTransactionResponse{
			TransactionID:   m.TransactionID,
			CardNumber:      mask.CardNumber(m.CardNumber),
			Amount:          m.Amount,
			PaymentMethod:   m.PaymentMethod,
			MerchantID:      m.MerchantID,
			MerchantName:    m.MerchantName,
			TransactionTime: formatTime(m.TransactionTime),
		})
	}
	return out
}

func NewMerchantMonthlyPaymentMethods(rows []model.MerchantMonthlyPaymentMethod) []MerchantResponseMonthlyPaymentMethod {
	out := make([]MerchantResponseMonthlyPaymentMethod, 0, len(rows))
	for _, m := range rows {
		out = append(out, MerchantResponseMonthlyPaymentMethod{Month: m.Month, PaymentMethod: m.PaymentMethod, TotalAmount: m.TotalAmount})
	}
	return out
}

func NewMerchantYearlyPaymentMethods(rows []model.MerchantYearlyPaymentMethod) []MerchantResponseYearlyPaymentMethod {
	out := make([]MerchantResponseYearlyPaymentMethod, 0, len(rows))
	for _, m := range rows {
		out = append(out, MerchantResponseYearlyPaymentMethod{Year: m.Year, PaymentMethod: m.PaymentMethod, TotalAmount: m.TotalAmount})
	}
	return out
}

func NewMerchantMonthlyAmounts(rows []model.MerchantMonthlyAmount) []MerchantResponseMonthlyAmount {
	out := make([]MerchantResponseMonthlyAmount, 0, len(rows))
	for _, m := range rows {
		out = append(out, MerchantResponseMonthlyAmount{Month: m.Month, TotalAmount: m.TotalAmount})
	}
	return out
}

func NewMerchantYearlyAmounts(rows []model.MerchantYearlyAmount) []MerchantResponseYearlyAmount {
	out := make([]MerchantResponseYearlyAmount, 0, len(rows))
	for _, m := range rows {
		out = append(out, MerchantResponseYearlyAmount{Year: m.Year, TotalAmount: m.TotalAmount})
	}
	return out
}
