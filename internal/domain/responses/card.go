package responses

import "payment-gateway/internal/model"

// CardResponse is the external card shape.
type CardResponse struct {
	ID           int    `json:"id"`
	UserID       int    `json:"user_id"`
	CardNumber   string `json:"card_number"`
	CardType     string `json:"card_type"`
	ExpireDate   string `json:"expire_date"`
	CVV          string `json:"cvv"`
	CardProvider string `json:"card_provider"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

// CardResponseDeleteAt is the card shape for trash listings.
type CardResponseDeleteAt struct {
	ID           int     `json:"id"`
	UserID       int     `json:"user_id"`
	CardNumber   string  `json:"card_number"`
	CardType     string  `json:"card_type"`
	ExpireDate   string  `json:"expire_date"`
	CVV          string  `json:"cvv"`
	CardProvider string  `json:"card_provider"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
	DeletedAt    *string `json:"deleted_at"`
}

// DashboardCard aggregates platform-wide card totals.
type DashboardCard struct {
	TotalBalance     int64 `json:"total_balance"`
	TotalTopup       int64 `json:"total_topup"`
	TotalWithdraw    int64 `json:"total_withdraw"`
	TotalTransaction int64 `json:"total_transaction"`
	TotalTransfer    int64 `json:"total_transfer"`
}

// DashboardCardCardNumber aggregates totals for one card number.
type DashboardCardCardNumber struct {
	TotalBalance         int64 `json:"total_balance"`
	TotalTopup           int64 `json:"total_topup"`
	TotalWithdraw        int64 `json:"total_withdraw"`
	TotalTransaction     int64 `json:"total_transaction"`
	TotalTransferSend    int64 `json:"total_transfer_send"`
	TotalTransferReceive int64 `json:"total_transfer_receiver"`
}

// CardResponseMonthBalance is a monthly balance point.
type CardResponseMonthBalance struct {
	Month        string `json:"month"`
	TotalBalance int64  `json:"total_balance"`
}

// CardResponseYearBalance is a yearly balance point.
type CardResponseYearBalance struct {
	Year         string `json:"year"`
	TotalBalance int64  `json:"total_balance"`
}

func NewCardResponse(m model.Card) CardResponse {
	return CardResponse{
		ID:           m.ID,
		UserID:       m.UserID,
		CardNumber:   m.CardNumber,
		CardType:     m.CardType,
		ExpireDate:   m.ExpireDate.Format("2006-01-02"),
		CVV:          m.CVV,
		CardProvider: m.CardProvider,
		CreatedAt:    formatTime(m.CreatedAt),
		UpdatedAt:    formatTime(m.UpdatedAt),
	}
}

func NewCardResponseDeleteAt(m model.Card) CardResponseDeleteAt {
	return CardResponseDeleteAt{
		ID:           m.ID,
		UserID:       m.UserID,
		CardNumber:   m.CardNumber,
		CardType:     m.CardType,
		ExpireDate:   m.ExpireDate.Format("2006-01-02"),
		CVV:          m.CVV,
		CardProvider: m.CardProvider,
		CreatedAt:    formatTime(m.CreatedAt),
		UpdatedAt:    formatTime(m.UpdatedAt),
		DeletedAt:    formatTimePtr(m.DeletedAt),
	}
}

func NewCardResponses(rows []model.Card) []CardResponse {
	out := make([]CardResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, NewCardResponse(m))
	}
	return out
}

func NewCardResponsesDeleteAt(rows []model.Card) []CardResponseDeleteAt {
	out := make([]CardResponseDeleteAt, 0, len(rows))
	for _, m := range rows {
		out = append(out, NewCardResponseDeleteAt(m))
	}
	return out
}

func NewCardMonthBalances(rows []model.CardMonthBalance) []CardResponseMonthBalance {
	out := make([]CardResponseMonthBalance, 0, len(rows))
	for _, m := range rows {
		out = append(out, CardResponseMonthBalance{Month: m.Month, TotalBalance: m.TotalBalance})
	}
	return out
}

func NewCardYearBalances(rows []model.CardYearBalance) []CardResponseYearBalance {
	out := make([]CardResponseYearBalance, 0, len(rows))
	for _, m := range rows {
		out = append(out, CardResponseYearBalance{Year: m.Year, TotalBalance: m.TotalBalance})
	}
	return out
}

func NewDashboardCard(m model.CardDashboard) DashboardCard {
	return DashboardCard{
		TotalBalance:     m.TotalBalance,
		TotalTopup:       m.TotalTopup,
		TotalWithdraw:    m.TotalWithdraw,
		TotalTransaction: m.TotalTransaction,
		TotalTransfer:    m.TotalTransfer,
	}
}

func NewDashboardCardCardNumber(m model.CardDashboardByNumber) DashboardCardCardNumber {
	return DashboardCardCardNumber{
		TotalBalance:         m.TotalBalance,
		TotalTopup:           m.TotalTopup,
		TotalWithdraw:        m.TotalWithdraw,
		TotalTransaction:     m.TotalTransaction,
		TotalTransferSend:    m.TotalTransferSend,
		TotalTransferReceive: m.TotalTransferReceive,
	}
}
