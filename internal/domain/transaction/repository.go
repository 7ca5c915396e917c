package transaction

import (
	"context"

	"payment-gateway/internal/domain/requests"
	"payment-gateway/internal/model"
)

// Repository is the persistence surface for card payments. Stats methods
// accept an empty cardNumber to aggregate across all cards.
type Repository interface {
	FindAll(ctx context.Context, q requests.ListQuery) ([]model.Transaction, int64, error)
	FindActive(ctx context.Context, q requests.ListQuery) ([]model.Transaction, int64, error)
	FindTrashed(ctx context.Context, q requests.ListQuery) ([]model.Transaction, int64, error)
	FindByID(ctx context.Context, id int) (*model.Transaction, error)
	FindByCardNumber(ctx context.Context, cardNumber string, q requests.ListQuery) ([]model.Transaction, int64, error)
	FindByMerchantID(ctx context.Context, merchantID int, q requests.ListQuery) ([]model.Transaction, int64, error)
	Create(ctx context.Context, t *model.Transaction) (*model.Transaction, error)
	Update(ctx context.Context, t *model.Transaction) (*model.Transaction, error)
	Trash(ctx context.Context, id int) (*model.Transaction, error)
	Restore(ctx context.Context, id int) (*model.Transaction, error)
	DeletePermanent(ctx context.Context, id int) error
	RestoreAll(ctx context.Context) error
	DeleteAllPermanent(ctx context.Context) error

	MonthlyAmounts(ctx context.Context, year int, cardNumber string) ([]model.TransactionMonthAmount, error)
	YearlyAmounts(ctx context.Context, year int, cardNumber string) ([]model.TransactionYearAmount, error)
	MonthlyMethods(ctx context.Context, year int, cardNumber string) ([]model.TransactionMonthMethod, error)
	YearlyMethods(ctx context.Context, year int, cardNumber string) ([]model.TransactionYearMethod, error)
	MonthStatus(ctx context.Context, year, month int, status, cardNumber string) ([]model.TransactionMonthStatus, error)
	YearStatus(ctx context.Context, year int, status, cardNumber string) ([]model.TransactionYearStatus, error)
}

// MerchantResolver resolves the x-api-key header to a merchant.
type MerchantResolver interface {
	FindByAPIKey(ctx context.Context, apiKey string) (*model.Merchant, error)
}

// SaldoStore is the slice of balance persistence payments need.
type SaldoStore interface {
	FindByCardNumber(ctx context.Context, cardNumber string) (*model.Saldo, error)
	AddBalance(ctx context.Context, cardNumber string, delta int64) (*model.Saldo, error)
}
