package topup

import (
	"context"

	"payment-gateway/internal/domain/requests"
	"payment-gateway/internal/model"
)

// Repository is the persistence surface for top-ups. Stats methods accept
// an empty cardNumber to aggregate across all cards.
type Repository interface {
	FindAll(ctx context.Context, q requests.ListQuery) ([]model.Topup, int64, error)
	FindActive(ctx context.Context, q requests.ListQuery) ([]model.Topup, int64, error)
	FindTrashed(ctx context.Context, q requests.ListQuery) ([]model.Topup, int64, error)
	FindByID(ctx context.Context, id int) (*model.Topup, error)
	FindByCardNumber(ctx context.Context, cardNumber string, q requests.ListQuery) ([]model.Topup, int64, error)
	Create(ctx context.Context, t *model.Topup) (*model.Topup, error)
	Update(ctx context.Context, t *model.Topup) (*model.Topup, error)
	Trash(ctx context.Context, id int) (*model.Topup, error)
	Restore(ctx context.Context, id int) (*model.Topup, error)
	DeletePermanent(ctx context.Context, id int) error
	RestoreAll(ctx context.Context) error
	DeleteAllPermanent(ctx context.Context) error

	MonthlyAmounts(ctx context.Context, year int, cardNumber string) ([]model.TopupMonthAmount, error)
	YearlyAmounts(ctx context.Context, year int, cardNumber string) ([]model.TopupYearAmount, error)
	MonthlyMethods(ctx context.Context, year int, cardNumber string) ([]model.TopupMonthMethod, error)
	YearlyMethods(ctx context.Context, year int, cardNumber string) ([]model.TopupYearMethod, error)
	MonthStatus(ctx context.Context, year, month int, status, cardNumber string) ([]model.TopupMonthStatus, error)
	YearStatus(ctx context.Context, year int, status, cardNumber string) ([]model.TopupYearStatus, error)
}

// SaldoStore is the slice of balance persistence top-ups need.
type SaldoStore interface {
	FindByCardNumber(ctx context.Context, cardNumber string) (*model.Saldo, error)
	AddBalance(ctx context.Context, cardNumber string, delta int64) (*model.Saldo, error)
}
