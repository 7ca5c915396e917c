package withdraw

import (
	"context"
	"time"

	"payment-gateway/internal/domain/requests"
	"payment-gateway/internal/model"
)

// Repository is the persistence surface for withdrawals. Stats methods
// accept an empty cardNumber to aggregate across all cards.
type Repository interface {
	FindAll(ctx context.Context, q requests.ListQuery) ([]model.Withdraw, int64, error)
	FindActive(ctx context.Context, q requests.ListQuery) ([]model.Withdraw, int64, error)
	FindTrashed(ctx context.Context, q requests.ListQuery) ([]model.Withdraw, int64, error)
	FindByID(ctx context.Context, id int) (*model.Withdraw, error)
	FindByCardNumber(ctx context.Context, cardNumber string, q requests.ListQuery) ([]model.Withdraw, int64, error)
	Create(ctx context.Context, w *model.Withdraw) (*model.Withdraw, error)
	Update(ctx context.Context, w *model.Withdraw) (*model.Withdraw, error)
	Trash(ctx context.Context, id int) (*model.Withdraw, error)
	Restore(ctx context.Context, id int) (*model.Withdraw, error)
	DeletePermanent(ctx context.Context, id int) error
	RestoreAll(ctx context.Context) error
	DeleteAllPermanent(ctx context.Context) error

	MonthlyAmounts(ctx context.Context, year int, cardNumber string) ([]model.WithdrawMonthAmount, error)
	YearlyAmounts(ctx context.Context, year int, cardNumber string) ([]model.WithdrawYearAmount, error)
	MonthStatus(ctx context.Context, year, month int, status, cardNumber string) ([]model.WithdrawMonthStatus, error)
	YearStatus(ctx context.Context, year int, status, cardNumber string) ([]model.WithdrawYearStatus, error)
}

// SaldoStore is the slice of balance persistence withdrawals need.
type SaldoStore interface {
	FindByCardNumber(ctx context.Context, cardNumber string) (*model.Saldo, error)
	AddBalance(ctx context.Context, cardNumber string, delta int64) (*model.Saldo, error)
	RecordWithdraw(ctx context.Context, cardNumber string, amount int64, at time.Time) (*model.Saldo, error)
}
