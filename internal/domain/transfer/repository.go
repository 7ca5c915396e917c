package transfer

import (
	"context"

	"payment-gateway/internal/domain/requests"
	"payment-gateway/internal/model"
)

// Repository is the persistence surface for card-to-card transfers.
// Stats methods accept an empty cardNumber to aggregate across all
// cards; a card number matches the sending side.
type Repository interface {
	FindAll(ctx context.Context, q requests.ListQuery) ([]model.Transfer, int64, error)
	FindActive(ctx context.Context, q requests.ListQuery) ([]model.Transfer, int64, error)
	FindTrashed(ctx context.Context, q requests.ListQuery) ([]model.Transfer, int64, error)
	FindByID(ctx context.Context, id int) (*model.Transfer, error)
	FindByTransferFrom(ctx context.Context, cardNumber string, q requests.ListQuery) ([]model.Transfer, int64, error)
	FindByTransferTo(ctx context.Context, cardNumber string, q requests.ListQuery) ([]model.Transfer, int64, error)
	Create(ctx context.Context, t *model.Transfer) (*model.Transfer, error)
	Update(ctx context.Context, t *model.Transfer) (*model.Transfer, error)
	Trash(ctx context.Context, id int) (*model.Transfer, error)
	Restore(ctx context.Context, id int) (*model.Transfer, error)
	DeletePermanent(ctx context.Context, id int) error
	RestoreAll(ctx context.Context) error
	DeleteAllPermanent(ctx context.Context) error

	MonthlyAmounts(ctx context.Context, year int, cardNumber string) ([]model.TransferMonthAmount, error)
	YearlyAmounts(ctx context.Context, year int, cardNumber string) ([]model.TransferYearAmount, error)
	MonthStatus(ctx context.Context, year, month int, status, cardNumber string) ([]model.TransferMonthStatus, error)
	YearStatus(ctx context.Context, year int, status, cardNumber string) ([]model.TransferYearStatus, error)
}

// SaldoStore is the slice of balance persistence transfers need.
type SaldoStore interface {
	FindByCardNumber(ctx context.Context, cardNumber string) (*model.Saldo, error)
	AddBalance(ctx context.Context, cardNumber string, delta int64) (*model.Saldo, error)
}
