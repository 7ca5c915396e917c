package saldo

import (
	"context"

	"payment-gateway/internal/domain/requests"
	"payment-gateway/internal/model"
)

// Repository is the persistence surface for card balances.
type Repository interface {
	FindAll(ctx context.Context, q requests.ListQuery) ([]model.Saldo, int64, error)
	FindActive(ctx context.Context, q requests.ListQuery) ([]model.Saldo, int64, error)
	FindTrashed(ctx context.Context, q requests.ListQuery) ([]model.Saldo, int64, error)
	FindByID(ctx context.Context, id int) (*model.Saldo, error)
	FindByCardNumber(ctx context.Context, cardNumber string) (*model.Saldo, error)
	Create(ctx context.Context, s *model.Saldo) (*model.Saldo, error)
	Update(ctx context.Context, s *model.Saldo) (*model.Saldo, error)
	Trash(ctx context.Context, id int) (*model.Saldo, error)
	Restore(ctx context.Context, id int) (*model.Saldo, error)
	DeletePermanent(ctx context.Context, id int) error
	RestoreAll(ctx context.Context) error
	DeleteAllPermanent(ctx context.Context) error

	MonthlyTotalBalance(ctx context.Context, year int) ([]model.SaldoMonthTotalBalance, error)
	YearlyTotalBalance(ctx context.Context, year int) ([]model.SaldoYearTotalBalance, error)
}
