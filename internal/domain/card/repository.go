package card

import (
	"context"

	"payment-gateway/internal/domain/requests"
	"payment-gateway/internal/model"
)

// Repository is the persistence surface for issued cards.
type Repository interface {
	FindAll(ctx context.Context, q requests.ListQuery) ([]model.Card, int64, error)
	FindActive(ctx context.Context, q requests.ListQuery) ([]model.Card, int64, error)
	FindTrashed(ctx context.Context, q requests.ListQuery) ([]model.Card, int64, error)
	FindByID(ctx context.Context, id int) (*model.Card, error)
	FindByUserID(ctx context.Context, userID int) ([]model.Card, error)
	FindByCardNumber(ctx context.Context, cardNumber string) (*model.Card, error)
	Create(ctx context.Context, c *model.Card) (*model.Card, error)
	Update(ctx context.Context, c *model.Card) (*model.Card, error)
	Trash(ctx context.Context, id int) (*model.Card, error)
	Restore(ctx context.Context, id int) (*model.Card, error)
	DeletePermanent(ctx context.Context, id int) error
	RestoreAll(ctx context.Context) error
	DeleteAllPermanent(ctx context.Context) error

	Dashboard(ctx context.Context) (*model.CardDashboard, error)
	DashboardByCardNumber(ctx context.Context, cardNumber string) (*model.CardDashboardByNumber, error)
	MonthlyBalance(ctx context.Context, year int) ([]model.CardMonthBalance, error)
	YearlyBalance(ctx context.Context, year int) ([]model.CardYearBalance, error)
}
