package merchant

import (
	"context"

	"payment-gateway/internal/domain/requests"
	"payment-gateway/internal/model"
)

// Repository is the persistence surface for merchant accounts. Stats
// methods accept merchantID 0 to aggregate across all merchants.
type Repository interface {
	FindAll(ctx context.Context, q requests.ListQuery) ([]model.Merchant, int64, error)
	FindActive(ctx context.Context, q requests.ListQuery) ([]model.Merchant, int64, error)
	FindTrashed(ctx context.Context, q requests.ListQuery) ([]model.Merchant, int64, error)
	FindByID(ctx context.Context, id int) (*model.Merchant, error)
	FindByAPIKey(ctx context.Context, apiKey string) (*model.Merchant, error)
	FindByUserID(ctx context.Context, userID int) ([]model.Merchant, error)
	Create(ctx context.Context, m *model.Merchant) (*model.Merchant, error)
	Update(ctx context.Context, m *model.Merchant) (*model.Merchant, error)
	Trash(ctx context.Context, id int) (*model.Merchant, error)
	Restore(ctx context.Context, id int) (*model.Merchant, error)
	DeletePermanent(ctx context.Context, id int) error
	RestoreAll(ctx context.Context) error
	DeleteAllPermanent(ctx context.Context) error

	Transactions(ctx context.Context, merchantID int, q requests.ListQuery) ([]model.MerchantTransaction, int64, error)
	MonthlyPaymentMethods(ctx context.Context, merchantID, year int) ([]model.MerchantMonthlyPaymentMethod, error)
	YearlyPaymentMethods(ctx context.Context, merchantID, year int) ([]model.MerchantYearlyPaymentMethod, error)
	MonthlyAmounts(ctx context.Context, merchantID, year int) ([]model.MerchantMonthlyAmount, error)
	YearlyAmounts(ctx context.Context, merchantID, year int) ([]model.MerchantYearlyAmount, error)
}
