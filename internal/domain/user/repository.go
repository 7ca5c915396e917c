package user

import (
	"context"

	"payment-gateway/internal/domain/requests"
	"payment-gateway/internal/model"
)

// Repository is the persistence surface for platform accounts.
type Repository interface {
	FindAll(ctx context.Context, q requests.ListQuery) ([]model.User, int64, error)
	FindActive(ctx context.Context, q requests.ListQuery) ([]model.User, int64, error)
	FindTrashed(ctx context.Context, q requests.ListQuery) ([]model.User, int64, error)
	FindByID(ctx context.Context, id int) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	Create(ctx context.Context, u *model.User) (*model.User, error)
	Update(ctx context.Context, u *model.User) (*model.User, error)
	Trash(ctx context.Context, id int) (*model.User, error)
	Restore(ctx context.Context, id int) (*model.User, error)
	DeletePermanent(ctx context.Context, id int) error
	RestoreAll(ctx context.Context) error
	DeleteAllPermanent(ctx context.Context) error
}
