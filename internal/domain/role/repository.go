package role

import (
	"context"

	"payment-gateway/internal/domain/requests"
	"payment-gateway/internal/model"
)

// Repository is the persistence surface for access roles.
type Repository interface {
	FindAll(ctx context.Context, q requests.ListQuery) ([]model.Role, int64, error)
	FindActive(ctx context.Context, q requests.ListQuery) ([]model.Role, int64, error)
	FindTrashed(ctx context.Context, q requests.ListQuery) ([]model.Role, int64, error)
	FindByID(ctx context.Context, id int) (*model.Role, error)
	FindByUserID(ctx context.Context, userID int) ([]model.Role, error)
	Create(ctx context.Context, r *model.Role) (*model.Role, error)
	Update(ctx context.Context, r *model.Role) (*model.Role, error)
	Trash(ctx context.Context, id int) (*model.Role, error)
	Restore(ctx context.Context, id int) (*model.Role, error)
	DeletePermanent(ctx context.Context, id int) error
	RestoreAll(ctx context.Context) error
	DeleteAllPermanent(ctx context.Context) error
}
