package userrepo

import (
	"context"

	"gorm.io/gorm"

	"payment-gateway/internal/apperrors"
	"payment-gateway/internal/domain/requests"
	"payment-gateway/internal/infrastructure/database/dbschema"
	"payment-gateway/internal/model"
)

// Repository is the gorm-backed user store.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires the user repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) search(q requests.ListQuery, tx *gorm.DB) *gorm.DB {
	if q.Search == "" {
		return tx
	}
	pattern := "%" + q.Search + "%"
	return tx.Where("firstname ILIKE ? OR lastname ILIKE ? OR email ILIKE ?", pattern, pattern, pattern)
}

func (r *Repository) page(ctx context.Context, q requests.ListQuery, scope func(*gorm.DB) *gorm.DB) ([]model.User, int64, error) {
	var total int64
	if err := r.search(q, scope(r.db.WithContext(ctx).Model(&dbschema.User{}))).Count(&total).Error; err != nil {
		return nil, 0, apperrors.WrapGorm(err, "count users")
	}

	var rows []dbschema.User
	if err := r.search(q, scope(r.db.WithContext(ctx).Model(&dbschema.User{}))).
		Order("id").
		Offset(q.Offset()).
		Limit(q.PageSize).
		Find(&rows).Error; err != nil {
		return nil, 0, apperrors.WrapGorm(err, "query users")
	}

	out := make([]model.User, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].EtoD())
	}
	return out, total, nil
}

// FindAll pages every user, trashed rows included.
func (r *Repository) FindAll(ctx context.Context, q requests.ListQuery) ([]model.User, int64, error) {
	return r.page(ctx, q, func(tx *gorm.DB) *gorm.DB { return tx.Unscoped() })
}

// FindActive pages non-trashed users.
func (r *Repository) FindActive(ctx context.Context, q requests.ListQuery) ([]model.User, int64, error) {
	return r.page(ctx, q, func(tx *gorm.DB) *gorm.DB { return tx })
}

// FindTrashed pages trashed users.
func (r *Repository) FindTrashed(ctx context.Context, q requests.ListQuery) ([]model.User, int64, error) {
	return r.page(ctx, q, func(tx *gorm.DB) *gorm.DB {
		return tx.Unscoped().Where("deleted_at IS NOT NULL")
	})
}

// FindByID fetches a non-trashed user.
func (r *Repository) FindByID(ctx context.Context, id int) (*model.User, error) {
	var row dbschema.User
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, apperrors.WrapGorm(err, "user not found")
	}
	return row.EtoD(), nil
}

// FindByEmail fetches a non-trashed user by email.
func (r *Repository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var row dbschema.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&row).Error; err != nil {
		return nil, apperrors.WrapGorm(err, "user not found")
	}
	return row.EtoD(), nil
}

// Create inserts a user.
func (r *Repository) Create(ctx context.Context, u *model.User) (*model.User, error) {
	row := dbschema.NewSchemaUser(u)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, apperrors.WrapGorm(err, "create user")
	}
	return row.EtoD(), nil
}

// Update saves a user.
func (r *Repository) Update(ctx context.Context, u *model.User) (*model.User, error) {
	row := dbschema.NewSchemaUser(u)
	res := r.db.WithContext(ctx).Model(&dbschema.User{}).Where("id = ?", row.ID).Updates(map[string]any{
		"firstname": row.Firstname,
		"lastname":  row.Lastname,
		"email":     row.Email,
		"password":  row.Password,
	})
	if res.Error != nil {
		return nil, apperrors.WrapGorm(res.Error, "update user")
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.NewRepositoryError(apperrors.RepoNotFound, "user not found", nil)
	}
	return r.FindByID(ctx, row.ID)
}

// Trash soft-deletes a user and returns the trashed row.
func (r *Repository) Trash(ctx context.Context, id int) (*model.User, error) {
	res := r.db.WithContext(ctx).Delete(&dbschema.User{}, id)
	if res.Error != nil {
		return nil, apperrors.WrapGorm(res.Error, "trash user")
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.NewRepositoryError(apperrors.RepoNotFound, "user not found", nil)
	}
	return r.findUnscoped(ctx, id)
}

// Restore clears the soft-delete marker.
func (r *Repository) Restore(ctx context.Context, id int) (*model.User, error) {
	res := r.db.WithContext(ctx).Unscoped().Model(&dbschema.User{}).
		Where("id = ? AND deleted_at IS NOT NULL", id).
		Update("deleted_at", nil)
	if res.Error != nil {
		return nil, apperrors.WrapGorm(res.Error, "restore user")
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.NewRepositoryError(apperrors.RepoNotFound, "trashed user not found", nil)
	}
	return r.FindByID(ctx, id)
}

// DeletePermanent removes a trashed user for good.
func (r *Repository) DeletePermanent(ctx context.Context, id int) error {
	res := r.db.WithContext(ctx).Unscoped().
		Where("id = ? AND deleted_at IS NOT NULL", id).
		Delete(&dbschema.User{})
	if res.Error != nil {
		return apperrors.WrapGorm(res.Error, "delete user")
	}
	if res.RowsAffected == 0 {
		return apperrors.NewRepositoryError(apperrors.RepoNotFound, "trashed user not found", nil)
	}
	return nil
}

// RestoreAll clears the soft-delete marker on every trashed user.
func (r *Repository) RestoreAll(ctx context.Context) error {
	if err := r.db.WithContext(ctx).Unscoped().Model(&dbschema.User{}).
		Where("deleted_at IS NOT NULL").
		Update("deleted_at", nil).Error; err != nil {
		return apperrors.WrapGorm(err, "restore all users")
	}
	return nil
}

// DeleteAllPermanent removes every trashed user for good.
func (r *Repository) DeleteAllPermanent(ctx context.Context) error {
	if err := r.db.WithContext(ctx).Unscoped().
		Where("deleted_at IS NOT NULL").
		Delete(&dbschema.User{}).Error; err != nil {
		return apperrors.WrapGorm(err, "delete all trashed users")
	}
	return nil
}

func (r *Repository) findUnscoped(ctx context.Context, id int) (*model.User, error) {
	var row dbschema.User
	if err := r.db.WithContext(ctx).Unscoped().First(&row, id).Error; err != nil {
		return nil, apperrors.WrapGorm(err, "user not found")
	}
	return row.EtoD(), nil
}
