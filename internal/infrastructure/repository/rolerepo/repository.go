package rolerepo

import (
	"context"

	"gorm.io/gorm"

	"payment-gateway/internal/apperrors"
	"payment-gateway/internal/domain/requests"
	"payment-gateway/internal/infrastructure/database/dbschema"
	"payment-gateway/internal/model"
)

// Repository is the gorm-backed role store.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) search(q requests.ListQuery, tx *gorm.DB) *gorm.DB {
	if q.Search == "" {
		return tx
	}
	return tx.Where("name ILIKE ?", "%"+q.Search+"%")
}

func (r *Repository) page(ctx context.Context, q requests.ListQuery, scope func(*gorm.DB) *gorm.DB) ([]model.Role, int64, error) {
	var total int64
	if err := r.search(q, scope(r.db.WithContext(ctx).Model(&dbschema.Role{}))).Count(&total).Error; err != nil {
		return nil, 0, apperrors.WrapGorm(err, "count roles")
	}

	var rows []dbschema.Role
	if err := r.search(q, scope(r.db.WithContext(ctx).Model(&dbschema.Role{}))).
		Order("id").
		Offset(q.Offset()).
		Limit(q.PageSize).
		Find(&rows).Error; err != nil {
		return nil, 0, apperrors.WrapGorm(err, "query roles")
	}

	out := make([]model.Role, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].EtoD())
	}
	return out, total, nil
}

func (r *Repository) FindAll(ctx context.Context, q requests.ListQuery) ([]model.Role, int64, error) {
	return r.page(ctx, q, func(tx *gorm.DB) *gorm.DB { return tx.Unscoped() })
}

func (r *Repository) FindActive(ctx context.Context, q requests.ListQuery) ([]model.Role, int64, error) {
	return r.page(ctx, q, func(tx *gorm.DB) *gorm.DB { return tx })
}

func (r *Repository) FindTrashed(ctx context.Context, q requests.ListQuery) ([]model.Role, int64, error) {
	return r.page(ctx, q, func(tx *gorm.DB) *gorm.DB {
		return tx.Unscoped().Where("deleted_at IS NOT NULL")
	})
}

func (r *Repository) FindByID(ctx context.Context, id int) (*model.Role, error) {
	var row dbschema.Role
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, apperrors.WrapGorm(err, "role not found")
	}
	return row.EtoD(), nil
}

// FindByUserID returns every role assigned to the user through user_roles.
func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]model.Role, error) {
	var rows []dbschema.Role
	if err := r.db.WithContext(ctx).Model(&dbschema.Role{}).
		Joins("JOIN user_roles ON user_roles.role_id = roles.id").
		Where("user_roles.user_id = ?", userID).
		Order("roles.id").
		Find(&rows).Error; err != nil {
		return nil, apperrors.WrapGorm(err, "query roles by user")
	}

	out := make([]model.Role, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].EtoD())
	}
	return out, nil
}

func (r *Repository) Create(ctx context.Context, role *model.Role) (*model.Role, error) {
	row := dbschema.NewSchemaRole(role)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, apperrors.WrapGorm(err, "create role")
	}
	return row.EtoD(), nil
}

func (r *Repository) Update(ctx context.Context, role *model.Role) (*model.Role, error) {
	res := r.db.WithContext(ctx).Model(&dbschema.Role{}).
		Where("id = ?", role.ID).
		Update("name", role.Name)
	if res.Error != nil {
		return nil, apperrors.WrapGorm(res.Error, "update role")
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.NewRepositoryError(apperrors.RepoNotFound, "role not found", nil)
	}
	return r.FindByID(ctx, role.ID)
}

func (r *Repository) Trash(ctx context.Context, id int) (*model.Role, error) {
	res := r.db.WithContext(ctx).Delete(&dbschema.Role{}, id)
	if res.Error != nil {
		return nil, apperrors.WrapGorm(res.Error, "trash role")
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.NewRepositoryError(apperrors.RepoNotFound, "role not found", nil)
	}

	var row dbschema.Role
	if err := r.db.WithContext(ctx).Unscoped().First(&row, id).Error; err != nil {
		return nil, apperrors.WrapGorm(err, "role not found")
	}
	return row.EtoD(), nil
}

func (r *Repository) Restore(ctx context.Context, id int) (*model.Role, error) {
	res := r.db.WithContext(ctx).Unscoped().Model(&dbschema.Role{}).
		Where("id = ? AND deleted_at IS NOT NULL", id).
		Update("deleted_at", nil)
	if res.Error != nil {
		return nil, apperrors.WrapGorm(res.Error, "restore role")
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.NewRepositoryError(apperrors.RepoNotFound, "trashed role not found", nil)
	}
	return r.FindByID(ctx, id)
}

func (r *Repository) DeletePermanent(ctx context.Context, id int) error {
	res := r.db.WithContext(ctx).Unscoped().
		Where("id = ? AND deleted_at IS NOT NULL", id).
		Delete(&dbschema.Role{})
	if res.Error != nil {
		return apperrors.WrapGorm(res.Error, "delete role")
	}
	if res.RowsAffected == 0 {
		return apperrors.NewRepositoryError(apperrors.RepoNotFound, "trashed role not found", nil)
	}
	return nil
}

func (r *Repository) RestoreAll(ctx context.Context) error {
	if err := r.db.WithContext(ctx).Unscoped().Model(&dbschema.Role{}).
		Where("deleted_at IS NOT NULL").
		Update("deleted_at", nil).Error; err != nil {
		return apperrors.WrapGorm(err, "restore all roles")
	}
	return nil
}

func (r *Repository) DeleteAllPermanent(ctx context.Context) error {
	if err := r.db.WithContext(ctx).Unscoped().
		Where("deleted_at IS NOT NULL").
		Delete(&dbschema.Role{}).Error; err != nil {
		return apperrors.WrapGorm(err, "delete all trashed roles")
	}
	return nil
}
