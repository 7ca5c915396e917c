package transferrepo

import (
	"context"

	"gorm.io/gorm"

	"payment-gateway/internal/apperrors"
	"payment-gateway/internal/domain/requests"
	"payment-gateway/internal/infrastructure/database/dbschema"
	"payment-gateway/internal/model"
)

// Repository is the gorm-backed transfer store.
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
	pattern := "%" + q.Search + "%"
	return tx.Where("transfer_no ILIKE ? OR transfer_from ILIKE ? OR transfer_to ILIKE ?", pattern, pattern, pattern)
}

func (r *Repository) page(ctx context.Context, q requests.ListQuery, scope func(*gorm.DB) *gorm.DB) ([]model.Transfer, int64, error) {
	var total int64
	if err := r.search(q, scope(r.db.WithContext(ctx).Model(&dbschema.Transfer{}))).Count(&total).Error; err != nil {
		return nil, 0, apperrors.WrapGorm(err, "count transfers")
	}

	var rows []dbschema.Transfer
	if err := r.search(q, scope(r.db.WithContext(ctx).Model(&dbschema.Transfer{}))).
		Order("id").
		Offset(q.Offset()).
		Limit(q.PageSize).
		Find(&rows).Error; err != nil {
		return nil, 0, apperrors.WrapGorm(err, "query transfers")
	}

	out := make([]model.Transfer, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].EtoD())
	}
	return out, total, nil
}

func (r *Repository) FindAll(ctx context.Context, q requests.ListQuery) ([]model.Transfer, int64, error) {
	return r.page(ctx, q, func(tx *gorm.DB) *gorm.DB { return tx.Unscoped() })
}

func (r *Repository) FindActive(ctx context.Context, q requests.ListQuery) ([]model.Transfer, int64, error) {
	return r.page(ctx, q, func(tx *gorm.DB) *gorm.DB { return tx })
}

func (r *Repository) FindTrashed(ctx context.Context, q requests.ListQuery) ([]model.Transfer, int64, error) {
	return r.page(ctx, q, func(tx *gorm.DB) *gorm.DB {
		return tx.Unscoped().Where("deleted_at IS NOT NULL")
	})
}

func (r *Repository) FindByID(ctx context.Context, id int) (*model.Transfer, error) {
	var row dbschema.Transfer
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, apperrors.WrapGorm(err, "transfer not found")
	}
	return row.EtoD(), nil
}

func (r *Repository) FindByTransferFrom(ctx context.Context, cardNumber string, q requests.ListQuery) ([]model.Transfer, int64, error) {
	return r.page(ctx, q, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("transfer_from = ?", cardNumber)
	})
}

func (r *Repository) FindByTransferTo(ctx context.Context, cardNumber string, q requests.ListQuery) ([]model.Transfer, int64, error) {
	return r.page(ctx, q, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("transfer_to = ?", cardNumber)
	})
}

func (r *Repository) Create(ctx context.Context, t *model.Transfer) (*model.Transfer, error) {
	row := dbschema.NewSchemaTransfer(t)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, apperrors.WrapGorm(err, "create transfer")
	}
	return row.EtoD(), nil
}

func (r *Repository) Update(ctx context.Context, t *model.Transfer) (*model.Transfer, error) {
	res := r.db.WithContext(ctx).Model(&dbschema.Transfer{}).Where("id = ?", t.ID).Updates(map[string]any{
		"transfer_amount": t.TransferAmount,
		"status":          t.Status,
	})
	if res.Error != nil {
		return nil, apperrors.WrapGorm(res.Error, "update transfer")
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.NewRepositoryError(apperrors.RepoNotFound, "transfer not found", nil)
	}
	return r.FindByID(ctx, t.ID)
}

func (r *Repository) Trash(ctx context.Context, id int) (*model.Transfer, error) {
	res := r.db.WithContext(ctx).Delete(&dbschema.Transfer{}, id)
	if res.Error != nil {
		return nil, apperrors.WrapGorm(res.Error, "trash transfer")
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.NewRepositoryError(apperrors.RepoNotFound, "transfer not found", nil)
	}

	var row dbschema.Transfer
	if err := r.db.WithContext(ctx).Unscoped().First(&row, id).Error; err != nil {
		return nil, apperrors.WrapGorm(err, "transfer not found")
	}
	return row.EtoD(), nil
}

func (r *Repository) Restore(ctx context.Context, id int) (*model.Transfer, error) {
	res := r.db.WithContext(ctx).Unscoped().Model(&dbschema.Transfer{}).
		Where("id = ? AND deleted_at IS NOT NULL", id).
		Update("deleted_at", nil)
	if res.Error != nil {
		return nil, apperrors.WrapGorm(res.Error, "restore transfer")
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.NewRepositoryError(apperrors.RepoNotFound, "trashed transfer not found", nil)
	}
	return r.FindByID(ctx, id)
}

func (r *Repository) DeletePermanent(ctx context.Context, id int) error {
	res := r.db.WithContext(ctx).Unscoped().
		Where("id = ? AND deleted_at IS NOT NULL", id).
		Delete(&dbschema.Transfer{})
	if res.Error != nil {
		return apperrors.WrapGorm(res.Error, "delete transfer")
	}
	if res.RowsAffected == 0 {
		return apperrors.NewRepositoryError(apperrors.RepoNotFound, "trashed transfer not found", nil)
	}
	return nil
}

func (r *Repository) RestoreAll(ctx context.Context) error {
	if err := r.db.WithContext(ctx).Unscoped().Model(&dbschema.Transfer{}).
		Where("deleted_at IS NOT NULL").
		Update("deleted_at", nil).Error; err != nil {
		return apperrors.WrapGorm(err, "restore all transfers")
	}
	return nil
}

func (r *Repository) DeleteAllPermanent(ctx context.Context) error {
	if err := r.db.WithContext(ctx).Unscoped().
		Where("deleted_at IS NOT NULL").
		Delete(&dbschema.Transfer{}).Error; err != nil {
		return apperrors.WrapGorm(err, "delete all trashed transfers")
	}
	return nil
}

// cardScope filters to the sending card. Empty spans all cards.
func (r *Repository) cardScope(tx *gorm.DB, cardNumber string) *gorm.DB {
	if cardNumber == "" {
		return tx
	}
	return tx.Where("transfer_from = ?", cardNumber)
}

// MonthlyAmounts sums transfer volume per month of the given year.
func (r *Repository) MonthlyAmounts(ctx context.Context, year int, cardNumber string) ([]model.TransferMonthAmount, error) {
	var out []model.TransferMonthAmount
	err := r.cardScope(r.db.WithContext(ctx).Model(&dbschema.Transfer{}), cardNumber).
		Select("TO_CHAR(transfer_time, 'Mon') AS month, COALESCE(SUM(transfer_amount), 0) AS total_amount").
		Where("EXTRACT(YEAR FROM transfer_time) = ?", year).
		Group("EXTRACT(MONTH FROM transfer_time), TO_CHAR(transfer_time, 'Mon')").
		Order("EXTRACT(MONTH FROM transfer_time)").
		Scan(&out).Error
	if err != nil {
		return nil, apperrors.WrapGorm(err, "query monthly transfer amounts")
	}
	return out, nil
}

// YearlyAmounts sums transfer volume for the five years ending at the
// given year.
func (r *Repository) YearlyAmounts(ctx context.Context, year int, cardNumber string) ([]model.TransferYearAmount, error) {
	var out []model.TransferYearAmount
	err := r.cardScope(r.db.WithContext(ctx).Model(&dbschema.Transfer{}), cardNumber).
		Select("TO_CHAR(transfer_time, 'YYYY') AS year, COALESCE(SUM(transfer_amount), 0) AS total_amount").
		Where("EXTRACT(YEAR FROM transfer_time) BETWEEN ? AND ?", year-4, year).
		Group("TO_CHAR(transfer_time, 'YYYY')").
		Order("TO_CHAR(transfer_time, 'YYYY')").
		Scan(&out).Error
	if err != nil {
		return nil, apperrors.WrapGorm(err, "query yearly transfer amounts")
	}
	return out, nil
}

// MonthStatus aggregates count and volume for one status over the
// requested month and the month before it.
func (r *Repository) MonthStatus(ctx context.Context, year, month int, status, cardNumber string) ([]model.TransferMonthStatus, error) {
	prevYear, prevMonth := year, month-1
	if prevMonth == 0 {
		prevYear, prevMonth = year-1, 12
	}

	var out []model.TransferMonthStatus
	err := r.cardScope(r.db.WithContext(ctx).Model(&dbschema.Transfer{}), cardNumber).
		Select("TO_CHAR(transfer_time, 'YYYY') AS year, TO_CHAR(transfer_time, 'Mon') AS month, COUNT(*) AS total_count, COALESCE(SUM(transfer_amount), 0) AS total_amount").
		Where("status = ?", status).
		Where("(EXTRACT(YEAR FROM transfer_time) = ? AND EXTRACT(MONTH FROM transfer_time) = ?) OR (EXTRACT(YEAR FROM transfer_time) = ? AND EXTRACT(MONTH FROM transfer_time) = ?)",
			year, month, prevYear, prevMonth).
		Group("TO_CHAR(transfer_time, 'YYYY'), EXTRACT(MONTH FROM transfer_time), TO_CHAR(transfer_time, 'Mon')").
		Order("TO_CHAR(transfer_time, 'YYYY') DESC, EXTRACT(MONTH FROM transfer_time) DESC").
		Scan(&out).Error
	if err != nil {
		return nil, apperrors.WrapGorm(err, "query transfer month status")
	}
	return out, nil
}

// YearStatus aggregates count and volume for one status over the
// requested year and the year before it.
func (r *Repository) YearStatus(ctx context.Context, year int, status, cardNumber string) ([]model.TransferYearStatus, error) {
	var out []model.TransferYearStatus
	err := r.cardScope(r.db.WithContext(ctx).Model(&dbschema.Transfer{}), cardNumber).
		Select("TO_CHAR(transfer_time, 'YYYY') AS year, COUNT(*) AS total_count, COALESCE(SUM(transfer_amount), 0) AS total_amount").
		Where("status = ?", status).
		Where("EXTRACT(YEAR FROM transfer_time) IN (?, ?)", year, year-1).
		Group("TO_CHAR(transfer_time, 'YYYY')").
		Order("TO_CHAR(transfer_time, 'YYYY') DESC").
		Scan(&out).Error
	if err != nil {
		return nil, apperrors.WrapGorm(err, "query transfer year status")
	}
	return out, nil
}
