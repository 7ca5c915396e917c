package withdrawrepo

import (
	"context"

	"gorm.io/gorm"

	"payment-gateway/internal/apperrors"
	"payment-gateway/internal/domain/requests"
	"payment-gateway/internal/infrastructure/database/dbschema"
	"payment-gateway/internal/model"
)

// Repository is the gorm-backed withdrawal store.
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
	return tx.Where("withdraw_no ILIKE ? OR card_number ILIKE ?", pattern, pattern)
}

func (r *Repository) page(ctx context.Context, q requests.ListQuery, scope func(*gorm.DB) *gorm.DB) ([]model.Withdraw, int64, error) {
	var total int64
	if err := r.search(q, scope(r.db.WithContext(ctx).Model(&dbschema.Withdraw{}))).Count(&total).Error; err != nil {
		return nil, 0, apperrors.WrapGorm(err, "count withdraws")
	}

	var rows []dbschema.Withdraw
	if err := r.search(q, scope(r.db.WithContext(ctx).Model(&dbschema.Withdraw{}))).
		Order("id").
		Offset(q.Offset()).
		Limit(q.PageSize).
		Find(&rows).Error; err != nil {
		return nil, 0, apperrors.WrapGorm(err, "query withdraws")
	}

	out := make([]model.Withdraw, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].EtoD())
	}
	return out, total, nil
}

func (r *Repository) FindAll(ctx context.Context, q requests.ListQuery) ([]model.Withdraw, int64, error) {
	return r.page(ctx, q, func(tx *gorm.DB) *gorm.DB { return tx.Unscoped() })
}

func (r *Repository) FindActive(ctx context.Context, q requests.ListQuery) ([]model.Withdraw, int64, error) {
	return r.page(ctx, q, func(tx *gorm.DB) *gorm.DB { return tx })
}

func (r *Repository) FindTrashed(ctx context.Context, q requests.ListQuery) ([]model.Withdraw, int64, error) {
	return r.page(ctx, q, func(tx *gorm.DB) *gorm.DB {
		return tx.Unscoped().Where("deleted_at IS NOT NULL")
	})
}

func (r *Repository) FindByID(ctx context.Context, id int) (*model.Withdraw, error) {
	var row dbschema.Withdraw
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, apperrors.WrapGorm(err, "withdraw not found")
	}
	return row.EtoD(), nil
}

func (r *Repository) FindByCardNumber(ctx context.Context, cardNumber string, q requests.ListQuery) ([]model.Withdraw, int64, error) {
	return r.page(ctx, q, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("card_number = ?", cardNumber)
	})
}

func (r *Repository) Create(ctx context.Context, w *model.Withdraw) (*model.Withdraw, error) {
	row := dbschema.NewSchemaWithdraw(w)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, apperrors.WrapGorm(err, "create withdraw")
	}
	return row.EtoD(), nil
}

func (r *Repository) Update(ctx context.Context, w *model.Withdraw) (*model.Withdraw, error) {
	res := r.db.WithContext(ctx).Model(&dbschema.Withdraw{}).Where("id = ?", w.ID).Updates(map[string]any{
		"withdraw_amount": w.WithdrawAmount,
		"withdraw_time":   w.WithdrawTime,
		"status":          w.Status,
	})
	if res.Error != nil {
		return nil, apperrors.WrapGorm(res.Error, "update withdraw")
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.NewRepositoryError(apperrors.RepoNotFound, "withdraw not found", nil)
	}
	return r.FindByID(ctx, w.ID)
}

func (r *Repository) Trash(ctx context.Context, id int) (*model.Withdraw, error) {
	res := r.db.WithContext(ctx).Delete(&dbschema.Withdraw{}, id)
	if res.Error != nil {
		return nil, apperrors.WrapGorm(res.Error, "trash withdraw")
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.NewRepositoryError(apperrors.RepoNotFound, "withdraw not found", nil)
	}

	var row dbschema.Withdraw
	if err := r.db.WithContext(ctx).Unscoped().First(&row, id).Error; err != nil {
		return nil, apperrors.WrapGorm(err, "withdraw not found")
	}
	return row.EtoD(), nil
}

func (r *Repository) Restore(ctx context.Context, id int) (*model.Withdraw, error) {
	res := r.db.WithContext(ctx).Unscoped().Model(&dbschema.Withdraw{}).
		Where("id = ? AND deleted_at IS NOT NULL", id).
		Update("deleted_at", nil)
	if res.Error != nil {
		return nil, apperrors.WrapGorm(res.Error, "restore withdraw")
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.NewRepositoryError(apperrors.RepoNotFound, "trashed withdraw not found", nil)
	}
	return r.FindByID(ctx, id)
}

func (r *Repository) DeletePermanent(ctx context.Context, id int) error {
	res := r.db.WithContext(ctx).Unscoped().
		Where("id = ? AND deleted_at IS NOT NULL", id).
		Delete(&dbschema.Withdraw{})
	if res.Error != nil {
		return apperrors.WrapGorm(res.Error, "delete withdraw")
	}
	if res.RowsAffected == 0 {
		return apperrors.NewRepositoryError(apperrors.RepoNotFound, "trashed withdraw not found", nil)
	}
	return nil
}

func (r *Repository) RestoreAll(ctx context.Context) error {
	if err := r.db.WithContext(ctx).Unscoped().Model(&dbschema.Withdraw{}).
		Where("deleted_at IS NOT NULL").
		Update("deleted_at", nil).Error; err != nil {
		return apperrors.WrapGorm(err, "restore all withdraws")
	}
	return nil
}

func (r *Repository) DeleteAllPermanent(ctx context.Context) error {
	if err := r.db.WithContext(ctx).Unscoped().
		Where("deleted_at IS NOT NULL").
		Delete(&dbschema.Withdraw{}).Error; err != nil {
		return apperrors.WrapGorm(err, "delete all trashed withdraws")
	}
	return nil
}

func (r *Repository) cardScope(tx *gorm.DB, cardNumber string) *gorm.DB {
	if cardNumber == "" {
		return tx
	}
	return tx.Where("card_number = ?", cardNumber)
}

// MonthlyAmounts sums withdrawal volume per month of the given year.
func (r *Repository) MonthlyAmounts(ctx context.Context, year int, cardNumber string) ([]model.WithdrawMonthAmount, error) {
	var out []model.WithdrawMonthAmount
	err := r.cardScope(r.db.WithContext(ctx).Model(&dbschema.Withdraw{}), cardNumber).
		Select("TO_CHAR(withdraw_time, 'Mon') AS month, COALESCE(SUM(withdraw_amount), 0) AS total_amount").
		Where("EXTRACT(YEAR FROM withdraw_time) = ?", year).
		Group("EXTRACT(MONTH FROM withdraw_time), TO_CHAR(withdraw_time, 'Mon')").
		Order("EXTRACT(MONTH FROM withdraw_time)").
		Scan(&out).Error
	if err != nil {
		return nil, apperrors.WrapGorm(err, "query monthly withdraw amounts")
	}
	return out, nil
}

// YearlyAmounts sums withdrawal volume for the five years ending at the
// given year.
func (r *Repository) YearlyAmounts(ctx context.Context, year int, cardNumber string) ([]model.WithdrawYearAmount, error) {
	var out []model.WithdrawYearAmount
	err := r.cardScope(r.db.WithContext(ctx).Model(&dbschema.Withdraw{}), cardNumber).
		Select("TO_CHAR(withdraw_time, 'YYYY') AS year, COALESCE(SUM(withdraw_amount), 0) AS total_amount").
		Where("EXTRACT(YEAR FROM withdraw_time) BETWEEN ? AND ?", year-4, year).
		Group("TO_CHAR(withdraw_time, 'YYYY')").
		Order("TO_CHAR(withdraw_time, 'YYYY')").
		Scan(&out).Error
	if err != nil {
		return nil, apperrors.WrapGorm(err, "query yearly withdraw amounts")
	}
	return out, nil
}

// MonthStatus aggregates count and volume for one status over the
// requested month and the month before it.
func (r *Repository) MonthStatus(ctx context.Context, year, month int, status, cardNumber string) ([]model.WithdrawMonthStatus, error) {
	prevYear, prevMonth := year, month-1
	if prevMonth == 0 {
		prevYear, prevMonth = year-1, 12
	}

	var out []model.WithdrawMonthStatus
	err := r.cardScope(r.db.WithContext(ctx).Model(&dbschema.Withdraw{}), cardNumber).
		Select("TO_CHAR(withdraw_time, 'YYYY') AS year, TO_CHAR(withdraw_time, 'Mon') AS month, COUNT(*) AS total_count, COALESCE(SUM(withdraw_amount), 0) AS total_amount").
		Where("status = ?", status).
		Where("(EXTRACT(YEAR FROM withdraw_time) = ? AND EXTRACT(MONTH FROM withdraw_time) = ?) OR (EXTRACT(YEAR FROM withdraw_time) = ? AND EXTRACT(MONTH FROM withdraw_time) = ?)",
			year, month, prevYear, prevMonth).
		Group("TO_CHAR(withdraw_time, 'YYYY'), EXTRACT(MONTH FROM withdraw_time), TO_CHAR(withdraw_time, 'Mon')").
		Order("TO_CHAR(withdraw_time, 'YYYY') DESC, EXTRACT(MONTH FROM withdraw_time) DESC").
		Scan(&out).Error
	if err != nil {
		return nil, apperrors.WrapGorm(err, "query withdraw month status")
	}
	return out, nil
}

// YearStatus aggregates count and volume for one status over the
// requested year and the year before it.
func (r *Repository) YearStatus(ctx context.Context, year int, status, cardNumber string) ([]model.WithdrawYearStatus, error) {
	var out []model.WithdrawYearStatus
	err := r.cardScope(r.db.WithContext(ctx).Model(&dbschema.Withdraw{}), cardNumber).
		Select("TO_CHAR(withdraw_time, 'YYYY') AS year, COUNT(*) AS total_count, COALESCE(SUM(withdraw_amount), 0) AS total_amount").
		Where("status = ?", status).
		Where("EXTRACT(YEAR FROM withdraw_time) IN (?, ?)", year, year-1).
		Group("TO_CHAR(withdraw_time, 'YYYY')").
		Order("TO_CHAR(withdraw_time, 'YYYY') DESC").
		Scan(&out).Error
	if err != nil {
		return nil, apperrors.WrapGorm(err, "query withdraw year status")
	}
	return out, nil
}
