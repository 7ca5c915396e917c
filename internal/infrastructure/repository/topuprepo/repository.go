package topuprepo

import (
	"context"

	"gorm.io/gorm"

	"payment-gateway/internal/apperrors"
	"payment-gateway/internal/domain/requests"
	"payment-gateway/internal/infrastructure/database/dbschema"
	"payment-gateway/internal/model"
)

// Repository is the gorm-backed top-up store.
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
	return tx.Where("card_number ILIKE ? OR topup_no ILIKE ? OR topup_method ILIKE ?", pattern, pattern, pattern)
}

func (r *Repository) page(ctx context.Context, q requests.ListQuery, scope func(*gorm.DB) *gorm.DB) ([]model.Topup, int64, error) {
	var total int64
	if err := r.search(q, scope(r.db.WithContext(ctx).Model(&dbschema.Topup{}))).Count(&total).Error; err != nil {
		return nil, 0, apperrors.WrapGorm(err, "count topups")
	}

	var rows []dbschema.Topup
	if err := r.search(q, scope(r.db.WithContext(ctx).Model(&dbschema.Topup{}))).
		Order("id").
		Offset(q.Offset()).
		Limit(q.PageSize).
		Find(&rows).Error; err != nil {
		return nil, 0, apperrors.WrapGorm(err, "query topups")
	}

	out := make([]model.Topup, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].EtoD())
	}
	return out, total, nil
}

func (r *Repository) FindAll(ctx context.Context, q requests.ListQuery) ([]model.Topup, int64, error) {
	return r.page(ctx, q, func(tx *gorm.DB) *gorm.DB { return tx.Unscoped() })
}

func (r *Repository) FindActive(ctx context.Context, q requests.ListQuery) ([]model.Topup, int64, error) {
	return r.page(ctx, q, func(tx *gorm.DB) *gorm.DB { return tx })
}

func (r *Repository) FindTrashed(ctx context.Context, q requests.ListQuery) ([]model.Topup, int64, error) {
	return r.page(ctx, q, func(tx *gorm.DB) *gorm.DB {
		return tx.Unscoped().Where("deleted_at IS NOT NULL")
	})
}

func (r *Repository) FindByID(ctx context.Context, id int) (*model.Topup, error) {
	var row dbschema.Topup
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, apperrors.WrapGorm(err, "topup not found")
	}
	return row.EtoD(), nil
}

func (r *Repository) FindByCardNumber(ctx context.Context, cardNumber string, q requests.ListQuery) ([]model.Topup, int64, error) {
	return r.page(ctx, q, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("card_number = ?", cardNumber)
	})
}

func (r *Repository) Create(ctx context.Context, t *model.Topup) (*model.Topup, error) {
	row := dbschema.NewSchemaTopup(t)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, apperrors.WrapGorm(err, "create topup")
	}
	return row.EtoD(), nil
}

func (r *Repository) Update(ctx context.Context, t *model.Topup) (*model.Topup, error) {
	res := r.db.WithContext(ctx).Model(&dbschema.Topup{}).Where("id = ?", t.ID).Updates(map[string]any{
		"topup_amount": t.TopupAmount,
		"topup_method": t.TopupMethod,
		"status":       t.Status,
	})
	if res.Error != nil {
		return nil, apperrors.WrapGorm(res.Error, "update topup")
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.NewRepositoryError(apperrors.RepoNotFound, "topup not found", nil)
	}
	return r.FindByID(ctx, t.ID)
}

func (r *Repository) Trash(ctx context.Context, id int) (*model.Topup, error) {
	res := r.db.WithContext(ctx).Delete(&dbschema.Topup{}, id)
	if res.Error != nil {
		return nil, apperrors.WrapGorm(res.Error, "trash topup")
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.NewRepositoryError(apperrors.RepoNotFound, "topup not found", nil)
	}

	var row dbschema.Topup
	if err := r.db.WithContext(ctx).Unscoped().First(&row, id).Error; err != nil {
		return nil, apperrors.WrapGorm(err, "topup not found")
	}
	return row.EtoD(), nil
}

func (r *Repository) Restore(ctx context.Context, id int) (*model.Topup, error) {
	res := r.db.WithContext(ctx).Unscoped().Model(&dbschema.Topup{}).
		Where("id = ? AND deleted_at IS NOT NULL", id).
		Update("deleted_at", nil)
	if res.Error != nil {
		return nil, apperrors.WrapGorm(res.Error, "restore topup")
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.NewRepositoryError(apperrors.RepoNotFound, "trashed topup not found", nil)
	}
	return r.FindByID(ctx, id)
}

func (r *Repository) DeletePermanent(ctx context.Context, id int) error {
	res := r.db.WithContext(ctx).Unscoped().
		Where("id = ? AND deleted_at IS NOT NULL", id).
		Delete(&dbschema.Topup{})
	if res.Error != nil {
		return apperrors.WrapGorm(res.Error, "delete topup")
	}
	if res.RowsAffected == 0 {
		return apperrors.NewRepositoryError(apperrors.RepoNotFound, "trashed topup not found", nil)
	}
	return nil
}

func (r *Repository) RestoreAll(ctx context.Context) error {
	if err := r.db.WithContext(ctx).Unscoped().Model(&dbschema.Topup{}).
		Where("deleted_at IS NOT NULL").
		Update("deleted_at", nil).Error; err != nil {
		return apperrors.WrapGorm(err, "restore all topups")
	}
	return nil
}

func (r *Repository) DeleteAllPermanent(ctx context.Context) error {
	if err := r.db.WithContext(ctx).Unscoped().
		Where("deleted_at IS NOT NULL").
		Delete(&dbschema.Topup{}).Error; err != nil {
		return apperrors.WrapGorm(err, "delete all trashed topups")
	}
	return nil
}

func (r *Repository) cardScope(tx *gorm.DB, cardNumber string) *gorm.DB {
	if cardNumber == "" {
		return tx
	}
	return tx.Where("card_number = ?", cardNumber)
}

// MonthlyAmounts sums top-up volume per month of the given year.
func (r *Repository) MonthlyAmounts(ctx context.Context, year int, cardNumber string) ([]model.TopupMonthAmount, error) {
	var out []model.TopupMonthAmount
	err := r.cardScope(r.db.WithContext(ctx).Model(&dbschema.Topup{}), cardNumber).
		Select("TO_CHAR(topup_time, 'Mon') AS month, COALESCE(SUM(topup_amount), 0) AS total_amount").
		Where("EXTRACT(YEAR FROM topup_time) = ?", year).
		Group("EXTRACT(MONTH FROM topup_time), TO_CHAR(topup_time, 'Mon')").
		Order("EXTRACT(MONTH FROM topup_time)").
		Scan(&out).Error
	if err != nil {
		return nil, apperrors.WrapGorm(err, "query monthly topup amounts")
	}
	return out, nil
}

// YearlyAmounts sums top-up volume for the five years ending at the given
// year.
func (r *Repository) YearlyAmounts(ctx context.Context, year int, cardNumber string) ([]model.TopupYearAmount, error) {
	var out []model.TopupYearAmount
	err := r.cardScope(r.db.WithContext(ctx).Model(&dbschema.Topup{}), cardNumber).
		Select("TO_CHAR(topup_time, 'YYYY') AS year, COALESCE(SUM(topup_amount), 0) AS total_amount").
		Where("EXTRACT(YEAR FROM topup_time) BETWEEN ? AND ?", year-4, year).
		Group("TO_CHAR(topup_time, 'YYYY')").
		Order("TO_CHAR(topup_time, 'YYYY')").
		Scan(&out).Error
	if err != nil {
		return nil, apperrors.WrapGorm(err, "query yearly topup amounts")
	}
	return out, nil
}

// MonthlyMethods breaks monthly top-up volume down per method.
func (r *Repository) MonthlyMethods(ctx context.Context, year int, cardNumber string) ([]model.TopupMonthMethod, error) {
	var out []model.TopupMonthMethod
	err := r.cardScope(r.db.WithContext(ctx).Model(&dbschema.Topup{}), cardNumber).
		Select("TO_CHAR(topup_time, 'Mon') AS month, topup_method, COUNT(*) AS total_topups, COALESCE(SUM(topup_amount), 0) AS total_amount").
		Where("EXTRACT(YEAR FROM topup_time) = ?", year).
		Group("EXTRACT(MONTH FROM topup_time), TO_CHAR(topup_time, 'Mon'), topup_method").
		Order("EXTRACT(MONTH FROM topup_time), topup_method").
		Scan(&out).Error
	if err != nil {
		return nil, apperrors.WrapGorm(err, "query monthly topup methods")
	}
	return out, nil
}

// YearlyMethods breaks yearly top-up volume down per method for the five
// years ending at the given year.
func (r *Repository) YearlyMethods(ctx context.Context, year int, cardNumber string) ([]model.TopupYearMethod, error) {
	var out []model.TopupYearMethod
	err := r.cardScope(r.db.WithContext(ctx).Model(&dbschema.Topup{}), cardNumber).
		Select("TO_CHAR(topup_time, 'YYYY') AS year, topup_method, COUNT(*) AS total_topups, COALESCE(SUM(topup_amount), 0) AS total_amount").
		Where("EXTRACT(YEAR FROM topup_time) BETWEEN ? AND ?", year-4, year).
		Group("TO_CHAR(topup_time, 'YYYY'), topup_method").
		Order("TO_CHAR(topup_time, 'YYYY'), topup_method").
		Scan(&out).Error
	if err != nil {
		return nil, apperrors.WrapGorm(err, "query yearly topup methods")
	}
	return out, nil
}

// MonthStatus aggregates count and volume for one status over the
// requested month and the month before it.
func (r *Repository) MonthStatus(ctx context.Context, year, month int, status, cardNumber string) ([]model.TopupMonthStatus, error) {
	prevYear, prevMonth := year, month-1
	if prevMonth == 0 {
		prevYear, prevMonth = year-1, 12
	}

	var out []model.TopupMonthStatus
	err := r.cardScope(r.db.WithContext(ctx).Model(&dbschema.Topup{}), cardNumber).
		Select("TO_CHAR(topup_time, 'YYYY') AS year, TO_CHAR(topup_time, 'Mon') AS month, COUNT(*) AS total_count, COALESCE(SUM(topup_amount), 0) AS total_amount").
		Where("status = ?", status).
		Where("(EXTRACT(YEAR FROM topup_time) = ? AND EXTRACT(MONTH FROM topup_time) = ?) OR (EXTRACT(YEAR FROM topup_time) = ? AND EXTRACT(MONTH FROM topup_time) = ?)",
			year, month, prevYear, prevMonth).
		Group("TO_CHAR(topup_time, 'YYYY'), EXTRACT(MONTH FROM topup_time), TO_CHAR(topup_time, 'Mon')").
		Order("TO_CHAR(topup_time, 'YYYY') DESC, EXTRACT(MONTH FROM topup_time) DESC").
		Scan(&out).Error
	if err != nil {
		return nil, apperrors.WrapGorm(err, "query topup month status")
	}
	return out, nil
}

// YearStatus aggregates count and volume for one status over the
// requested year and the year before it.
func (r *Repository) YearStatus(ctx context.Context, year int, status, cardNumber string) ([]model.TopupYearStatus, error) {
	var out []model.TopupYearStatus
	err := r.cardScope(r.db.WithContext(ctx).Model(&dbschema.Topup{}), cardNumber).
		Select("TO_CHAR(topup_time, 'YYYY') AS year, COUNT(*) AS total_count, COALESCE(SUM(topup_amount), 0) AS total_amount").
		Where("status = ?", status).
		Where("EXTRACT(YEAR FROM topup_time) IN (?, ?)", year, year-1).
		Group("TO_CHAR(topup_time, 'YYYY')").
		Order("TO_CHAR(topup_time, 'YYYY') DESC").
		Scan(&out).Error
	if err != nil {
		return nil, apperrors.WrapGorm(err, "query topup year status")
	}
	return out, nil
}
