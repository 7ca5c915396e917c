package merchantrepo

import (
	"context"

	"gorm.io/gorm"

	"payment-gateway/internal/apperrors"
	"payment-gateway/internal/domain/requests"
	"payment-gateway/internal/infrastructure/database/dbschema"
	"payment-gateway/internal/model"
)

// Repository is the gorm-backed merchant store.
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
	return tx.Where("name ILIKE ? OR status ILIKE ?", pattern, pattern)
}

func (r *Repository) page(ctx context.Context, q requests.ListQuery, scope func(*gorm.DB) *gorm.DB) ([]model.Merchant, int64, error) {
	var total int64
	if err := r.search(q, scope(r.db.WithContext(ctx).Model(&dbschema.Merchant{}))).Count(&total).Error; err != nil {
		return nil, 0, apperrors.WrapGorm(err, "count merchants")
	}

	var rows []dbschema.Merchant
	if err := r.search(q, scope(r.db.WithContext(ctx).Model(&dbschema.Merchant{}))).
		Order("id").
		Offset(q.Offset()).
		Limit(q.PageSize).
		Find(&rows).Error; err != nil {
		return nil, 0, apperrors.WrapGorm(err, "query merchants")
	}

	out := make([]model.Merchant, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].EtoD())
	}
	return out, total, nil
}

func (r *Repository) FindAll(ctx context.Context, q requests.ListQuery) ([]model.Merchant, int64, error) {
	return r.page(ctx, q, func(tx *gorm.DB) *gorm.DB { return tx.Unscoped() })
}

func (r *Repository) FindActive(ctx context.Context, q requests.ListQuery) ([]model.Merchant, int64, error) {
	return r.page(ctx, q, func(tx *gorm.DB) *gorm.DB { return tx })
}

func (r *Repository) FindTrashed(ctx context.Context, q requests.ListQuery) ([]model.Merchant, int64, error) {
	return r.page(ctx, q, func(tx *gorm.DB) *gorm.DB {
		return tx.Unscoped().Where("deleted_at IS NOT NULL")
	})
}

func (r *Repository) FindByID(ctx context.Context, id int) (*model.Merchant, error) {
	var row dbschema.Merchant
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, apperrors.WrapGorm(err, "merchant not found")
	}
	return row.EtoD(), nil
}

// FindByAPIKey resolves an api key to its merchant. Payment ingestion and
// the merchant transaction listing both route through here.
func (r *Repository) FindByAPIKey(ctx context.Context, apiKey string) (*model.Merchant, error) {
	var row dbschema.Merchant
	if err := r.db.WithContext(ctx).Where("api_key = ?", apiKey).First(&row).Error; err != nil {
		return nil, apperrors.WrapGorm(err, "merchant not found")
	}
	return row.EtoD(), nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]model.Merchant, error) {
	var rows []dbschema.Merchant
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Find(&rows).Error; err != nil {
		return nil, apperrors.WrapGorm(err, "query merchants by user")
	}

	out := make([]model.Merchant, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].EtoD())
	}
	return out, nil
}

func (r *Repository) Create(ctx context.Context, m *model.Merchant) (*model.Merchant, error) {
	row := dbschema.NewSchemaMerchant(m)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, apperrors.WrapGorm(err, "create merchant")
	}
	return row.EtoD(), nil
}

func (r *Repository) Update(ctx context.Context, m *model.Merchant) (*model.Merchant, error) {
	res := r.db.WithContext(ctx).Model(&dbschema.Merchant{}).Where("id = ?", m.ID).Updates(map[string]any{
		"name":    m.Name,
		"user_id": m.UserID,
		"status":  m.Status,
	})
	if res.Error != nil {
		return nil, apperrors.WrapGorm(res.Error, "update merchant")
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.NewRepositoryError(apperrors.RepoNotFound, "merchant not found", nil)
	}
	return r.FindByID(ctx, m.ID)
}

func (r *Repository) Trash(ctx context.Context, id int) (*model.Merchant, error) {
	res := r.db.WithContext(ctx).Delete(&dbschema.Merchant{}, id)
	if res.Error != nil {
		return nil, apperrors.WrapGorm(res.Error, "trash merchant")
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.NewRepositoryError(apperrors.RepoNotFound, "merchant not found", nil)
	}

	var row dbschema.Merchant
	if err := r.db.WithContext(ctx).Unscoped().First(&row, id).Error; err != nil {
		return nil, apperrors.WrapGorm(err, "merchant not found")
	}
	return row.EtoD(), nil
}

func (r *Repository) Restore(ctx context.Context, id int) (*model.Merchant, error) {
	res := r.db.WithContext(ctx).Unscoped().Model(&dbschema.Merchant{}).
		Where("id = ? AND deleted_at IS NOT NULL", id).
		Update("deleted_at", nil)
	if res.Error != nil {
		return nil, apperrors.WrapGorm(res.Error, "restore merchant")
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.NewRepositoryError(apperrors.RepoNotFound, "trashed merchant not found", nil)
	}
	return r.FindByID(ctx, id)
}

func (r *Repository) DeletePermanent(ctx context.Context, id int) error {
	res := r.db.WithContext(ctx).Unscoped().
		Where("id = ? AND deleted_at IS NOT NULL", id).
		Delete(&dbschema.Merchant{})
	if res.Error != nil {
		return apperrors.WrapGorm(res.Error, "delete merchant")
	}
	if res.RowsAffected == 0 {
		return apperrors.NewRepositoryError(apperrors.RepoNotFound, "trashed merchant not found", nil)
	}
	return nil
}

func (r *Repository) RestoreAll(ctx context.Context) error {
	if err := r.db.WithContext(ctx).Unscoped().Model(&dbschema.Merchant{}).
		Where("deleted_at IS NOT NULL").
		Update("deleted_at", nil).Error; err != nil {
		return apperrors.WrapGorm(err, "restore all merchants")
	}
	return nil
}

func (r *Repository) DeleteAllPermanent(ctx context.Context) error {
	if err := r.db.WithContext(ctx).Unscoped().
		Where("deleted_at IS NOT NULL").
		Delete(&dbschema.Merchant{}).Error; err != nil {
		return apperrors.WrapGorm(err, "delete all trashed merchants")
	}
	return nil
}

func (r *Repository) transactionsQuery(ctx context.Context, merchantID int, q requests.ListQuery) *gorm.DB {
	tx := r.db.WithContext(ctx).Table("transactions").
		Joins("JOIN merchants ON merchants.id = transactions.merchant_id").
		Where("transactions.deleted_at IS NULL")
	if merchantID != 0 {
		tx = tx.Where("transactions.merchant_id = ?", merchantID)
	}
	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		tx = tx.Where("transactions.card_number ILIKE ? OR merchants.name ILIKE ?", pattern, pattern)
	}
	return tx
}

// Transactions pages transactions joined with their merchant. merchantID 0
// spans all merchants.
func (r *Repository) Transactions(ctx context.Context, merchantID int, q requests.ListQuery) ([]model.MerchantTransaction, int64, error) {
	var total int64
	if err := r.transactionsQuery(ctx, merchantID, q).Count(&total).Error; err != nil {
		return nil, 0, apperrors.WrapGorm(err, "count merchant transactions")
	}

	var rows []model.MerchantTransaction
	if err := r.transactionsQuery(ctx, merchantID, q).
		Select("transactions.id AS transaction_id, transactions.card_number, transactions.amount, transactions.payment_method, transactions.merchant_id, merchants.name AS merchant_name, transactions.transaction_time").
		Order("transactions.id").
		Offset(q.Offset()).
		Limit(q.PageSize).
		Scan(&rows).Error; err != nil {
		return nil, 0, apperrors.WrapGorm(err, "query merchant transactions")
	}
	return rows, total, nil
}

func (r *Repository) statsQuery(ctx context.Context, merchantID int) *gorm.DB {
	tx := r.db.WithContext(ctx).Model(&dbschema.Transaction{}).Where("status = ?", "success")
	if merchantID != 0 {
		tx = tx.Where("merchant_id = ?", merchantID)
	}
	return tx
}

// MonthlyPaymentMethods breaks monthly volume down per payment method.
func (r *Repository) MonthlyPaymentMethods(ctx context.Context, merchantID, year int) ([]model.MerchantMonthlyPaymentMethod, error) {
	var out []model.MerchantMonthlyPaymentMethod
	err := r.statsQuery(ctx, merchantID).
		Select("TO_CHAR(transaction_time, 'Mon') AS month, payment_method, COALESCE(SUM(amount), 0) AS total_amount").
		Where("EXTRACT(YEAR FROM transaction_time) = ?", year).
		Group("EXTRACT(MONTH FROM transaction_time), TO_CHAR(transaction_time, 'Mon'), payment_method").
		Order("EXTRACT(MONTH FROM transaction_time), payment_method").
		Scan(&out).Error
	if err != nil {
		return nil, apperrors.WrapGorm(err, "query monthly payment methods")
	}
	return out, nil
}

// YearlyPaymentMethods breaks yearly volume down per payment method for
// the five years ending at the given year.
func (r *Repository) YearlyPaymentMethods(ctx context.Context, merchantID, year int) ([]model.MerchantYearlyPaymentMethod, error) {
	var out []model.MerchantYearlyPaymentMethod
	err := r.statsQuery(ctx, merchantID).
		Select("TO_CHAR(transaction_time, 'YYYY') AS year, payment_method, COALESCE(SUM(amount), 0) AS total_amount").
		Where("EXTRACT(YEAR FROM transaction_time) BETWEEN ? AND ?", year-4, year).
		Group("TO_CHAR(transaction_time, 'YYYY'), payment_method").
		Order("TO_CHAR(transaction_time, 'YYYY'), payment_method").
		Scan(&out).Error
	if err != nil {
		return nil, apperrors.WrapGorm(err, "query yearly payment methods")
	}
	return out, nil
}

// MonthlyAmounts sums settled volume per month of the given year.
func (r *Repository) MonthlyAmounts(ctx context.Context, merchantID, year int) ([]model.MerchantMonthlyAmount, error) {
	var out []model.MerchantMonthlyAmount
	err := r.statsQuery(ctx, merchantID).
		Select("TO_CHAR(transaction_time, 'Mon') AS month, COALESCE(SUM(amount), 0) AS total_amount").
		Where("EXTRACT(YEAR FROM transaction_time) = ?", year).
		Group("EXTRACT(MONTH FROM transaction_time), TO_CHAR(transaction_time, 'Mon')").
		Order("EXTRACT(MONTH FROM transaction_time)").
		Scan(&out).Error
	if err != nil {
		return nil, apperrors.WrapGorm(err, "query monthly amounts")
	}
	return out, nil
}

// YearlyAmounts sums settled volume for the five years ending at the given
// year.
func (r *Repository) YearlyAmounts(ctx context.Context, merchantID, year int) ([]model.MerchantYearlyAmount, error) {
	var out []model.MerchantYearlyAmount
	err := r.statsQuery(ctx, merchantID).
		Select("TO_CHAR(transaction_time, 'YYYY') AS year, COALESCE(SUM(amount), 0) AS total_amount").
		Where("EXTRACT(YEAR FROM transaction_time) BETWEEN ? AND ?", year-4, year).
		Group("TO_CHAR(transaction_time, 'YYYY')").
		Order("TO_CHAR(transaction_time, 'YYYY')").
		Scan(&out).Error
	if err != nil {
		return nil, apperrors.WrapGorm(err, "query yearly amounts")
	}
	return out, nil
}
