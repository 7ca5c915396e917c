package transactionrepo

import (
	"context"

	"gorm.io/gorm"

	"payment-gateway/internal/apperrors"
	"payment-gateway/internal/domain/requests"
	"payment-gateway/internal/infrastructure/database/dbschema"
	"payment-gateway/internal/model"
)

// Repository is the gorm-backed payment store.
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
	return tx.Where("card_number ILIKE ? OR transaction_no ILIKE ? OR payment_method ILIKE ?", pattern, pattern, pattern)
}

func (r *Repository) page(ctx context.Context, q requests.ListQuery, scope func(*gorm.DB) *gorm.DB) ([]model.Transaction, int64, error) {
	var total int64
	if err := r.search(q, scope(r.db.WithContext(ctx).Model(&dbschema.Transaction{}))).Count(&total).Error; err != nil {
		return nil, 0, apperrors.WrapGorm(err, "count transactions")
	}

	var rows []dbschema.Transaction
	if err := r.search(q, scope(r.db.WithContext(ctx).Model(&dbschema.Transaction{}))).
		Order("id").
		Offset(q.Offset()).
		Limit(q.PageSize).
		Find(&rows).Error; err != nil {
		return nil, 0, apperrors.WrapGorm(err, "query transactions")
	}

	out := make([]model.Transaction, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].EtoD())
	}
	return out, total, nil
}

func (r *Repository) FindAll(ctx context.Context, q requests.ListQuery) ([]model.Transaction, int64, error) {
	return r.page(ctx, q, func(tx *gorm.DB) *gorm.DB { return tx.Unscoped() })
}

func (r *Repository) FindActive(ctx context.Context, q requests.ListQuery) ([]model.Transaction, int64, error) {
	return r.page(ctx, q, func(tx *gorm.DB) *gorm.DB { return tx })
}

func (r *Repository) FindTrashed(ctx context.Context, q requests.ListQuery) ([]model.Transaction, int64, error) {
	return r.page(ctx, q, func(tx *gorm.DB) *gorm.DB {
		return tx.Unscoped().Where("deleted_at IS NOT NULL")
	})
}

func (r *Repository) FindByID(ctx context.Context, id int) (*model.Transaction, error) {
	var row dbschema.Transaction
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, apperrors.WrapGorm(err, "transaction not found")
	}
	return row.EtoD(), nil
}

func (r *Repository) FindByCardNumber(ctx context.Context, cardNumber string, q requests.ListQuery) ([]model.Transaction, int64, error) {
	return r.page(ctx, q, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("card_number = ?", cardNumber)
	})
}

func (r *Repository) FindByMerchantID(ctx context.Context, merchantID int, q requests.ListQuery) ([]model.Transaction, int64, error) {
	return r.page(ctx, q, func(tx *gorm.DB) *gorm.DB {
		return tx.Where("merchant_id = ?", merchantID)
	})
}

func (r *Repository) Create(ctx context.Context, t *model.Transaction) (*model.Transaction, error) {
	row := dbschema.NewSchemaTransaction(t)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, apperrors.WrapGorm(err, "create transaction")
	}
	return row.EtoD(), nil
}

func (r *Repository) Update(ctx context.Context, t *model.Transaction) (*model.Transaction, error) {
	res := r.db.WithContext(ctx).Model(&dbschema.Transaction{}).Where("id = ?", t.ID).Updates(map[string]any{
		"amount":         t.Amount,
		"payment_method": t.PaymentMethod,
		"status":         t.Status,
	})
	if res.Error != nil {
		return nil, apperrors.WrapGorm(res.Error, "update transaction")
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.NewRepositoryError(apperrors.RepoNotFound, "transaction not found", nil)
	}
	return r.FindByID(ctx, t.ID)
}

func (r *Repository) Trash(ctx context.Context, id int) (*model.Transaction, error) {
	res := r.db.WithContext(ctx).Delete(&dbschema.Transaction{}, id)
	if res.Error != nil {
		return nil, apperrors.WrapGorm(res.Error, "trash transaction")
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.NewRepositoryError(apperrors.RepoNotFound, "transaction not found", nil)
	}

	var row dbschema.Transaction
	if err := r.db.WithContext(ctx).Unscoped().First(&row, id).Error; err != nil {
		return nil, apperrors.WrapGorm(err, "transaction not found")
	}
	return row.EtoD(), nil
}

func (r *Repository) Restore(ctx context.Context, id int) (*model.Transaction, error) {
	res := r.db.WithContext(ctx).Unscoped().Model(&dbschema.Transaction{}).
		Where("id = ? AND deleted_at IS NOT NULL", id).
		Update("deleted_at", nil)
	if res.Error != nil {
		return nil, apperrors.WrapGorm(res.Error, "restore transaction")
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.NewRepositoryError(apperrors.RepoNotFound, "trashed transaction not found", nil)
	}
	return r.FindByID(ctx, id)
}

func (r *Repository) DeletePermanent(ctx context.Context, id int) error {
	res := r.db.WithContext(ctx).Unscoped().
		Where("id = ? AND deleted_at IS NOT NULL", id).
		Delete(&dbschema.Transaction{})
	if res.Error != nil {
		return apperrors.WrapGorm(res.Error, "delete transaction")
	}
	if res.RowsAffected == 0 {
		return apperrors.NewRepositoryError(apperrors.RepoNotFound, "trashed transaction not found", nil)
	}
	return nil
}

func (r *Repository) RestoreAll(ctx context.Context) error {
	if err := r.db.WithContext(ctx).Unscoped().Model(&dbschema.Transaction{}).
		Where("deleted_at IS NOT NULL").
		Update("deleted_at", nil).Error; err != nil {
		return apperrors.WrapGorm(err, "restore all transactions")
	}
	return nil
}

func (r *Repository) DeleteAllPermanent(ctx context.Context) error {
	if err := r.db.WithContext(ctx).Unscoped().
		Where("deleted_at IS NOT NULL").
		Delete(&dbschema.Transaction{}).Error; err != nil {
		return apperrors.WrapGorm(err, "delete all trashed transactions")
	}
	return nil
}

func (r *Repository) cardScope(tx *gorm.DB, cardNumber string) *gorm.DB {
	if cardNumber == "" {
		return tx
	}
	return tx.Where("card_number = ?", cardNumber)
}

// MonthlyAmounts sums payment volume per month of the given year.
func (r *Repository) MonthlyAmounts(ctx context.Context, year int, cardNumber string) ([]model.TransactionMonthAmount, error) {
	var out []model.TransactionMonthAmount
	err := r.cardScope(r.db.WithContext(ctx).Model(&dbschema.Transaction{}), cardNumber).
		Select("TO_CHAR(transaction_time, 'Mon') AS month, COALESCE(SUM(amount), 0) AS total_amount").
		Where("EXTRACT(YEAR FROM transaction_time) = ?", year).
		Group("EXTRACT(MONTH FROM transaction_time), TO_CHAR(transaction_time, 'Mon')").
		Order("EXTRACT(MONTH FROM transaction_time)").
		Scan(&out).Error
	if err != nil {
		return nil, apperrors.WrapGorm(err, "query monthly transaction amounts")
	}
	return out, nil
}

// YearlyAmounts sums payment volume for the five years ending at the
// given year.
func (r *Repository) YearlyAmounts(ctx context.Context, year int, cardNumber string) ([]model.TransactionYearAmount, error) {
	var out []model.TransactionYearAmount
	err := r.cardScope(r.db.WithContext(ctx).Model(&dbschema.Transaction{}), cardNumber).
		Select("TO_CHAR(transaction_time, 'YYYY') AS year, COALESCE(SUM(amount), 0) AS total_amount").
		Where("EXTRACT(YEAR FROM transaction_time) BETWEEN ? AND ?", year-4, year).
		Group("TO_CHAR(transaction_time, 'YYYY')").
		Order("TO_CHAR(transaction_time, 'YYYY')").
		Scan(&out).Error
	if err != nil {
		return nil, apperrors.WrapGorm(err, "query yearly transaction amounts")
	}
	return out, nil
}

// MonthlyMethods breaks monthly payment volume down per method.
func (r *Repository) MonthlyMethods(ctx context.Context, year int, cardNumber string) ([]model.TransactionMonthMethod, error) {
	var out []model.TransactionMonthMethod
	err := r.cardScope(r.db.WithContext(ctx).Model(&dbschema.Transaction{}), cardNumber).
		Select("TO_CHAR(transaction_time, 'Mon') AS month, payment_method, COALESCE(SUM(amount), 0) AS total_amount").
		Where("EXTRACT(YEAR FROM transaction_time) = ?", year).
		Group("EXTRACT(MONTH FROM transaction_time), TO_CHAR(transaction_time, 'Mon'), payment_method").
		Order("EXTRACT(MONTH FROM transaction_time), payment_method").
		Scan(&out).Error
	if err != nil {
		return nil, apperrors.WrapGorm(err, "query monthly transaction methods")
	}
	return out, nil
}

// YearlyMethods breaks yearly payment volume down per method for the five
// years ending at the given year.
func (r *Repository) YearlyMethods(ctx context.Context, year int, cardNumber string) ([]model.TransactionYearMethod, error) {
	var out []model.TransactionYearMethod
	err := r.cardScope(r.db.WithContext(ctx).Model(&dbschema.Transaction{}), cardNumber).
		Select("TO_CHAR(transaction_time, 'YYYY') AS year, payment_method, COALESCE(SUM(amount), 0) AS total_amount").
		Where("EXTRACT(YEAR FROM transaction_time) BETWEEN ? AND ?", year-4, year).
		Group("TO_CHAR(transaction_time, 'YYYY'), payment_method").
		Order("TO_CHAR(transaction_time, 'YYYY'), payment_method").
		Scan(&out).Error
	if err != nil {
		return nil, apperrors.WrapGorm(err, "query yearly transaction methods")
	}
	return out, nil
}

// MonthStatus aggregates count and volume for one status over the
// requested month and the month before it.
func (r *Repository) MonthStatus(ctx context.Context, year, month int, status, cardNumber string) ([]model.TransactionMonthStatus, error) {
	prevYear, prevMonth := year, month-1
	if prevMonth == 0 {
		prevYear, prevMonth = year-1, 12
	}

	var out []model.TransactionMonthStatus
	err := r.cardScope(r.db.WithContext(ctx).Model(&dbschema.Transaction{}), cardNumber).
		Select("TO_CHAR(transaction_time, 'YYYY') AS year, TO_CHAR(transaction_time, 'Mon') AS month, COUNT(*) AS total_count, COALESCE(SUM(amount), 0) AS total_amount").
		Where("status = ?", status).
		Where("(EXTRACT(YEAR FROM transaction_time) = ? AND EXTRACT(MONTH FROM transaction_time) = ?) OR (EXTRACT(YEAR FROM transaction_time) = ? AND EXTRACT(MONTH FROM transaction_time) = ?)",
			year, month, prevYear, prevMonth).
		Group("TO_CHAR(transaction_time, 'YYYY'), EXTRACT(MONTH FROM transaction_time), TO_CHAR(transaction_time, 'Mon')").
		Order("TO_CHAR(transaction_time, 'YYYY') DESC, EXTRACT(MONTH FROM transaction_time) DESC").
		Scan(&out).Error
	if err != nil {
		return nil, apperrors.WrapGorm(err, "query transaction month status")
	}
	return out, nil
}

// YearStatus aggregates count and volume for one status over the
// requested year and the year before it.
func (r *Repository) YearStatus(ctx context.Context, year int, status, cardNumber string) ([]model.TransactionYearStatus, error) {
	var out []model.TransactionYearStatus
	err := r.cardScope(r.db.WithContext(ctx).Model(&dbschema.Transaction{}), cardNumber).
		Select("TO_CHAR(transaction_time, 'YYYY') AS year, COUNT(*) AS total_count, COALESCE(SUM(amount), 0) AS total_amount").
		Where("status = ?", status).
		Where("EXTRACT(YEAR FROM transaction_time) IN (?, ?)", year, year-1).
		Group("TO_CHAR(transaction_time, 'YYYY')").
		Order("TO_CHAR(transaction_time, 'YYYY') DESC").
		Scan(&out).Error
	if err != nil {
		return nil, apperrors.WrapGorm(err, "query transaction year status")
	}
	return out, nil
}
