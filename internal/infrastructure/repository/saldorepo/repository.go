package saldorepo

import (
	"context"
	"time"

	"gorm.io/gorm"

	"payment-gateway/internal/apperrors"
	"payment-gateway/internal/domain/requests"
	"payment-gateway/internal/infrastructure/database/dbschema"
	"payment-gateway/internal/model"
)

// Repository is the gorm-backed balance store. Besides the CRUD surface it
// carries the balance mutations the money services depend on.
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
	return tx.Where("card_number ILIKE ?", "%"+q.Search+"%")
}

func (r *Repository) page(ctx context.Context, q requests.ListQuery, scope func(*gorm.DB) *gorm.DB) ([]model.Saldo, int64, error) {
	var total int64
	if err := r.search(q, scope(r.db.WithContext(ctx).Model(&dbschema.Saldo{}))).Count(&total).Error; err != nil {
		return nil, 0, apperrors.WrapGorm(err, "count saldos")
	}

	var rows []dbschema.Saldo
	if err := r.search(q, scope(r.db.WithContext(ctx).Model(&dbschema.Saldo{}))).
		Order("id").
		Offset(q.Offset()).
		Limit(q.PageSize).
		Find(&rows).Error; err != nil {
		return nil, 0, apperrors.WrapGorm(err, "query saldos")
	}

	out := make([]model.Saldo, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].EtoD())
	}
	return out, total, nil
}

func (r *Repository) FindAll(ctx context.Context, q requests.ListQuery) ([]model.Saldo, int64, error) {
	return r.page(ctx, q, func(tx *gorm.DB) *gorm.DB { return tx.Unscoped() })
}

func (r *Repository) FindActive(ctx context.Context, q requests.ListQuery) ([]model.Saldo, int64, error) {
	return r.page(ctx, q, func(tx *gorm.DB) *gorm.DB { return tx })
}

func (r *Repository) FindTrashed(ctx context.Context, q requests.ListQuery) ([]model.Saldo, int64, error) {
	return r.page(ctx, q, func(tx *gorm.DB) *gorm.DB {
		return tx.Unscoped().Where("deleted_at IS NOT NULL")
	})
}

func (r *Repository) FindByID(ctx context.Context, id int) (*model.Saldo, error) {
	var row dbschema.Saldo
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, apperrors.WrapGorm(err, "saldo not found")
	}
	return row.EtoD(), nil
}

func (r *Repository) FindByCardNumber(ctx context.Context, cardNumber string) (*model.Saldo, error) {
	var row dbschema.Saldo
	if err := r.db.WithContext(ctx).Where("card_number = ?", cardNumber).First(&row).Error; err != nil {
		return nil, apperrors.WrapGorm(err, "saldo not found")
	}
	return row.EtoD(), nil
}

func (r *Repository) Create(ctx context.Context, s *model.Saldo) (*model.Saldo, error) {
	row := dbschema.NewSchemaSaldo(s)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, apperrors.WrapGorm(err, "create saldo")
	}
	return row.EtoD(), nil
}

func (r *Repository) Update(ctx context.Context, s *model.Saldo) (*model.Saldo, error) {
	res := r.db.WithContext(ctx).Model(&dbschema.Saldo{}).
		Where("id = ?", s.ID).
		Update("total_balance", s.TotalBalance)
	if res.Error != nil {
		return nil, apperrors.WrapGorm(res.Error, "update saldo")
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.NewRepositoryError(apperrors.RepoNotFound, "saldo not found", nil)
	}
	return r.FindByID(ctx, s.ID)
}

// AddBalance shifts the card balance by delta atomically in one statement.
// Negative deltas debit the card.
func (r *Repository) AddBalance(ctx context.Context, cardNumber string, delta int64) (*model.Saldo, error) {
	res := r.db.WithContext(ctx).Model(&dbschema.Saldo{}).
		Where("card_number = ?", cardNumber).
		Update("total_balance", gorm.Expr("total_balance + ?", delta))
	if res.Error != nil {
		return nil, apperrors.WrapGorm(res.Error, "update balance")
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.NewRepositoryError(apperrors.RepoNotFound, "saldo not found", nil)
	}
	return r.FindByCardNumber(ctx, cardNumber)
}

// RecordWithdraw debits the balance and stamps the withdrawal columns in
// one statement.
func (r *Repository) RecordWithdraw(ctx context.Context, cardNumber string, amount int64, at time.Time) (*model.Saldo, error) {
	res := r.db.WithContext(ctx).Model(&dbschema.Saldo{}).
		Where("card_number = ?", cardNumber).
		Updates(map[string]any{
			"total_balance":   gorm.Expr("total_balance - ?", amount),
			"withdraw_amount": amount,
			"withdraw_time":   at,
		})
	if res.Error != nil {
		return nil, apperrors.WrapGorm(res.Error, "record withdraw")
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.NewRepositoryError(apperrors.RepoNotFound, "saldo not found", nil)
	}
	return r.FindByCardNumber(ctx, cardNumber)
}

func (r *Repository) Trash(ctx context.Context, id int) (*model.Saldo, error) {
	res := r.db.WithContext(ctx).Delete(&dbschema.Saldo{}, id)
	if res.Error != nil {
		return nil, apperrors.WrapGorm(res.Error, "trash saldo")
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.NewRepositoryError(apperrors.RepoNotFound, "saldo not found", nil)
	}

	var row dbschema.Saldo
	if err := r.db.WithContext(ctx).Unscoped().First(&row, id).Error; err != nil {
		return nil, apperrors.WrapGorm(err, "saldo not found")
	}
	return row.EtoD(), nil
}

func (r *Repository) Restore(ctx context.Context, id int) (*model.Saldo, error) {
	res := r.db.WithContext(ctx).Unscoped().Model(&dbschema.Saldo{}).
		Where("id = ? AND deleted_at IS NOT NULL", id).
		Update("deleted_at", nil)
	if res.Error != nil {
		return nil, apperrors.WrapGorm(res.Error, "restore saldo")
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.NewRepositoryError(apperrors.RepoNotFound, "trashed saldo not found", nil)
	}
	return r.FindByID(ctx, id)
}

func (r *Repository) DeletePermanent(ctx context.Context, id int) error {
	res := r.db.WithContext(ctx).Unscoped().
		Where("id = ? AND deleted_at IS NOT NULL", id).
		Delete(&dbschema.Saldo{})
	if res.Error != nil {
		return apperrors.WrapGorm(res.Error, "delete saldo")
	}
	if res.RowsAffected == 0 {
		return apperrors.NewRepositoryError(apperrors.RepoNotFound, "trashed saldo not found", nil)
	}
	return nil
}

func (r *Repository) RestoreAll(ctx context.Context) error {
	if err := r.db.WithContext(ctx).Unscoped().Model(&dbschema.Saldo{}).
		Where("deleted_at IS NOT NULL").
		Update("deleted_at", nil).Error; err != nil {
		return apperrors.WrapGorm(err, "restore all saldos")
	}
	return nil
}

func (r *Repository) DeleteAllPermanent(ctx context.Context) error {
	if err := r.db.WithContext(ctx).Unscoped().
		Where("deleted_at IS NOT NULL").
		Delete(&dbschema.Saldo{}).Error; err != nil {
		return apperrors.WrapGorm(err, "delete all trashed saldos")
	}
	return nil
}

// MonthlyTotalBalance sums balances per month of the given year.
func (r *Repository) MonthlyTotalBalance(ctx context.Context, year int) ([]model.SaldoMonthTotalBalance, error) {
	var out []model.SaldoMonthTotalBalance
	err := r.db.WithContext(ctx).Model(&dbschema.Saldo{}).
		Select("TO_CHAR(created_at, 'YYYY') AS year, TO_CHAR(created_at, 'Mon') AS month, COALESCE(SUM(total_balance), 0) AS total_balance").
		Where("EXTRACT(YEAR FROM created_at) = ?", year).
		Group("TO_CHAR(created_at, 'YYYY'), EXTRACT(MONTH FROM created_at), TO_CHAR(created_at, 'Mon')").
		Order("EXTRACT(MONTH FROM created_at)").
		Scan(&out).Error
	if err != nil {
		return nil, apperrors.WrapGorm(err, "query monthly total balance")
	}
	return out, nil
}

// YearlyTotalBalance sums balances for the five years ending at the given
// year.
func (r *Repository) YearlyTotalBalance(ctx context.Context, year int) ([]model.SaldoYearTotalBalance, error) {
	var out []model.SaldoYearTotalBalance
	err := r.db.WithContext(ctx).Model(&dbschema.Saldo{}).
		Select("TO_CHAR(created_at, 'YYYY') AS year, COALESCE(SUM(total_balance), 0) AS total_balance").
		Where("EXTRACT(YEAR FROM created_at) BETWEEN ? AND ?", year-4, year).
		Group("TO_CHAR(created_at, 'YYYY')").
		Order("TO_CHAR(created_at, 'YYYY')").
		Scan(&out).Error
	if err != nil {
		return nil, apperrors.WrapGorm(err, "query yearly total balance")
	}
	return out, nil
}
