package cardrepo

import (
	"context"

	"gorm.io/gorm"

	"payment-gateway/internal/apperrors"
	"payment-gateway/internal/domain/requests"
	"payment-gateway/internal/infrastructure/database/dbschema"
	"payment-gateway/internal/model"
)

// Repository is the gorm-backed card store.
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
	return tx.Where("card_number ILIKE ? OR card_type ILIKE ? OR card_provider ILIKE ?", pattern, pattern, pattern)
}

func (r *Repository) page(ctx context.Context, q requests.ListQuery, scope func(*gorm.DB) *gorm.DB) ([]model.Card, int64, error) {
	var total int64
	if err := r.search(q, scope(r.db.WithContext(ctx).Model(&dbschema.Card{}))).Count(&total).Error; err != nil {
		return nil, 0, apperrors.WrapGorm(err, "count cards")
	}

	var rows []dbschema.Card
	if err := r.search(q, scope(r.db.WithContext(ctx).Model(&dbschema.Card{}))).
		Order("id").
		Offset(q.Offset()).
		Limit(q.PageSize).
		Find(&rows).Error; err != nil {
		return nil, 0, apperrors.WrapGorm(err, "query cards")
	}

	out := make([]model.Card, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].EtoD())
	}
	return out, total, nil
}

func (r *Repository) FindAll(ctx context.Context, q requests.ListQuery) ([]model.Card, int64, error) {
	return r.page(ctx, q, func(tx *gorm.DB) *gorm.DB { return tx.Unscoped() })
}

func (r *Repository) FindActive(ctx context.Context, q requests.ListQuery) ([]model.Card, int64, error) {
	return r.page(ctx, q, func(tx *gorm.DB) *gorm.DB { return tx })
}

func (r *Repository) FindTrashed(ctx context.Context, q requests.ListQuery) ([]model.Card, int64, error) {
	return r.page(ctx, q, func(tx *gorm.DB) *gorm.DB {
		return tx.Unscoped().Where("deleted_at IS NOT NULL")
	})
}

func (r *Repository) FindByID(ctx context.Context, id int) (*model.Card, error) {
	var row dbschema.Card
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, apperrors.WrapGorm(err, "card not found")
	}
	return row.EtoD(), nil
}

func (r *Repository) FindByUserID(ctx context.Context, userID int) ([]model.Card, error) {
	var rows []dbschema.Card
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Find(&rows).Error; err != nil {
		return nil, apperrors.WrapGorm(err, "query cards by user")
	}

	out := make([]model.Card, 0, len(rows))
	for i := range rows {
		out = append(out, *rows[i].EtoD())
	}
	return out, nil
}

func (r *Repository) FindByCardNumber(ctx context.Context, cardNumber string) (*model.Card, error) {
	var row dbschema.Card
	if err := r.db.WithContext(ctx).Where("card_number = ?", cardNumber).First(&row).Error; err != nil {
		return nil, apperrors.WrapGorm(err, "card not found")
	}
	return row.EtoD(), nil
}

func (r *Repository) Create(ctx context.Context, c *model.Card) (*model.Card, error) {
	row := dbschema.NewSchemaCard(c)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return nil, apperrors.WrapGorm(err, "create card")
	}
	return row.EtoD(), nil
}

func (r *Repository) Update(ctx context.Context, c *model.Card) (*model.Card, error) {
	row := dbschema.NewSchemaCard(c)
	res := r.db.WithContext(ctx).Model(&dbschema.Card{}).Where("id = ?", row.ID).Updates(map[string]any{
		"card_type":     row.CardType,
		"expire_date":   row.ExpireDate,
		"cvv":           row.CVV,
		"card_provider": row.CardProvider,
	})
	if res.Error != nil {
		return nil, apperrors.WrapGorm(res.Error, "update card")
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.NewRepositoryError(apperrors.RepoNotFound, "card not found", nil)
	}
	return r.FindByID(ctx, row.ID)
}

func (r *Repository) Trash(ctx context.Context, id int) (*model.Card, error) {
	res := r.db.WithContext(ctx).Delete(&dbschema.Card{}, id)
	if res.Error != nil {
		return nil, apperrors.WrapGorm(res.Error, "trash card")
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.NewRepositoryError(apperrors.RepoNotFound, "card not found", nil)
	}

	var row dbschema.Card
	if err := r.db.WithContext(ctx).Unscoped().First(&row, id).Error; err != nil {
		return nil, apperrors.WrapGorm(err, "card not found")
	}
	return row.EtoD(), nil
}

func (r *Repository) Restore(ctx context.Context, id int) (*model.Card, error) {
	res := r.db.WithContext(ctx).Unscoped().Model(&dbschema.Card{}).
		Where("id = ? AND deleted_at IS NOT NULL", id).
		Update("deleted_at", nil)
	if res.Error != nil {
		return nil, apperrors.WrapGorm(res.Error, "restore card")
	}
	if res.RowsAffected == 0 {
		return nil, apperrors.NewRepositoryError(apperrors.RepoNotFound, "trashed card not found", nil)
	}
	return r.FindByID(ctx, id)
}

func (r *Repository) DeletePermanent(ctx context.Context, id int) error {
	res := r.db.WithContext(ctx).Unscoped().
		Where("id = ? AND deleted_at IS NOT NULL", id).
		Delete(&dbschema.Card{})
	if res.Error != nil {
		return apperrors.WrapGorm(res.Error, "delete card")
	}
	if res.RowsAffected == 0 {
		return apperrors.NewRepositoryError(apperrors.RepoNotFound, "trashed card not found", nil)
	}
	return nil
}

func (r *Repository) RestoreAll(ctx context.Context) error {
	if err := r.db.WithContext(ctx).Unscoped().Model(&dbschema.Card{}).
		Where("deleted_at IS NOT NULL").
		Update("deleted_at", nil).Error; err != nil {
		return apperrors.WrapGorm(err, "restore all cards")
	}
	return nil
}

func (r *Repository) DeleteAllPermanent(ctx context.Context) error {
	if err := r.db.WithContext(ctx).Unscoped().
		Where("deleted_at IS NOT NULL").
		Delete(&dbschema.Card{}).Error; err != nil {
		return apperrors.WrapGorm(err, "delete all trashed cards")
	}
	return nil
}

// Dashboard aggregates platform-wide money totals. Only rows with status
// 'success' count toward the movement totals.
func (r *Repository) Dashboard(ctx context.Context) (*model.CardDashboard, error) {
	var out model.CardDashboard
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COALESCE(SUM(total_balance), 0) FROM saldos WHERE deleted_at IS NULL) AS total_balance,
			(SELECT COALESCE(SUM(topup_amount), 0) FROM topups WHERE deleted_at IS NULL AND status = 'success') AS total_topup,
			(SELECT COALESCE(SUM(withdraw_amount), 0) FROM withdraws WHERE deleted_at IS NULL AND status = 'success') AS total_withdraw,
			(SELECT COALESCE(SUM(amount), 0) FROM transactions WHERE deleted_at IS NULL AND status = 'success') AS total_transaction,
			(SELECT COALESCE(SUM(transfer_amount), 0) FROM transfers WHERE deleted_at IS NULL AND status = 'success') AS total_transfer
	`).Scan(&out).Error
	if err != nil {
		return nil, apperrors.WrapGorm(err, "query card dashboard")
	}
	return &out, nil
}

// DashboardByCardNumber aggregates money totals for one card, splitting
// transfers into sent and received.
func (r *Repository) DashboardByCardNumber(ctx context.Context, cardNumber string) (*model.CardDashboardByNumber, error) {
	var out model.CardDashboardByNumber
	err := r.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT COALESCE(SUM(total_balance), 0) FROM saldos WHERE deleted_at IS NULL AND card_number = @card) AS total_balance,
			(SELECT COALESCE(SUM(topup_amount), 0) FROM topups WHERE deleted_at IS NULL AND status = 'success' AND card_number = @card) AS total_topup,
			(SELECT COALESCE(SUM(withdraw_amount), 0) FROM withdraws WHERE deleted_at IS NULL AND status = 'success' AND card_number = @card) AS total_withdraw,
			(SELECT COALESCE(SUM(amount), 0) FROM transactions WHERE deleted_at IS NULL AND status = 'success' AND card_number = @card) AS total_transaction,
			(SELECT COALESCE(SUM(transfer_amount), 0) FROM transfers WHERE deleted_at IS NULL AND status = 'success' AND transfer_from = @card) AS total_transfer_send,
			(SELECT COALESCE(SUM(transfer_amount), 0) FROM transfers WHERE deleted_at IS NULL AND status = 'success' AND transfer_to = @card) AS total_transfer_receive
	`, map[string]any{"card": cardNumber}).Scan(&out).Error
	if err != nil {
		return nil, apperrors.WrapGorm(err, "query card dashboard by number")
	}
	return &out, nil
}

// MonthlyBalance sums held balances per month of the given year.
func (r *Repository) MonthlyBalance(ctx context.Context, year int) ([]model.CardMonthBalance, error) {
	var out []model.CardMonthBalance
	err := r.db.WithContext(ctx).Model(&dbschema.Saldo{}).
		Select("TO_CHAR(created_at, 'Mon') AS month, COALESCE(SUM(total_balance), 0) AS total_balance").
		Where("EXTRACT(YEAR FROM created_at) = ?", year).
		Group("EXTRACT(MONTH FROM created_at), TO_CHAR(created_at, 'Mon')").
		Order("EXTRACT(MONTH FROM created_at)").
		Scan(&out).Error
	if err != nil {
		return nil, apperrors.WrapGorm(err, "query monthly balance")
	}
	return out, nil
}

// YearlyBalance sums held balances for the five years ending at the given
// year.
func (r *Repository) YearlyBalance(ctx context.Context, year int) ([]model.CardYearBalance, error) {
	var out []model.CardYearBalance
	err := r.db.WithContext(ctx).Model(&dbschema.Saldo{}).
		Select("TO_CHAR(created_at, 'YYYY') AS year, COALESCE(SUM(total_balance), 0) AS total_balance").
		Where("EXTRACT(YEAR FROM created_at) BETWEEN ? AND ?", year-4, year).
		Group("TO_CHAR(created_at, 'YYYY')").
		Order("TO_CHAR(created_at, 'YYYY')").
		Scan(&out).Error
	if err != nil {
		return nil, apperrors.WrapGorm(err, "query yearly balance")
	}
	return out, nil
}
