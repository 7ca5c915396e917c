package refreshtokenrepo

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"payment-gateway/internal/apperrors"
	"payment-gateway/internal/infrastructure/database/dbschema"
	"payment-gateway/internal/model"
)

// Repository persists the single active refresh token per user.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Upsert replaces the user's refresh token. Login and refresh both rotate
// through here, so a user never holds more than one live token.
func (r *Repository) Upsert(ctx context.Context, token *model.RefreshToken) error {
	row := dbschema.NewSchemaRefreshToken(token)
	if err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"token", "expires_at", "updated_at"}),
	}).Create(row).Error; err != nil {
		return apperrors.WrapGorm(err, "upsert refresh token")
	}
	return nil
}

func (r *Repository) FindByToken(ctx context.Context, token string) (*model.RefreshToken, error) {
	var row dbschema.RefreshToken
	if err := r.db.WithContext(ctx).Where("token = ?", token).First(&row).Error; err != nil {
		return nil, apperrors.WrapGorm(err, "refresh token not found")
	}
	return row.EtoD(), nil
}

func (r *Repository) DeleteByUserID(ctx context.Context, userID int) error {
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&dbschema.RefreshToken{}).Error; err != nil {
		return apperrors.WrapGorm(err, "delete refresh token")
	}
	return nil
}
