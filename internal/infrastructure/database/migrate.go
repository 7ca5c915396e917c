package database

import (
	"context"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"payment-gateway/internal/infrastructure/database/dbschema"
)

// AutoMigrate applies database schema changes for every registered entity.
func AutoMigrate(ctx context.Context, db *gorm.DB, log zerolog.Logger) error {
	if err := db.WithContext(ctx).AutoMigrate(dbschema.Models()...); err != nil {
		return err
	}

	log.Info().Msg("database schema up to date")
	return nil
}
