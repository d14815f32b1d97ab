package postgres

import (
	"context"

	"safetrack/internal/errors"
	"safetrack/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Migrate creates or updates the tables owned by the service.
func Migrate(ctx context.Context, db *gorm.DB) error {
	tx := db.WithContext(ctx)

	if err := tx.Exec(`CREATE EXTENSION IF NOT EXISTS pg_uuidv7`).Error; err != nil {
		return errors.Wrap(err, "failed to enable uuid v7 extension")
	}

	if err := tx.AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}
