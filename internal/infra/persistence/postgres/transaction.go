package postgres

import (
	"context"
	"fmt"

	domainerrors "safetrack/internal/domain/errors"
	"safetrack/internal/domain/repository"

	"gorm.io/gorm"
)

type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory hands out repositories bound to one open transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB
}

func (f *gormRepositoryFactory) NewAlertRepository() repository.AlertRepository {
	return NewAlertRepository(f.tx)
}

func (f *gormRepositoryFactory) NewDeliveryLogRepository() repository.DeliveryLogRepository {
	return NewDeliveryLogRepository(f.tx)
}

// NewTransactionManager is the fx provider for the transaction manager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs fn inside one transaction. Errors returned by fn come back
// unchanged after rollback; begin and commit failures are reported as
// ErrTransactionFailed. Advisory locks taken by fn are released on either path.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	var fnErr error

	err := tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(&gormRepositoryFactory{tx: tx})

		return fnErr
	})
	if err == nil || fnErr != nil {
		return err
	}

	return fmt.Errorf("%w: %w", domainerrors.ErrTransactionFailed, err)
}
