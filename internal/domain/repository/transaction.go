package repository

import "context"

// TransactionManager runs alert claims atomically without exposing GORM to the
// use case layer.
type TransactionManager interface {
	// Execute commits when fn returns nil and rolls back otherwise. fn's error
	// is returned unchanged so callers can still match it.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the running transaction.
type RepositoryFactory interface {
	NewAlertRepository() AlertRepository
	NewDeliveryLogRepository() DeliveryLogRepository
}
