package repository

import (
	"context"

	"safetrack/internal/domain/entity"

	"github.com/google/uuid"
)

// DeliveryLogRepository is the audit trail of delivery attempts.
type DeliveryLogRepository interface {
	// Insert persists a single entry and fills its ID.
	Insert(ctx context.Context, entry *entity.DeliveryLogEntry) error

	// UpdateOutcome records the final status and provider response of an entry.
	UpdateOutcome(ctx context.Context, id uuid.UUID, status entity.DeliveryStatus, providerResponse string) error

	// BatchInsert persists multiple entries in one round trip.
	BatchInsert(ctx context.Context, entries []*entity.DeliveryLogEntry) error

	// FindByAlert returns every entry written for an alert.
	FindByAlert(ctx context.Context, alertID uuid.UUID) ([]*entity.DeliveryLogEntry, error)
}
