package repository

import (
	"context"
	"time"

	"safetrack/internal/domain/entity"

	"github.com/google/uuid"
)

// LocationRepository is the append-only store of location fixes.
type LocationRepository interface {
	// Append persists the record and fills its ID.
	Append(ctx context.Context, record *entity.LocationRecord) error

	// MostRecent returns up to limit records for the child, newest first.
	MostRecent(ctx context.Context, childID uuid.UUID, limit int) ([]*entity.LocationRecord, error)

	// FindBetween returns the child's records with RecordedAt in [from, to), oldest first.
	FindBetween(ctx context.Context, childID uuid.UUID, from, to time.Time) ([]*entity.LocationRecord, error)
}
