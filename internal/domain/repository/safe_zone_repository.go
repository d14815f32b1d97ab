package repository

import (
	"context"

	"safetrack/internal/domain/entity"
)

// SafeZoneRepository reads the configured safe zone.
type SafeZoneRepository interface {
	// GetActiveZone returns the single active zone, or nil when none is active.
	GetActiveZone(ctx context.Context) (*entity.SafeZone, error)
}
