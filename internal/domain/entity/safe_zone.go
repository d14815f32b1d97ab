package entity

import (
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrInvalidSafeZone marks a stored zone whose geometry cannot be used.
var ErrInvalidSafeZone = errors.New("invalid safe zone")

// SafeZone is the circular boundary children are expected to stay within.
type SafeZone struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	CenterLat    float64   `json:"center_lat"`
	CenterLng    float64   `json:"center_lng"`
	RadiusMeters float64   `json:"radius_meters"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Validate rejects a zone with a center outside WGS84 range or a radius that
// is not a positive finite number of meters.
func (z *SafeZone) Validate() error {
	if !finite(z.CenterLat) || z.CenterLat < -90 || z.CenterLat > 90 {
		return errors.Wrapf(ErrInvalidSafeZone, "center latitude %v", z.CenterLat)
	}
	if !finite(z.CenterLng) || z.CenterLng < -180 || z.CenterLng > 180 {
		return errors.Wrapf(ErrInvalidSafeZone, "center longitude %v", z.CenterLng)
	}
	if !finite(z.RadiusMeters) || z.RadiusMeters <= 0 {
		return errors.Wrapf(ErrInvalidSafeZone, "radius %v", z.RadiusMeters)
	}

	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
