// Package geo holds the pure geometry used to classify location fixes.
package geo

import (
	"fmt"
	"math"

	"safetrack/internal/domain/entity"

	"github.com/paulmach/orb"
)

// EarthRadiusMeters is the mean Earth radius used by Distance.
const EarthRadiusMeters = 6371000.0

// Coordinate is a WGS84 position. It is stored as an orb.Point, so X is the
// longitude and Y is the latitude.
type Coordinate orb.Point

// NewCoordinate builds a Coordinate from latitude and longitude in degrees.
func NewCoordinate(lat, lng float64) Coordinate {
	return Coordinate{lng, lat}
}

func (c Coordinate) Lat() float64 { return c[1] }

func (c Coordinate) Lng() float64 { return c[0] }

// Point exposes the coordinate as an orb.Point.
func (c Coordinate) Point() orb.Point { return orb.Point(c) }

// Distance returns the great-circle distance in meters between a and b using
// the haversine formula. NaN inputs produce NaN.
func Distance(a, b Coordinate) float64 {
	lat1 := degToRad(a.Lat())
	lat2 := degToRad(b.Lat())
	dLat := lat2 - lat1
	dLng := degToRad(b.Lng() - a.Lng())

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLng*sinLng

	// Rounding can push h a hair past 1 for antipodal points.
	h = math.Min(1, h)

	return 2 * EarthRadiusMeters * math.Asin(math.Sqrt(h))
}

// ZoneCenter returns the center of the safe zone.
func ZoneCenter(zone *entity.SafeZone) Coordinate {
	return NewCoordinate(zone.CenterLat, zone.CenterLng)
}

// Classify reports whether point lies inside zone. The boundary itself counts
// as inside. Without an active, valid zone every point is inside.
func Classify(point Coordinate, zone *entity.SafeZone) bool {
	if zone == nil || !zone.IsActive || zone.Validate() != nil {
		return true
	}

	return Distance(point, ZoneCenter(zone)) <= zone.RadiusMeters
}

// ValidateCoordinate checks that lat and lng are finite and within WGS84 range.
func ValidateCoordinate(lat, lng float64) error {
	if math.IsNaN(lat) || math.IsInf(lat, 0) || lat < -90 || lat > 90 {
		return fmt.Errorf("latitude %v out of range [-90, 90]", lat)
	}
	if math.IsNaN(lng) || math.IsInf(lng, 0) || lng < -180 || lng > 180 {
		return fmt.Errorf("longitude %v out of range [-180, 180]", lng)
	}

	return nil
}

func degToRad(d float64) float64 {
	return d * math.Pi / 180
}
