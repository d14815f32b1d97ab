package entity

import (
	"time"

	"github.com/google/uuid"
)

// LocationRecord is one accepted GPS fix. Records are append-only.
type LocationRecord struct {
	ID             int64     `json:"id"`               // Monotonic insertion order, breaks ties on RecordedAt.
	ChildID        uuid.UUID `json:"child_id"`         // The child the fix belongs to.
	Latitude       float64   `json:"latitude"`         // WGS84 latitude in degrees.
	Longitude      float64   `json:"longitude"`        // WGS84 longitude in degrees.
	Accuracy       *float64  `json:"accuracy"`         // Horizontal accuracy in meters, when the device reports it.
	InsideSafeZone bool      `json:"inside_safe_zone"` // Classification at write time.
	RecordedAt     time.Time `json:"recorded_at"`      // Device report time, or receipt time when absent.
	ReceivedAt     time.Time `json:"received_at"`      // Server receipt time.
}
