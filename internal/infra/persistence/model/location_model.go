package model

import (
	"time"

	"github.com/google/uuid"
)

// LocationRecordModel is the GORM-specific struct for the append-only 'location_records' table.
type LocationRecordModel struct {
	ID             int64     `gorm:"primaryKey;autoIncrement;index:idx_location_child_recorded,priority:3,sort:desc"`
	ChildID        uuid.UUID `gorm:"type:uuid;not null;index:idx_location_child_recorded,priority:1"`
	Latitude       float64   `gorm:"type:decimal(10,8);not null"`
	Longitude      float64   `gorm:"type:decimal(11,8);not null"`
	Accuracy       *float64
	InsideSafeZone bool      `gorm:"not null"`
	RecordedAt     time.Time `gorm:"not null;index:idx_location_child_recorded,priority:2,sort:desc"`
	ReceivedAt     time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (LocationRecordModel) TableName() string {
	return "location_records"
}
