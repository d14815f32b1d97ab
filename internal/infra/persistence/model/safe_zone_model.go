package model

import (
	"time"

	"github.com/google/uuid"
)

// SafeZoneModel is the GORM-specific struct for the 'safe_zones' table.
type SafeZoneModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name         string    `gorm:"type:text;not null"`
	CenterLat    float64   `gorm:"type:decimal(10,8);not null"`
	CenterLng    float64   `gorm:"type:decimal(11,8);not null"`
	RadiusMeters float64   `gorm:"not null"`
	IsActive     bool      `gorm:"not null;default:false;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (SafeZoneModel) TableName() string {
	return "safe_zones"
}
