package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RecipientDeviceModel maps recipient_devices, the push targets of guardians and staff.
type RecipientDeviceModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	RecipientID uuid.UUID `gorm:"type:uuid;not null;index:idx_recipient_devices_recipient_active,priority:1"`
	FCMToken    string    `gorm:"type:varchar(255);not null;index"`
	DeviceID    string    `gorm:"type:varchar(255);not null"`
	Platform    string    `gorm:"type:varchar(50);not null"`
	IsActive    bool      `gorm:"not null;default:true;index:idx_recipient_devices_recipient_active,priority:2"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (RecipientDeviceModel) TableName() string {
	return "recipient_devices"
}
