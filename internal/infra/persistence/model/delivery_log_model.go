package model

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryLogModel is the GORM-specific struct for the 'delivery_logs' table.
// It records one attempt to reach one recipient over one channel.
type DeliveryLogModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AlertEventID     uuid.UUID `gorm:"type:uuid;not null;index:idx_delivery_alert_recipient,priority:1"`
	RecipientID      uuid.UUID `gorm:"type:uuid;not null;index:idx_delivery_alert_recipient,priority:2"`
	Channel          string    `gorm:"type:varchar(8);not null"`
	Destination      string    `gorm:"type:varchar(255);not null"`
	Message          string    `gorm:"type:text;not null"`
	Status           string    `gorm:"type:varchar(16);not null;default:'pending'"`
	ProviderResponse string    `gorm:"type:text"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeliveryLogModel) TableName() string {
	return "delivery_logs"
}
