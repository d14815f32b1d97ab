package model

import (
	"time"

	"github.com/google/uuid"
)

// AlertEventModel is the GORM-specific struct for the 'alert_events' table.
type AlertEventModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ChildID       uuid.UUID  `gorm:"type:uuid;not null;index:idx_alert_child_kind_created,priority:1"`
	CaseID        *uuid.UUID `gorm:"type:uuid"`
	Kind          string     `gorm:"type:varchar(32);not null;index:idx_alert_child_kind_created,priority:2"`
	Severity      string     `gorm:"type:varchar(16);not null"`
	Message       string     `gorm:"type:text;not null"`
	Status        string     `gorm:"type:varchar(16);not null;default:'pending'"`
	SMSDelivered  bool       `gorm:"column:sms_delivered;not null;default:false"`
	PushDelivered bool       `gorm:"not null;default:false"`
	TotalSent     int        `gorm:"not null;default:0"`
	TotalFailed   int        `gorm:"not null;default:0"`
	CreatedAt     time.Time  `gorm:"index:idx_alert_child_kind_created,priority:3,sort:desc"`
	SentAt        *time.Time

	Recipients []AlertEventRecipientModel `gorm:"foreignKey:AlertEventID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (AlertEventModel) TableName() string {
	return "alert_events"
}

// AlertEventRecipientModel stores one member of an alert's recipient set.
type AlertEventRecipientModel struct {
	AlertEventID uuid.UUID `gorm:"type:uuid;primaryKey"`
	RecipientID  uuid.UUID `gorm:"type:uuid;primaryKey;index"`
}

// TableName explicitly sets the table name for GORM.
func (AlertEventRecipientModel) TableName() string {
	return "alert_event_recipients"
}
