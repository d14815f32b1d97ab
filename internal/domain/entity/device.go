package entity

import (
	"time"

	"github.com/google/uuid"
)

// RecipientDevice is a phone a guardian or staff member registered for push alerts.
// Devices whose token FCM rejects are deactivated, never deleted.
type RecipientDevice struct {
	ID          uuid.UUID `json:"id"`
	RecipientID uuid.UUID `json:"recipient_id"`
	FCMToken    string    `json:"fcm_token"`
	DeviceID    string    `json:"device_id"` // client-chosen, shown in delivery logs
	Platform    string    `json:"platform"`  // ios or android
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
