package entity

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryChannel is the transport a delivery attempt went through.
type DeliveryChannel string

const (
	DeliveryChannelSMS  DeliveryChannel = "sms"
	DeliveryChannelPush DeliveryChannel = "push"
)

// DeliveryStatus of a single attempt.
type DeliveryStatus string

const (
	DeliveryStatusPending DeliveryStatus = "pending"
	DeliveryStatusSent    DeliveryStatus = "sent"
	DeliveryStatusFailed  DeliveryStatus = "failed"
)

// DeliveryLogEntry is the audit row of one attempt to reach one recipient.
type DeliveryLogEntry struct {
	ID               uuid.UUID       `json:"id"`                // The Global Unique Identifier (GUID) for the log entry.
	AlertEventID     uuid.UUID       `json:"alert_event_id"`    // The alert this attempt belongs to.
	RecipientID      uuid.UUID       `json:"recipient_id"`      // The user being notified.
	Channel          DeliveryChannel `json:"channel"`           // sms or push.
	Destination      string          `json:"destination"`       // Normalized phone number or device identifier.
	Message          string          `json:"message"`           // Body that was sent.
	Status           DeliveryStatus  `json:"status"`            // pending, sent or failed.
	ProviderResponse string          `json:"provider_response"` // Gateway response body or transport error text.
	CreatedAt        time.Time       `json:"created_at"`        // Timestamp of when the attempt started.
	UpdatedAt        time.Time       `json:"updated_at"`        // Timestamp of the last outcome update.
}
