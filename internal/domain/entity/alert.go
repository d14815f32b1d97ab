package entity

import (
	"time"

	"github.com/google/uuid"
)

// AlertKind classifies what triggered an alert.
type AlertKind string

const (
	AlertKindBoundaryExit AlertKind = "boundary_exit"
	AlertKindMissingChild AlertKind = "missing_child"
	AlertKindCaseResolved AlertKind = "case_resolved"
	AlertKindManual       AlertKind = "manual"
)

// AlertSeverity is shown to recipients alongside the message.
type AlertSeverity string

const (
	AlertSeverityInfo     AlertSeverity = "info"
	AlertSeverityWarning  AlertSeverity = "warning"
	AlertSeverityCritical AlertSeverity = "critical"
)

// AlertStatus only moves forward: pending, then sent.
type AlertStatus string

const (
	AlertStatusPending AlertStatus = "pending"
	AlertStatusSent    AlertStatus = "sent"
)

// AlertEvent is the history record of one alert and its fan-out outcome.
type AlertEvent struct {
	ID            uuid.UUID     `json:"id"`
	ChildID       uuid.UUID     `json:"child_id"`
	CaseID        *uuid.UUID    `json:"case_id"`
	Kind          AlertKind     `json:"kind"`
	Severity      AlertSeverity `json:"severity"`
	Message       string        `json:"message"`
	RecipientIDs  []uuid.UUID   `json:"recipient_ids"`
	Status        AlertStatus   `json:"status"`
	SMSDelivered  bool          `json:"sms_delivered"`
	PushDelivered bool          `json:"push_delivered"`
	TotalSent     int           `json:"total_sent"`
	TotalFailed   int           `json:"total_failed"`
	CreatedAt     time.Time     `json:"created_at"`
	SentAt        *time.Time    `json:"sent_at"`
}

// AlertOutcome is what MarkSent records once dispatch has finished.
type AlertOutcome struct {
	SMSDelivered  bool
	PushDelivered bool
	TotalSent     int
	TotalFailed   int
	SentAt        time.Time
}

// SeverityFor returns the severity an alert of the given kind is raised with.
func SeverityFor(kind AlertKind) AlertSeverity {
	switch kind {
	case AlertKindBoundaryExit:
		return AlertSeverityWarning
	case AlertKindMissingChild:
		return AlertSeverityCritical
	default:
		return AlertSeverityInfo
	}
}
