package service

import (
	"context"
)

// AlertDispatchEvent asks the dispatch worker to fan out a claimed alert
type AlertDispatchEvent struct {
	RequestID    string   `json:"request_id,omitempty"` // For distributed tracing
	AlertID      string   `json:"alert_id"`
	ChildID      string   `json:"child_id"`
	RecipientIDs []string `json:"recipient_ids"` // Resolved at claim time
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAlertDispatchEvent publishes an alert for async dispatch
	PublishAlertDispatchEvent(ctx context.Context, event *AlertDispatchEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
