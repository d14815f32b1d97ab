package service

import (
	"context"
)

// MaxPushBatch is the most device tokens one SendAlert call accepts.
const MaxPushBatch = 500

// PushAlert is an alert rendered for push delivery
type PushAlert struct {
	Title string
	Body  string
	Data  map[string]string
	// Urgent alerts ask the platform for immediate, high-priority delivery.
	Urgent bool
}

// PushBatchResult is the per-batch outcome of a multicast
type PushBatchResult struct {
	Sent   int
	Failed int
	// InvalidTokens were rejected as unregistered or malformed and should be retired.
	InvalidTokens []string
}

// NotificationService delivers alerts to recipient devices
type NotificationService interface {
	// SendAlert multicasts alert to up to MaxPushBatch tokens. A returned error
	// means the whole batch failed.
	SendAlert(ctx context.Context, tokens []string, alert *PushAlert) (*PushBatchResult, error)
}
