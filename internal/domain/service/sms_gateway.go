package service

import (
	"context"
)

// SMSSendResult is what the gateway reported for one message
type SMSSendResult struct {
	MessageID        string
	Status           string
	ProviderResponse string // Raw response body, kept for the delivery log
}

// SMSGateway sends a text message to one normalized phone number.
// Delivery is best-effort: an accepted message may still never arrive.
type SMSGateway interface {
	Send(ctx context.Context, phone, message string) (*SMSSendResult, error)
}
