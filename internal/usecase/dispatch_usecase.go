package usecase

import (
	"context"

	"safetrack/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrDispatchIncomplete means the alert went out but its status could not be
// recorded. Retrying would message the recipients twice.
var ErrDispatchIncomplete = errors.New("alert dispatched but not marked sent")

// DispatchResult summarizes one alert fan-out
type DispatchResult struct {
	Attempted  int `json:"attempted"`
	Sent       int `json:"sent"`
	Failed     int `json:"failed"`
	Skipped    int `json:"skipped"` // Recipients without a phone
	PushSent   int `json:"push_sent"`
	PushFailed int `json:"push_failed"`
}

// DispatchUsecase delivers alert events to recipients
type DispatchUsecase interface {
	// Dispatch sends the alert message to every recipient and writes the delivery log.
	// Channel failures only show up in the counts.
	Dispatch(ctx context.Context, event *entity.AlertEvent, recipients []*entity.Recipient) (*DispatchResult, error)

	// Deliver dispatches and then marks the alert as sent
	Deliver(ctx context.Context, event *entity.AlertEvent, recipients []*entity.Recipient) (*DispatchResult, error)

	// DeliverStored loads a pending alert with its recipients and delivers it.
	// An alert that is already sent is skipped.
	DeliverStored(ctx context.Context, alertID uuid.UUID) (*DispatchResult, error)
}
