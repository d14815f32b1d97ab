package repository

import (
	"context"

	"safetrack/internal/domain/entity"

	"github.com/google/uuid"
)

// DeviceRepository defines the device lookups needed for push delivery.
type DeviceRepository interface {
	// FindActiveByRecipients retrieves all active devices owned by the given recipients.
	FindActiveByRecipients(ctx context.Context, recipientIDs []uuid.UUID) ([]*entity.RecipientDevice, error)

	// DeactivateTokens retires every active device holding one of tokens and
	// reports how many were changed. FCM rejected these tokens.
	DeactivateTokens(ctx context.Context, tokens []string) (int64, error)
}
