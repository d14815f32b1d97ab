package usecase

import (
	"context"

	"safetrack/internal/domain/entity"

	"github.com/google/uuid"
)

// RecipientUsecase resolves who must be told about a child's alert
type RecipientUsecase interface {
	// Resolve returns guardians, staff and active admins of a child with no duplicate ids
	Resolve(ctx context.Context, childID uuid.UUID) ([]*entity.Recipient, error)
}
