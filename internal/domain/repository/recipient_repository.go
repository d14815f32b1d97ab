package repository

import (
	"context"

	"safetrack/internal/domain/entity"

	"github.com/google/uuid"
)

// RecipientRepository looks up the users related to a child.
// Implementations return only active users.
type RecipientRepository interface {
	// GuardiansOf returns the guardians linked to the child.
	GuardiansOf(ctx context.Context, childID uuid.UUID) ([]*entity.Recipient, error)

	// StaffOf returns the staff members assigned to the child.
	StaffOf(ctx context.Context, childID uuid.UUID) ([]*entity.Recipient, error)

	// AllActiveAdmins returns every active administrator.
	AllActiveAdmins(ctx context.Context) ([]*entity.Recipient, error)

	// FindByIDs returns the active recipients among ids, in no particular order.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Recipient, error)
}
