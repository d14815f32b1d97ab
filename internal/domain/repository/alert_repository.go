package repository

import (
	"context"

	"safetrack/internal/domain/entity"

	"github.com/google/uuid"
)

// AlertRepository persists alert history.
type AlertRepository interface {
	// MostRecent returns the newest alert of kind for the child, or nil when there is none.
	MostRecent(ctx context.Context, childID uuid.UUID, kind entity.AlertKind) (*entity.AlertEvent, error)

	// Insert persists a new alert together with its recipient set.
	Insert(ctx context.Context, event *entity.AlertEvent) error

	// MarkSent moves a pending alert to sent and records the dispatch outcome.
	MarkSent(ctx context.Context, id uuid.UUID, outcome entity.AlertOutcome) error

	// FindByID loads an alert with its recipient set. It returns ErrAlertNotFound when missing.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.AlertEvent, error)

	// LockSubject serializes alert claims for (childID, kind) until the surrounding
	// transaction ends. Outside a transaction the lock is released immediately.
	LockSubject(ctx context.Context, childID uuid.UUID, kind entity.AlertKind) error
}
