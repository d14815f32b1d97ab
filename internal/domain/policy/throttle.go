package policy

import (
	"context"
	"time"

	"safetrack/internal/domain/entity"

	"github.com/google/uuid"
)

// DefaultBoundaryExitCooldown is the minimum gap between two boundary-exit
// alerts for the same child.
const DefaultBoundaryExitCooldown = time.Hour

// AlertHistoryLookup returns the most recent alert of a kind for a child, or
// nil when there is none.
type AlertHistoryLookup interface {
	MostRecent(ctx context.Context, childID uuid.UUID, kind entity.AlertKind) (*entity.AlertEvent, error)
}

// Allow reports whether a new alert of kind may be raised for childID at now.
// It is denied while the previous alert of the same kind is younger than
// cooldown.
func Allow(ctx context.Context, history AlertHistoryLookup, childID uuid.UUID, kind entity.AlertKind, now time.Time, cooldown time.Duration) (bool, error) {
	last, err := history.MostRecent(ctx, childID, kind)
	if err != nil {
		return false, err
	}

	return AllowAfter(last, now, cooldown), nil
}

// AllowAfter is the decision Allow makes once the last alert is known.
func AllowAfter(last *entity.AlertEvent, now time.Time, cooldown time.Duration) bool {
	if last == nil {
		return true
	}

	return !last.CreatedAt.After(now.Add(-cooldown))
}
