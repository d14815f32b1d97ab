// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"safetrack/internal/domain/entity"
)

// ChildRepository resolves tracked children.
type ChildRepository interface {
	// FindActiveBySubjectID returns the active child registered under the device subject id.
	// It returns ErrChildNotFound when none matches.
	FindActiveBySubjectID(ctx context.Context, subjectID string) (*entity.Child, error)
}
