// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Child is a tracked student. SubjectID is the key the tracking device reports with.
type Child struct {
	ID        uuid.UUID `json:"id"`
	SubjectID string    `json:"subject_id"`
	FullName  string    `json:"full_name"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
