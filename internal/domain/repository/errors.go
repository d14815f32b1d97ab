package repository

import "github.com/pkg/errors"

// Domain-specific errors for persistence.
var (
	// ErrChildNotFound is returned when no active child matches a subject id.
	ErrChildNotFound = errors.New("child not found")
	// ErrAlertNotFound is returned when an alert event is not found.
	ErrAlertNotFound = errors.New("alert event not found")
	// ErrDeliveryLogNotFound is returned when updating a log entry that does not exist.
	ErrDeliveryLogNotFound = errors.New("delivery log entry not found")
)
