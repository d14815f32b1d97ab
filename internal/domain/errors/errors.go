package errors

import (
	"net/http"

	"safetrack/internal/errors"
)

// AppError is an error that knows how it should be reported to a client.
type AppError interface {
	error
	HTTPCode() int
	ErrorCode() string // stable machine-readable code
	Message() string   // client-facing text
	Details() string
}

// BaseError is the stock AppError. Copies made with WithDetails still match the
// original under errors.Is.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
	}
}

func (e *BaseError) Error() string {
	if e.details == "" {
		return e.message
	}

	return e.message + ": " + e.details
}

// Is matches any BaseError carrying the same error code.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
}

func (e *BaseError) HTTPCode() int     { return e.httpCode }
func (e *BaseError) ErrorCode() string { return e.errorCode }
func (e *BaseError) Message() string   { return e.message }
func (e *BaseError) Details() string   { return e.details }

// WithDetails returns a copy of e carrying details.
func (e *BaseError) WithDetails(details string) *BaseError {
	clone := *e
	clone.details = details

	return &clone
}

// Wrap attaches e as the cause of a stack-carrying error with message.
func (e *BaseError) Wrap(message string) error {
	return errors.Wrap(e, message)
}

var (
	// ErrValidationFailed rejects a malformed location report or query.
	ErrValidationFailed = NewBaseError(http.StatusBadRequest, "VALIDATION_FAILED", "Location report failed validation")

	// ErrChildNotFound means no active child is bound to the reporting subject.
	ErrChildNotFound = NewBaseError(http.StatusNotFound, "CHILD_NOT_FOUND", "No active child is registered for this device")

	ErrLocationPersistFailed = NewBaseError(http.StatusInternalServerError, "LOCATION_PERSIST_FAILED", "Failed to record location")
	ErrSafeZoneUnavailable   = NewBaseError(http.StatusInternalServerError, "SAFE_ZONE_UNAVAILABLE", "Safe zone could not be loaded")

	// ErrIntegrityViolation is a write that broke a foreign key or not-null rule.
	ErrIntegrityViolation = NewBaseError(http.StatusInternalServerError, "INTEGRITY_VIOLATION", "Stored data failed an integrity check")

	ErrTransactionFailed = NewBaseError(http.StatusInternalServerError, "TRANSACTION_FAILED", "Database transaction failed")
)

// DatabaseExecuteError is an AppError around a failed query.
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

func (e *DatabaseExecuteError) Message() string {
	return "Database operation failed"
}

func (e *DatabaseExecuteError) Details() string {
	return e.details
}
