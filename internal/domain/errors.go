package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
)

// Engine sentinels. These classify *expected* outcomes that the host UI
// must tell apart; programmer faults still panic or surface as wrapped
// unexpected errors.
var (
	// ErrInsufficientBattery aborts a session start when the allowance
	// service reports the "insufficient" kind. The host presents a
	// refill/upsell path, so it must never be folded into a generic error.
	ErrInsufficientBattery = errors.New("insufficient battery")

	// ErrNoQuestions means the filters (or notebook merge) resolved to an
	// empty question list in a context with no acceptable fallback.
	ErrNoQuestions = errors.New("no questions available")

	// ErrSessionBusy rejects an operation that overlaps an unresolved
	// prior call on the same session.
	ErrSessionBusy = errors.New("session operation in flight")

	// ErrInvalidState rejects an operation issued in the wrong phase,
	// e.g. Answer while no session is practicing.
	ErrInvalidState = errors.New("invalid session state")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s — %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
