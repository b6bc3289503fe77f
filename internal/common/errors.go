// Package common defines shared constants and sentinel errors used across
// the store, service and transport layers. Callers should use errors.Is to
// match these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrorNotFound       = errors.New("not found")
	ErrConflict         = errors.New("conflict")
	ErrStoreUnavailable = errors.New("store unavailable")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Authorization errors, surfaced distinctly once authenticated.
	ErrNotAdmin = errors.New("admin access required")

	// Bootstrap / account errors.
	ErrAlreadyBootstrapped = errors.New("admin already bootstrapped")
	ErrEmailTaken          = errors.New("email already registered")
	ErrInvalidCredentials  = fmt.Errorf("%w: invalid email or password", ErrorUnauthorized)

	// Validation errors.
	ErrMissingType         = errors.New("incident_type is required")
	ErrMissingLocation     = errors.New("location (latitude/longitude) is required")
	ErrMissingDescription  = errors.New("description is required")
	ErrInvalidStatus       = errors.New("invalid status")
	ErrInvalidLocationType = errors.New("invalid location type")
	ErrNoFieldsToUpdate    = errors.New("no fields to update")
	ErrInvalidInput        = errors.New("invalid input")
)

// Auth errors. All of them match ErrorUnauthorized so the transport can
// answer them uniformly.
var (
	ErrMissingToken = fmt.Errorf("%w: missing token", ErrorUnauthorized)
	ErrInvalidToken = fmt.Errorf("%w: invalid token", ErrorUnauthorized)
	ErrUserNotFound = fmt.Errorf("%w: user not found", ErrorUnauthorized)
)

// ValidationError reports a rejected field together with the reason.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// NewValidationError builds a ValidationError for field.
func NewValidationError(field string, err error) *ValidationError {
	return &ValidationError{Field: field, Err: err}
}
