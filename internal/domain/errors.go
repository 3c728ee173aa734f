package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound           = errors.New("not found")
	ErrAlreadyExists      = errors.New("already exists")
	ErrValidation         = errors.New("validation error")
	ErrBadRequest         = errors.New("bad request")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrConflict           = errors.New("conflict")
	ErrInsufficientData   = errors.New("insufficient data")
	ErrServiceUnavailable = errors.New("service unavailable")
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
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
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

// StateError is a rejected state transition or request. Message is safe to
// show to the client; Kind is one of the sentinels above.
type StateError struct {
	Kind    error
	Message string
}

func (e *StateError) Error() string { return e.Kind.Error() + ": " + e.Message }

func (e *StateError) Unwrap() error { return e.Kind }

// NewConflict returns a StateError of kind ErrConflict.
func NewConflict(message string) *StateError {
	return &StateError{Kind: ErrConflict, Message: message}
}

// NewBadRequest returns a StateError of kind ErrBadRequest.
func NewBadRequest(message string) *StateError {
	return &StateError{Kind: ErrBadRequest, Message: message}
}

// NewInsufficientData returns a StateError of kind ErrInsufficientData.
func NewInsufficientData(message string) *StateError {
	return &StateError{Kind: ErrInsufficientData, Message: message}
}
