package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation indicates malformed input (name, phone, birthday, arguments).
	ErrValidation = errors.New("validation failed")

	// ErrNotFound indicates the requested contact or phone does not exist.
	ErrNotFound = errors.New("not found")

	// ErrContactExists indicates a contact with the same name is already stored.
	ErrContactExists = errors.New("contact already exists")
)

// ValidationError describes why a value was rejected.
type ValidationError struct {
	Field  string
	Reason string
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// Is reports ErrValidation so callers can match with errors.Is.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NotFoundError describes a missing contact, phone or birthday.
type NotFoundError struct {
	Kind string
	Key  string
}

// NewNotFoundError creates a NotFoundError of the given kind.
func NewNotFoundError(kind, key string) *NotFoundError {
	return &NotFoundError{Kind: kind, Key: key}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.Key)
}

// Is reports ErrNotFound so callers can match with errors.Is.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}
