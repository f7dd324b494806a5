// Package apperr defines the error taxonomy shared by the service layer.
// Controllers map these onto HTTP status codes; services never log-and-drop
// a store failure except where a safe default is the documented behavior.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrAuthRequired is returned when an operation needs an authenticated user
	ErrAuthRequired = errors.New("authentication required")

	// ErrAlreadyEnrolled is returned on a duplicate enrollment attempt
	ErrAlreadyEnrolled = errors.New("already enrolled in this course")

	// ErrNotOwner is returned when a user acts on an enrollment they don't own
	ErrNotOwner = errors.New("enrollment does not belong to this user")

	// ErrNotPending is returned when self-service completion is attempted on a
	// record that is not in the pending state
	ErrNotPending = errors.New("enrollment payment is not pending")
)

// ValidationError reports malformed or missing input. Always raised before
// any call reaches the store.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// NewValidation builds a ValidationError for a field
func NewValidation(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// StoreError wraps a failure from the remote data store with the original
// message preserved.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// WrapStore wraps err as a StoreError, or returns nil if err is nil
func WrapStore(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Err: err}
}

// IsValidation reports whether err is a ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsStore reports whether err is a StoreError
func IsStore(err error) bool {
	var se *StoreError
	return errors.As(err, &se)
}
