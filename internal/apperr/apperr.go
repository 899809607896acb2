// Package apperr defines the expected error kinds shared by the company
// and job services: NotFound, InvalidInput and Conflict. Anything the
// store returns outside these kinds propagates to the caller unclassified.
package apperr

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a key does not resolve to an existing row.
var ErrNotFound = errors.New("not found")

// InvalidInputError wraps a user-facing validation message: malformed,
// empty, contradictory, or disallowed-field input. Always raised before
// any mutating statement executes.
type InvalidInputError struct{ Msg string }

func (e *InvalidInputError) Error() string { return e.Msg }

// InvalidInput builds an InvalidInputError from a format string.
func InvalidInput(format string, args ...any) error {
	return &InvalidInputError{Msg: fmt.Sprintf(format, args...)}
}

// IsInvalidInput reports whether err is (or wraps) an InvalidInputError.
func IsInvalidInput(err error) bool {
	var e *InvalidInputError
	return errors.As(err, &e)
}

// ConflictError reports a uniqueness violation detected on create.
type ConflictError struct{ Msg string }

func (e *ConflictError) Error() string { return e.Msg }

// Conflict builds a ConflictError from a format string.
func Conflict(format string, args ...any) error {
	return &ConflictError{Msg: fmt.Sprintf(format, args...)}
}

// IsConflict reports whether err is (or wraps) a ConflictError.
func IsConflict(err error) bool {
	var e *ConflictError
	return errors.As(err, &e)
}
