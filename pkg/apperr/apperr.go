// Package apperr defines the error kinds shared by the catalog and the
// order ledger.
package apperr

import "errors"

// Error kinds. Concrete errors unwrap to exactly one of these.
var (
	ErrValidation   = errors.New("validation error")
	ErrNotFound     = errors.New("not found")
	ErrInvalidState = errors.New("invalid state")
)

// Error is a human-readable failure of a given kind.
type Error struct {
	kind error
	msg  string
}

func (e *Error) Error() string { return e.msg }

// Unwrap returns the kind so errors.Is(err, ErrNotFound) works.
func (e *Error) Unwrap() error { return e.kind }

// Validation returns a malformed-input error.
func Validation(msg string) *Error { return &Error{kind: ErrValidation, msg: msg} }

// NotFound returns a missing-entity error.
func NotFound(msg string) *Error { return &Error{kind: ErrNotFound, msg: msg} }

// InvalidState returns an error for an operation the entity's state forbids.
func InvalidState(msg string) *Error { return &Error{kind: ErrInvalidState, msg: msg} }
