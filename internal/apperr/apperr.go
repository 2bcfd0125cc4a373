// Package apperr defines the error taxonomy shared by services and
// repositories: validation failures, missing records, and store faults.
// Callers branch on kind via IsValidation/IsNotFound/IsPersistence.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error for the caller.
type Kind int

const (
	// Validation means the input was malformed; nothing was written.
	Validation Kind = iota
	// NotFound means the referenced record does not exist or is not
	// owned by the caller.
	NotFound
	// Persistence wraps an underlying store failure.
	Persistence
)

func (k Kind) String() string {
	switch k {
	case Validation:
		return "validation"
	case NotFound:
		return "not found"
	case Persistence:
		return "persistence"
	default:
		return "unknown"
	}
}

// Error carries a kind plus a message, optionally wrapping a cause.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is lets errors.Is match on kind using the package sentinels below.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Msg == "" && t.Err == nil && t.Kind == e.Kind
}

var (
	errValidation  = &Error{Kind: Validation}
	errNotFound    = &Error{Kind: NotFound}
	errPersistence = &Error{Kind: Persistence}
)

// Validationf builds a validation error.
func Validationf(format string, args ...any) error {
	return &Error{Kind: Validation, Msg: fmt.Sprintf(format, args...)}
}

// NotFoundf builds a not-found error.
func NotFoundf(format string, args ...any) error {
	return &Error{Kind: NotFound, Msg: fmt.Sprintf(format, args...)}
}

// Persistencef wraps a store failure with context.
func Persistencef(err error, format string, args ...any) error {
	return &Error{Kind: Persistence, Msg: fmt.Sprintf(format, args...), Err: err}
}

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool { return errors.Is(err, errValidation) }

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool { return errors.Is(err, errNotFound) }

// IsPersistence reports whether err is a persistence error.
func IsPersistence(err error) bool { return errors.Is(err, errPersistence) }
