// Package apperrors defines the error kinds the HTTP layer knows how to
// report. Every error handed to a client unwraps to one of the sentinels.
package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrResourceNotFound = errors.New("resource not found")
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// ErrExternalFetch is never surfaced to HTTP clients. An import that hits
	// it stops and keeps what it already stored.
	ErrExternalFetch = errors.New("external catalog fetch failed")
)

// kinds in match order for KindOf
var kinds = []error{ErrResourceNotFound, ErrValidationFailed, ErrBadRequest, ErrExternalFetch}

// CustomError pairs an error kind with a message safe to show a client
type CustomError struct {
	Err     error
	Message string
}

func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError of the given kind
func NewCustomError(kind error, message string) *CustomError {
	return &CustomError{Err: kind, Message: message}
}

// Newf creates a CustomError with a formatted message
func Newf(kind error, format string, args ...any) *CustomError {
	return NewCustomError(kind, fmt.Sprintf(format, args...))
}

func NewResourceNotFoundError(message string) error {
	return NewCustomError(ErrResourceNotFound, message)
}

func NewValidationError(message string) error {
	return NewCustomError(ErrValidationFailed, message)
}

func NewBadRequestError(message string) error {
	return NewCustomError(ErrBadRequest, message)
}

// KindOf returns the sentinel err unwraps to, or nil for unclassified errors
func KindOf(err error) error {
	for _, kind := range kinds {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}

// Message returns the client-facing text of err. A wrapped CustomError
// wins over the outer wrapping text.
func Message(err error) string {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce.Error()
	}
	return err.Error()
}
