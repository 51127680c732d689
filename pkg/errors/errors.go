package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error represents a typed domain error with HTTP awareness.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
	Err     error  `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// New creates a new Error instance.
func New(code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

// Wrap attaches context to an existing error.
func Wrap(err error, code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message, Err: err}
}

// Predefined errors. The first five correspond to spec.md §7 error kinds.
// InputMalformed/ReferenceUnresolved/InvariantViolated are raised by the
// validator before search and are not recoverable by the core. Infeasible
// and Timeout are normal terminations carried in a solution document's
// meta.status, never surfaced as bare HTTP/CLI failures on their own.
var (
	ErrInputMalformed      = New("INPUT_MALFORMED", http.StatusBadRequest, "input document is malformed")
	ErrReferenceUnresolved = New("REFERENCE_UNRESOLVED", http.StatusUnprocessableEntity, "a referenced id does not resolve to a defined entity")
	ErrInvariantViolated   = New("INVARIANT_VIOLATED", http.StatusUnprocessableEntity, "input violates a problem model invariant")
	ErrInfeasible          = New("INFEASIBLE", http.StatusOK, "no feasible assignment exists for every event")
	ErrTimeout             = New("TIMEOUT", http.StatusOK, "search did not complete before the cooperative deadline")

	ErrNotFound    = New("NOT_FOUND", http.StatusNotFound, "resource not found")
	ErrForbidden   = New("FORBIDDEN", http.StatusForbidden, "forbidden")
	ErrUnauthorized = New("UNAUTHORIZED", http.StatusUnauthorized, "unauthorized")
	ErrConflict    = New("CONFLICT", http.StatusConflict, "conflict")
	ErrValidation  = New("VALIDATION_ERROR", http.StatusBadRequest, "validation failed")
	ErrInternal    = New("INTERNAL_ERROR", http.StatusInternalServerError, "internal server error")
)

// FromError normalises any error into an *Error.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Wrap(err, ErrInternal.Code, ErrInternal.Status, ErrInternal.Message)
}

// Clone returns a copy of the error allowing for message overrides.
func Clone(err *Error, message string) *Error {
	if err == nil {
		return nil
	}
	clone := *err
	if message != "" {
		clone.Message = message
	}
	return &clone
}
