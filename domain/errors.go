package domain

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrValidation   = errors.New("validation failed")
	ErrBadFilter    = errors.New("invalid filter")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("resource not found")
	ErrConflict     = errors.New("resource conflict")
	ErrPersistence  = errors.New("persistence failure")
)

// Error is the typed failure returned by services. Kind is one of the
// sentinel errors above and decides the HTTP status.
type Error struct {
	Status  int
	Kind    error
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Kind != nil {
		return e.Kind.Error()
	}
	return fmt.Sprintf("error (%d)", e.Status)
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	return e.Kind != nil && target == e.Kind
}

func NewValidationFailure(err error) *Error {
	msg := ErrValidation.Error()
	if err != nil {
		msg = err.Error()
	}
	return &Error{Status: http.StatusBadRequest, Kind: ErrValidation, Message: msg, Err: err}
}

func NewBadFilter(field, value string) *Error {
	return &Error{
		Status:  http.StatusBadRequest,
		Kind:    ErrBadFilter,
		Message: fmt.Sprintf("Invalid %s: %s", field, value),
	}
}

func NewNotFound(resource string, id int) *Error {
	return &Error{
		Status:  http.StatusNotFound,
		Kind:    ErrNotFound,
		Message: fmt.Sprintf("%s with ID %d not found", resource, id),
	}
}

// NewNotFoundNamed is NewNotFound for resources addressed by a natural key.
func NewNotFoundNamed(resource, field, value string) *Error {
	return &Error{
		Status:  http.StatusNotFound,
		Kind:    ErrNotFound,
		Message: fmt.Sprintf("%s with %s %s not found", resource, field, value),
	}
}

func NewUnauthorized(message string) *Error {
	if message == "" {
		message = ErrUnauthorized.Error()
	}
	return &Error{Status: http.StatusUnauthorized, Kind: ErrUnauthorized, Message: message}
}

func NewConflict(message string) *Error {
	return &Error{Status: http.StatusConflict, Kind: ErrConflict, Message: message}
}

func NewPersistenceFailure(operation string, cause error) *Error {
	return &Error{
		Status:  http.StatusInternalServerError,
		Kind:    ErrPersistence,
		Message: "Failed to " + operation,
		Err:     cause,
	}
}

// WrapPersistence returns err unchanged when it already is a typed *Error
// and wraps anything else as a persistence failure for operation.
func WrapPersistence(operation string, err error) error {
	if err == nil {
		return nil
	}
	var typed *Error
	if errors.As(err, &typed) {
		return err
	}
	return NewPersistenceFailure(operation, err)
}

// StatusCode reports the HTTP status carried by err, 500 for untyped errors.
func StatusCode(err error) int {
	var typed *Error
	if errors.As(err, &typed) && typed.Status != 0 {
		return typed.Status
	}
	return http.StatusInternalServerError
}
