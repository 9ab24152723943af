// Package apperror defines the error taxonomy surfaced by the API. Services
// return these; handlers map them to status codes exactly once at the boundary.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

type Error struct {
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewValidation(message string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: message}
}

func NewNotFound(message string) *Error {
	return &Error{Status: http.StatusNotFound, Message: message}
}

func NewConflict(message string) *Error {
	return &Error{Status: http.StatusConflict, Message: message}
}

func NewUnauthorized(message string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: message}
}

func NewForbidden(message string) *Error {
	return &Error{Status: http.StatusForbidden, Message: message}
}

func NewInternal(message string, err error) *Error {
	return &Error{Status: http.StatusInternalServerError, Message: message, Err: err}
}

func IsNotFound(err error) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Status == http.StatusNotFound
}

func IsValidation(err error) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Status == http.StatusBadRequest
}
