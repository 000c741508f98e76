// Package todo contains the pure error taxonomy of the todo service and its
// translation to HTTP responses.
package todo

import (
	"errors"
	"fmt"
	"net/http"
)

// Default client-facing messages.
const (
	DefaultMessage  = "An unexpected error has occurred"
	NotFoundMessage = "The requested item was not found"
)

// AppError is the error returned at the service boundary.
// It is exactly one of DatabaseError or NotFoundError.
type AppError interface {
	error
	appError()
}

// DatabaseError covers pool exhaustion, connection failures and unexpected
// empty results. Message and Cause are optional; Cause is never sent to clients.
type DatabaseError struct {
	Message string
	Cause   string
}

func (e *DatabaseError) Error() string {
	return describe("database error", e.Message, e.Cause)
}

func (*DatabaseError) appError() {}

// NotFoundError is reserved for missing resources. No handler raises it today.
type NotFoundError struct {
	Message string
	Cause   string
}

func (e *NotFoundError) Error() string {
	return describe("not found", e.Message, e.Cause)
}

func (*NotFoundError) appError() {}

func describe(kind, message, cause string) string {
	switch {
	case message != "" && cause != "":
		return fmt.Sprintf("%s: %s: %s", kind, message, cause)
	case message != "":
		return fmt.Sprintf("%s: %s", kind, message)
	case cause != "":
		return fmt.Sprintf("%s: %s", kind, cause)
	default:
		return kind
	}
}

// NewDatabaseError wraps a driver failure. The cause text is kept for logging.
func NewDatabaseError(cause error) *DatabaseError {
	e := &DatabaseError{}
	if cause != nil {
		e.Cause = cause.Error()
	}
	return e
}

// ErrorResponse is the single-field body sent for every AppError.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Translate maps an AppError to its HTTP status and body.
func Translate(err AppError) (int, ErrorResponse) {
	switch e := err.(type) {
	case *DatabaseError:
		return http.StatusInternalServerError, ErrorResponse{Error: messageOr(e.Message, DefaultMessage)}
	case *NotFoundError:
		return http.StatusNotFound, ErrorResponse{Error: messageOr(e.Message, NotFoundMessage)}
	default:
		return http.StatusInternalServerError, ErrorResponse{Error: DefaultMessage}
	}
}

// AsAppError returns err as an AppError, treating anything else as a DatabaseError.
func AsAppError(err error) AppError {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return NewDatabaseError(err)
}

func messageOr(message, fallback string) string {
	if message != "" {
		return message
	}
	return fallback
}
