package todo

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestTranslate(t *testing.T) {
	tests := []struct {
		name           string
		err            AppError
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "database error default message",
			err:            &DatabaseError{Cause: "pool timed out"},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   DefaultMessage,
		},
		{
			name:           "database error custom message",
			err:            &DatabaseError{Message: "Error creating todo list"},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "Error creating todo list",
		},
		{
			name:           "not found default message",
			err:            &NotFoundError{},
			expectedStatus: http.StatusNotFound,
			expectedBody:   NotFoundMessage,
		},
		{
			name:           "not found custom message",
			err:            &NotFoundError{Message: "list 7 not found"},
			expectedStatus: http.StatusNotFound,
			expectedBody:   "list 7 not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := Translate(tt.err)
			if status != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, status)
			}
			if body.Error != tt.expectedBody {
				t.Errorf("expected body %q, got %q", tt.expectedBody, body.Error)
			}
		})
	}
}

func TestTranslate_CauseNeverExposed(t *testing.T) {
	_, body := Translate(&DatabaseError{Cause: "password authentication failed"})

	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if string(data) != `{"error":"An unexpected error has occurred"}` {
		t.Errorf("unexpected body: %s", data)
	}
}

func TestAsAppError(t *testing.T) {
	notFound := &NotFoundError{Message: "gone"}
	wrapped := fmt.Errorf("handler: %w", notFound)

	if got := AsAppError(wrapped); got != notFound {
		t.Errorf("expected wrapped NotFoundError to be unwrapped, got %#v", got)
	}

	got := AsAppError(errors.New("connection reset"))
	dbErr, ok := got.(*DatabaseError)
	if !ok {
		t.Fatalf("expected *DatabaseError, got %T", got)
	}
	if dbErr.Cause != "connection reset" {
		t.Errorf("expected cause 'connection reset', got %q", dbErr.Cause)
	}
}

func TestErrorStrings(t *testing.T) {
	tests := []struct {
		err      error
		expected string
	}{
		{&DatabaseError{}, "database error"},
		{&DatabaseError{Message: "m"}, "database error: m"},
		{&DatabaseError{Cause: "c"}, "database error: c"},
		{&DatabaseError{Message: "m", Cause: "c"}, "database error: m: c"},
		{&NotFoundError{}, "not found"},
	}

	for _, tt := range tests {
		if got := tt.err.Error(); got != tt.expected {
			t.Errorf("expected %q, got %q", tt.expected, got)
		}
	}
}

func TestNewDatabaseError_NilCause(t *testing.T) {
	if e := NewDatabaseError(nil); e.Cause != "" {
		t.Errorf("expected empty cause, got %q", e.Cause)
	}
}
