package failure_test

import (
	"errors"
	"net/http"
	"testing"

	"condovia/shared/failure"
)

func TestFailureConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{
			name:     "bad request from string",
			err:      failure.BadRequestFromString("invalid input"),
			wantCode: http.StatusBadRequest,
			wantMsg:  "invalid input",
		},
		{
			name:     "bad request from error",
			err:      failure.BadRequest(errors.New("broken field")),
			wantCode: http.StatusBadRequest,
			wantMsg:  "broken field",
		},
		{
			name:     "unauthorized",
			err:      failure.Unauthorized("missing requester identity"),
			wantCode: http.StatusUnauthorized,
			wantMsg:  "missing requester identity",
		},
		{
			name:     "not found",
			err:      failure.NotFound("user not found"),
			wantCode: http.StatusNotFound,
			wantMsg:  "user not found",
		},
		{
			name:     "conflict",
			err:      failure.Conflict("slot already booked"),
			wantCode: http.StatusConflict,
			wantMsg:  "slot already booked",
		},
		{
			name:     "forbidden",
			err:      failure.Forbidden("managers only"),
			wantCode: http.StatusForbidden,
			wantMsg:  "managers only",
		},
		{
			name:     "internal error",
			err:      failure.InternalError(errors.New("boom")),
			wantCode: http.StatusInternalServerError,
			wantMsg:  "boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := failure.GetCode(tt.err); got != tt.wantCode {
				t.Errorf("expected code %d, got %d", tt.wantCode, got)
			}
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("expected message %q, got %q", tt.wantMsg, got)
			}
			if !failure.IsCode(tt.err, tt.wantCode) {
				t.Errorf("expected IsCode to match %d", tt.wantCode)
			}
		})
	}
}

func TestNilErrorsProduceNil(t *testing.T) {
	if failure.BadRequest(nil) != nil {
		t.Error("expected BadRequest(nil) to be nil")
	}
	if failure.InternalError(nil) != nil {
		t.Error("expected InternalError(nil) to be nil")
	}
}

func TestGetCodeDefaultsToInternalError(t *testing.T) {
	if got := failure.GetCode(errors.New("plain error")); got != http.StatusInternalServerError {
		t.Errorf("expected %d for non-Failure error, got %d", http.StatusInternalServerError, got)
	}
}

func TestIsCodeOnPlainError(t *testing.T) {
	if failure.IsCode(errors.New("plain error"), http.StatusInternalServerError) {
		t.Error("expected IsCode to be false for non-Failure errors")
	}
}

func TestWrappedFailureKeepsCode(t *testing.T) {
	wrapped := failure.Conflict("slot already booked")
	outer := errors.Join(errors.New("outer context"), wrapped)

	if got := failure.GetCode(outer); got != http.StatusConflict {
		t.Errorf("expected wrapped failure to keep code %d, got %d", http.StatusConflict, got)
	}
}
