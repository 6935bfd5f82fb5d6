package errors

import (
	"errors"
	"net/http"
	"testing"
)

func TestConstructorsCarryStatus(t *testing.T) {
	tests := []struct {
		name   string
		err    *AppError
		code   string
		status int
	}{
		{"not found", NotFound("Salon"), CodeNotFound, http.StatusNotFound},
		{"not found with id", NotFoundWithID("Salon", "abc"), CodeNotFound, http.StatusNotFound},
		{"invalid input", InvalidInput("bad"), CodeInvalidInput, http.StatusBadRequest},
		{"validation", Validation("bad", nil), CodeValidation, http.StatusBadRequest},
		{"conflict", Conflict("taken"), CodeConflict, http.StatusConflict},
		{"internal", Internal("boom", nil), CodeInternal, http.StatusInternalServerError},
		{"timeout", Timeout("slow"), CodeTimeout, http.StatusGatewayTimeout},
		{"unavailable", Unavailable("mongo"), CodeUnavailable, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Code != tt.code {
				t.Errorf("Code = %s, want %s", tt.err.Code, tt.code)
			}
			if tt.err.StatusCode() != tt.status {
				t.Errorf("StatusCode = %d, want %d", tt.err.StatusCode(), tt.status)
			}
		})
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := Internal("store failed", cause)
	if !errors.Is(err, cause) {
		t.Error("Internal must wrap its cause")
	}
}

func TestAsAppError(t *testing.T) {
	appErr := Conflict("taken")
	if got := AsAppError(appErr); got != appErr {
		t.Error("AsAppError must pass AppError through unchanged")
	}

	plain := errors.New("disk on fire")
	wrapped := AsAppError(plain)
	if wrapped.Code != CodeInternal {
		t.Errorf("Code = %s, want %s", wrapped.Code, CodeInternal)
	}
	if wrapped.Message == plain.Error() {
		t.Error("internal cause must not leak into the client message")
	}
}

func TestNotFoundWithIDDetails(t *testing.T) {
	err := NotFoundWithID("Appointment", "64f0")
	if err.Details["id"] != "64f0" {
		t.Errorf("Details[id] = %v, want 64f0", err.Details["id"])
	}
}
