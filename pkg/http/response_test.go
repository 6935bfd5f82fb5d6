package http

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	apperrors "salonbook/pkg/errors"
)

func TestWriteListLegacyShape(t *testing.T) {
	w := httptest.NewRecorder()
	data := []string{"a", "b"}

	// No explicit page parameters: older clients expect a bare array.
	if err := WriteList(w, data, PageRequest{Page: 1, Limit: DefaultPageSize}, 2); err != nil {
		t.Fatalf("WriteList failed: %v", err)
	}

	var bare []string
	if err := json.Unmarshal(w.Body.Bytes(), &bare); err != nil {
		t.Fatalf("expected bare array, got %q: %v", w.Body.String(), err)
	}
	if len(bare) != 2 {
		t.Errorf("bare array length = %d, want 2", len(bare))
	}
}

func TestWriteListPaginatedShape(t *testing.T) {
	w := httptest.NewRecorder()
	data := []string{"a", "b"}

	if err := WriteList(w, data, PageRequest{Page: 1, Limit: 2, Explicit: true}, 5); err != nil {
		t.Fatalf("WriteList failed: %v", err)
	}

	var body struct {
		Success    bool       `json:"success"`
		Data       []string   `json:"data"`
		Pagination Pagination `json:"pagination"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode envelope: %v", err)
	}
	if !body.Success {
		t.Error("success = false, want true")
	}
	if body.Pagination.Total != 5 {
		t.Errorf("total = %d, want 5", body.Pagination.Total)
	}
	if body.Pagination.TotalPages != 3 {
		t.Errorf("totalPages = %d, want 3", body.Pagination.TotalPages)
	}
}

func TestWriteErrorMapsStatus(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", apperrors.NotFound("Appointment"), 404},
		{"invalid input", apperrors.InvalidInput("bad date"), 400},
		{"conflict", apperrors.Conflict("slot taken"), 409},
		{"internal", apperrors.Internal("boom", nil), 500},
		{"plain error", json.Unmarshal([]byte("{"), &struct{}{}), 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			if err := WriteError(w, tt.err); err != nil {
				t.Fatalf("WriteError failed: %v", err)
			}
			if w.Code != tt.status {
				t.Errorf("status = %d, want %d", w.Code, tt.status)
			}
			var body ErrorBody
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("failed to decode error body: %v", err)
			}
			if body.Success {
				t.Error("success = true on error response")
			}
		})
	}
}
