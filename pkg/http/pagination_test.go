package http

import (
	"net/http/httptest"
	"testing"

	apperrors "salonbook/pkg/errors"
)

func TestParsePageRequest(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		page     int
		limit    int
		explicit bool
		wantErr  bool
	}{
		{"no params", "/api/salons", 1, DefaultPageSize, false, false},
		{"page only", "/api/salons?page=3", 3, DefaultPageSize, true, false},
		{"limit only", "/api/salons?limit=10", 1, 10, true, false},
		{"both", "/api/salons?page=2&limit=25", 2, 25, true, false},
		{"limit above ceiling clamps down", "/api/salons?limit=500", 1, MaxPageSize, true, false},
		{"zero page clamps to default", "/api/salons?page=0", 1, DefaultPageSize, true, false},
		{"negative page clamps to default", "/api/salons?page=-4", 1, DefaultPageSize, true, false},
		{"zero limit clamps to default", "/api/salons?limit=0", 1, DefaultPageSize, true, false},
		{"negative limit clamps to default", "/api/salons?limit=-1", 1, DefaultPageSize, true, false},
		{"non-numeric page", "/api/salons?page=abc", 0, 0, false, true},
		{"non-numeric limit", "/api/salons?limit=xyz", 0, 0, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.url, nil)
			req, err := ParsePageRequest(r)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !apperrors.IsAppError(err) {
					t.Errorf("expected AppError, got %T", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if req.Page != tt.page {
				t.Errorf("Page = %d, want %d", req.Page, tt.page)
			}
			if req.Limit != tt.limit {
				t.Errorf("Limit = %d, want %d", req.Limit, tt.limit)
			}
			if req.Explicit != tt.explicit {
				t.Errorf("Explicit = %v, want %v", req.Explicit, tt.explicit)
			}
		})
	}
}

func TestPageRequestOffset(t *testing.T) {
	tests := []struct {
		page   int
		limit  int
		offset int64
	}{
		{1, 20, 0},
		{2, 20, 20},
		{3, 50, 100},
	}
	for _, tt := range tests {
		p := PageRequest{Page: tt.page, Limit: tt.limit}
		if got := p.Offset(); got != tt.offset {
			t.Errorf("Offset(page=%d, limit=%d) = %d, want %d", tt.page, tt.limit, got, tt.offset)
		}
	}
}

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		total      int64
		totalPages int64
		hasNext    bool
		hasPrev    bool
	}{
		{"empty set", 1, 20, 0, 0, false, false},
		{"exact fill", 1, 20, 40, 2, true, false},
		{"partial last page", 1, 20, 41, 3, true, false},
		{"last page", 3, 20, 41, 3, false, true},
		{"middle page", 2, 20, 41, 3, true, true},
		{"single page", 1, 50, 7, 1, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.page, tt.limit, tt.total)
			if p.TotalPages != tt.totalPages {
				t.Errorf("TotalPages = %d, want %d", p.TotalPages, tt.totalPages)
			}
			if p.HasNext != tt.hasNext {
				t.Errorf("HasNext = %v, want %v", p.HasNext, tt.hasNext)
			}
			if p.HasPrev != tt.hasPrev {
				t.Errorf("HasPrev = %v, want %v", p.HasPrev, tt.hasPrev)
			}
		})
	}
}
