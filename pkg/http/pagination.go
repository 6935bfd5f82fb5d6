package http

import (
	"net/http"
	"strconv"

	apperrors "salonbook/pkg/errors"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 50
)

type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"totalPages"`
	HasNext    bool  `json:"hasNext"`
	HasPrev    bool  `json:"hasPrev"`
}

func NewPagination(page, limit int, total int64) Pagination {
	totalPages := total / int64(limit)
	if total%int64(limit) != 0 {
		totalPages++
	}
	return Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    int64(page) < totalPages,
		HasPrev:    page > 1,
	}
}

// PageRequest is a clamped page/limit pair. Explicit records whether the
// caller passed either parameter; without it the legacy bare-array response
// shape applies.
type PageRequest struct {
	Page     int
	Limit    int
	Explicit bool
}

func (p PageRequest) Offset() int64 {
	return int64(p.Page-1) * int64(p.Limit)
}

// ParsePageRequest reads page/limit from the query string. Non-numeric
// values are invalid input; non-positive values clamp up to defaults and
// limits above the ceiling clamp down.
func ParsePageRequest(r *http.Request) (PageRequest, error) {
	query := r.URL.Query()
	pageStr, limitStr := query.Get("page"), query.Get("limit")

	req := PageRequest{
		Page:     1,
		Limit:    DefaultPageSize,
		Explicit: pageStr != "" || limitStr != "",
	}

	if pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil {
			return PageRequest{}, apperrors.InvalidInput("invalid page parameter: " + pageStr)
		}
		if page > 0 {
			req.Page = page
		}
	}

	if limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			return PageRequest{}, apperrors.InvalidInput("invalid limit parameter: " + limitStr)
		}
		if limit > 0 {
			req.Limit = limit
		}
		if req.Limit > MaxPageSize {
			req.Limit = MaxPageSize
		}
	}

	return req, nil
}
