package http

import (
	"encoding/json"
	"net/http"

	apperrors "salonbook/pkg/errors"
)

type ErrorBody struct {
	Success bool           `json:"success"`
	Error   string         `json:"error"`
	Details map[string]any `json:"details,omitempty"`
}

type DataBody struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data"`
}

type PaginatedBody struct {
	Success    bool       `json:"success"`
	Data       any        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

func WriteJSON(w http.ResponseWriter, statusCode int, body any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(body)
}

// WriteError maps an AppError onto its HTTP status. Anything else is an
// opaque 500; internal causes never reach the client.
func WriteError(w http.ResponseWriter, err error) error {
	appErr := apperrors.AsAppError(err)
	return WriteJSON(w, appErr.StatusCode(), ErrorBody{
		Success: false,
		Error:   appErr.Message,
		Details: appErr.Details,
	})
}

func WriteData(w http.ResponseWriter, statusCode int, data any) error {
	return WriteJSON(w, statusCode, DataBody{Success: true, Data: data})
}

func WriteSuccess(w http.ResponseWriter, data any) error {
	return WriteData(w, http.StatusOK, data)
}

func WriteCreated(w http.ResponseWriter, data any) error {
	return WriteData(w, http.StatusCreated, data)
}

func WritePaginated(w http.ResponseWriter, data any, p Pagination) error {
	return WriteJSON(w, http.StatusOK, PaginatedBody{
		Success:    true,
		Data:       data,
		Pagination: p,
	})
}

// WriteList renders a paginated envelope, or — when the caller supplied
// neither page nor limit — the legacy bare-array shape, preserved for older
// clients.
func WriteList(w http.ResponseWriter, data any, page PageRequest, total int64) error {
	if !page.Explicit {
		return WriteJSON(w, http.StatusOK, data)
	}
	return WritePaginated(w, data, NewPagination(page.Page, page.Limit, total))
}
