package handler

import (
	"encoding/json"
	"net/http"

	"salonbook/internal/timeslots/service"
	apperrors "salonbook/pkg/errors"
	httputil "salonbook/pkg/http"
	"salonbook/pkg/logger"
	"salonbook/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type TimeSlotHandler struct {
	service service.TimeSlotService
	log     *logger.Logger
}

func NewTimeSlotHandler(service service.TimeSlotService, log *logger.Logger) *TimeSlotHandler {
	return &TimeSlotHandler{
		service: service,
		log:     log,
	}
}

// List handles GET /api/timeslots?professionalId=&date=. The professional
// may be the literal "any".
func (h *TimeSlotHandler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query()
	filter := model.ParseProfessionalFilter(query.Get("professionalId"))
	date := query.Get("date")

	slots, err := h.service.List(r.Context(), filter, date)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "List", "error", writeErr)
		}
		return
	}

	if slots == nil {
		slots = []*model.TimeSlot{}
	}
	if err := httputil.WriteSuccess(w, slots); err != nil {
		h.log.Error("failed to write success response", "handler", "List", "error", err)
	}
}

func (h *TimeSlotHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var slot model.TimeSlot
	if err := json.NewDecoder(r.Body).Decode(&slot); err != nil {
		if writeErr := httputil.WriteError(w, apperrors.InvalidInput("Invalid request body")); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "error", writeErr)
		}
		return
	}

	if err := h.service.Insert(r.Context(), &slot); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteCreated(w, slot); err != nil {
		h.log.Error("failed to write created response", "handler", "Create", "error", err)
	}
}

// Book handles PATCH /api/timeslots/:id/book, flipping the booked flag.
// Absent a body, the slot is marked booked.
func (h *TimeSlotHandler) Book(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	body := struct {
		IsBooked *bool `json:"isBooked"`
	}{}
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			if writeErr := httputil.WriteError(w, apperrors.InvalidInput("Invalid request body")); writeErr != nil {
				h.log.Error("failed to write error response", "handler", "Book", "error", writeErr)
			}
			return
		}
	}

	booked := true
	if body.IsBooked != nil {
		booked = *body.IsBooked
	}

	slot, err := h.service.SetBooked(r.Context(), id, booked)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Book", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, slot); err != nil {
		h.log.Error("failed to write success response", "handler", "Book", "error", err)
	}
}

func (h *TimeSlotHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/api/timeslots", h.List)
	router.POST("/api/timeslots", h.Create)
	router.PATCH("/api/timeslots/:id/book", h.Book)
}
