package handler

import (
	"encoding/json"
	"net/http"

	"salonbook/internal/appointments/service"
	timeslotservice "salonbook/internal/timeslots/service"
	apperrors "salonbook/pkg/errors"
	httputil "salonbook/pkg/http"
	"salonbook/pkg/logger"
	"salonbook/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type AppointmentHandler struct {
	scheduler service.SchedulerService
	generator timeslotservice.HorizonGenerator
	log       *logger.Logger
}

func NewAppointmentHandler(
	scheduler service.SchedulerService,
	generator timeslotservice.HorizonGenerator,
	log *logger.Logger,
) *AppointmentHandler {
	return &AppointmentHandler{
		scheduler: scheduler,
		generator: generator,
		log:       log,
	}
}

// bookingResponse is the create-appointment envelope. BookingGroupID sits
// beside data so group clients can correlate without unpacking the array.
type bookingResponse struct {
	Success        bool                 `json:"success"`
	Message        string               `json:"message"`
	Data           []*model.Appointment `json:"data"`
	BookingGroupID string               `json:"bookingGroupId"`
}

func (h *AppointmentHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if writeErr := httputil.WriteError(w, apperrors.InvalidInput("Invalid request body")); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "error", writeErr)
		}
		return
	}

	result, err := h.scheduler.CreateBooking(r.Context(), &req)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "error", writeErr)
		}
		return
	}

	body := bookingResponse{
		Success:        true,
		Message:        "Appointments created successfully",
		Data:           result.Appointments,
		BookingGroupID: result.BookingGroupID,
	}
	if err := httputil.WriteJSON(w, http.StatusCreated, body); err != nil {
		h.log.Error("failed to write created response", "handler", "Create", "error", err)
	}
}

func (h *AppointmentHandler) ListByContact(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	page, err := httputil.ParsePageRequest(r)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "ListByContact", "error", writeErr)
		}
		return
	}

	query := r.URL.Query()
	appts, total, err := h.scheduler.ListByContact(r.Context(), query.Get("email"), query.Get("phone"), page)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "ListByContact", "error", writeErr)
		}
		return
	}

	if appts == nil {
		appts = []*model.Appointment{}
	}
	if err := httputil.WriteList(w, appts, page, total); err != nil {
		h.log.Error("failed to write list response", "handler", "ListByContact", "error", err)
	}
}

func (h *AppointmentHandler) ListBySalon(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	page, err := httputil.ParsePageRequest(r)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "ListBySalon", "error", writeErr)
		}
		return
	}

	query := r.URL.Query()
	professional := model.ParseProfessionalFilter(query.Get("professionalId"))

	appts, total, err := h.scheduler.ListBySalon(r.Context(), ps.ByName("id"), query.Get("date"), professional, page)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "ListBySalon", "error", writeErr)
		}
		return
	}

	if appts == nil {
		appts = []*model.Appointment{}
	}
	if err := httputil.WriteList(w, appts, page, total); err != nil {
		h.log.Error("failed to write list response", "handler", "ListBySalon", "error", err)
	}
}

func (h *AppointmentHandler) UpdateStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var req model.StatusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if writeErr := httputil.WriteError(w, apperrors.InvalidInput("Invalid request body")); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "UpdateStatus", "error", writeErr)
		}
		return
	}

	appt, err := h.scheduler.UpdateStatus(r.Context(), ps.ByName("id"), req.Status)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "UpdateStatus", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, appt); err != nil {
		h.log.Error("failed to write success response", "handler", "UpdateStatus", "error", err)
	}
}

func (h *AppointmentHandler) Reschedule(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var req model.RescheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if writeErr := httputil.WriteError(w, apperrors.InvalidInput("Invalid request body")); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Reschedule", "error", writeErr)
		}
		return
	}

	appt, err := h.scheduler.Reschedule(r.Context(), ps.ByName("id"), &req)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Reschedule", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, appt); err != nil {
		h.log.Error("failed to write success response", "handler", "Reschedule", "error", err)
	}
}

func (h *AppointmentHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := h.scheduler.CancelAndDelete(r.Context(), ps.ByName("id")); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Delete", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, map[string]string{"message": "Appointment deleted successfully"}); err != nil {
		h.log.Error("failed to write success response", "handler", "Delete", "error", err)
	}
}

// GenerateSlots triggers horizon generation. This is the external daily
// trigger; generation never runs at process start.
func (h *AppointmentHandler) GenerateSlots(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	body := struct {
		Days int `json:"days"`
	}{}
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			if writeErr := httputil.WriteError(w, apperrors.InvalidInput("Invalid request body")); writeErr != nil {
				h.log.Error("failed to write error response", "handler", "GenerateSlots", "error", writeErr)
			}
			return
		}
	}

	report, err := h.generator.GenerateHorizon(r.Context(), body.Days)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GenerateSlots", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, report); err != nil {
		h.log.Error("failed to write success response", "handler", "GenerateSlots", "error", err)
	}
}

func (h *AppointmentHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/appointments", h.Create)
	router.GET("/api/appointments", h.ListByContact)
	router.GET("/api/appointments/salon/:id", h.ListBySalon)
	router.PATCH("/api/appointments/:id/status", h.UpdateStatus)
	router.PATCH("/api/appointments/:id/reschedule", h.Reschedule)
	router.DELETE("/api/appointments/:id", h.Delete)
	router.POST("/api/appointments/generate-slots", h.GenerateSlots)
}
