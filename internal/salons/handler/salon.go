package handler

import (
	"encoding/json"
	"net/http"

	"salonbook/internal/salons/service"
	apperrors "salonbook/pkg/errors"
	httputil "salonbook/pkg/http"
	"salonbook/pkg/logger"
	"salonbook/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type SalonHandler struct {
	salons        service.SalonService
	professionals service.ProfessionalService
	log           *logger.Logger
}

func NewSalonHandler(
	salons service.SalonService,
	professionals service.ProfessionalService,
	log *logger.Logger,
) *SalonHandler {
	return &SalonHandler{
		salons:        salons,
		professionals: professionals,
		log:           log,
	}
}

func (h *SalonHandler) Register(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var salon model.Salon
	if err := json.NewDecoder(r.Body).Decode(&salon); err != nil {
		if writeErr := httputil.WriteError(w, apperrors.InvalidInput("Invalid request body")); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Register", "error", writeErr)
		}
		return
	}

	if err := h.salons.Register(r.Context(), &salon); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Register", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteCreated(w, salon); err != nil {
		h.log.Error("failed to write created response", "handler", "Register", "error", err)
	}
}

func (h *SalonHandler) ListApproved(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	page, err := httputil.ParsePageRequest(r)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "ListApproved", "error", writeErr)
		}
		return
	}

	salons, total, err := h.salons.ListApproved(r.Context(), page.Limit, page.Offset())
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "ListApproved", "error", writeErr)
		}
		return
	}

	if salons == nil {
		salons = []*model.Salon{}
	}
	if err := httputil.WriteList(w, salons, page, total); err != nil {
		h.log.Error("failed to write list response", "handler", "ListApproved", "error", err)
	}
}

func (h *SalonHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	salon, err := h.salons.GetByID(r.Context(), ps.ByName("id"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetByID", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, salon); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByID", "error", err)
	}
}

func (h *SalonHandler) SetApproval(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	body := struct {
		ApprovalState model.ApprovalState `json:"approvalState"`
	}{}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		if writeErr := httputil.WriteError(w, apperrors.InvalidInput("Invalid request body")); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "SetApproval", "error", writeErr)
		}
		return
	}

	salon, err := h.salons.SetApprovalState(r.Context(), ps.ByName("id"), body.ApprovalState)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "SetApproval", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, salon); err != nil {
		h.log.Error("failed to write success response", "handler", "SetApproval", "error", err)
	}
}

func (h *SalonHandler) RegisterProfessional(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var professional model.Professional
	if err := json.NewDecoder(r.Body).Decode(&professional); err != nil {
		if writeErr := httputil.WriteError(w, apperrors.InvalidInput("Invalid request body")); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "RegisterProfessional", "error", writeErr)
		}
		return
	}

	if err := h.professionals.Register(r.Context(), &professional); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "RegisterProfessional", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteCreated(w, professional); err != nil {
		h.log.Error("failed to write created response", "handler", "RegisterProfessional", "error", err)
	}
}

func (h *SalonHandler) ListProfessionals(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	professionals, err := h.professionals.ListBySalon(r.Context(), ps.ByName("id"))
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "ListProfessionals", "error", writeErr)
		}
		return
	}

	if professionals == nil {
		professionals = []*model.Professional{}
	}
	if err := httputil.WriteSuccess(w, professionals); err != nil {
		h.log.Error("failed to write success response", "handler", "ListProfessionals", "error", err)
	}
}

func (h *SalonHandler) SetAvailability(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	body := struct {
		Available *bool `json:"available"`
	}{}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		if writeErr := httputil.WriteError(w, apperrors.InvalidInput("Invalid request body")); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "SetAvailability", "error", writeErr)
		}
		return
	}
	if body.Available == nil {
		if writeErr := httputil.WriteError(w, apperrors.InvalidInput("available is required")); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "SetAvailability", "error", writeErr)
		}
		return
	}

	professional, err := h.professionals.SetAvailability(r.Context(), ps.ByName("id"), *body.Available)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "SetAvailability", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, professional); err != nil {
		h.log.Error("failed to write success response", "handler", "SetAvailability", "error", err)
	}
}

func (h *SalonHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/salons", h.Register)
	router.GET("/api/salons", h.ListApproved)
	router.GET("/api/salons/:id", h.GetByID)
	router.PATCH("/api/salons/:id/approval", h.SetApproval)
	router.GET("/api/salons/:id/professionals", h.ListProfessionals)
	router.POST("/api/professionals", h.RegisterProfessional)
	router.PATCH("/api/professionals/:id/availability", h.SetAvailability)
}
