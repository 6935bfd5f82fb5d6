package service

import (
	"context"
	"errors"

	salonerrors "salonbook/internal/salons/errors"
	"salonbook/internal/salons/repository"
	"salonbook/internal/salons/validator"
	"salonbook/pkg/config"
	apperrors "salonbook/pkg/errors"
	"salonbook/pkg/model"
	"salonbook/pkg/sanitizer"
)

type ProfessionalService interface {
	Register(ctx context.Context, professional *model.Professional) error
	GetByID(ctx context.Context, id string) (*model.Professional, error)
	ListBySalon(ctx context.Context, salonID string) ([]*model.Professional, error)
	SetAvailability(ctx context.Context, id string, available bool) (*model.Professional, error)
}

type professionalService struct {
	repo      repository.ProfessionalRepository
	salons    repository.SalonRepository
	validator *validator.SalonValidator
	cfg       *config.Config
}

func NewProfessionalService(
	repo repository.ProfessionalRepository,
	salons repository.SalonRepository,
	validator *validator.SalonValidator,
	cfg *config.Config,
) ProfessionalService {
	return &professionalService{
		repo:      repo,
		salons:    salons,
		validator: validator,
		cfg:       cfg,
	}
}

// Register creates a professional under an existing salon. The salon must
// exist; a dangling salon reference would poison slot generation.
func (s *professionalService) Register(ctx context.Context, professional *model.Professional) error {
	professional.ID = ""
	professional.Name = sanitizer.NormalizeName(professional.Name)

	if err := s.validator.ValidateProfessional(professional); err != nil {
		s.cfg.Log.Warn("Professional validation failed", "error", err)
		return apperrors.Validation("Professional validation failed", map[string]any{
			"error": err.Error(),
		})
	}

	if _, err := s.salons.FindByID(ctx, professional.SalonID); err != nil {
		if errors.Is(err, salonerrors.ErrSalonNotFound) || errors.Is(err, salonerrors.ErrInvalidID) {
			return apperrors.NotFoundWithID("Salon", professional.SalonID)
		}
		s.cfg.Log.Error("Failed to verify salon for professional", "salon_id", professional.SalonID, "error", err)
		return apperrors.Internal("Failed to register professional", err)
	}

	if err := s.repo.Create(ctx, professional); err != nil {
		s.cfg.Log.Error("Failed to create professional",
			"salon_id", professional.SalonID,
			"name", professional.Name,
			"error", err,
		)
		return apperrors.Internal("Failed to register professional", err)
	}

	s.cfg.Log.Info("Professional registered",
		"id", professional.ID,
		"salon_id", professional.SalonID,
		"name", professional.Name,
	)
	return nil
}

func (s *professionalService) GetByID(ctx context.Context, id string) (*model.Professional, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Professional ID cannot be empty")
	}

	professional, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, salonerrors.ErrProfessionalNotFound) {
			return nil, apperrors.NotFoundWithID("Professional", id)
		}
		if errors.Is(err, salonerrors.ErrInvalidID) {
			return nil, apperrors.InvalidInput("Invalid professional ID format")
		}
		s.cfg.Log.Error("Failed to get professional", "id", id, "error", err)
		return nil, apperrors.Internal("Failed to retrieve professional", err)
	}
	return professional, nil
}

func (s *professionalService) ListBySalon(ctx context.Context, salonID string) ([]*model.Professional, error) {
	if salonID == "" {
		return nil, apperrors.InvalidInput("Salon ID cannot be empty")
	}

	professionals, err := s.repo.FindBySalon(ctx, salonID)
	if err != nil {
		s.cfg.Log.Error("Failed to list professionals", "salon_id", salonID, "error", err)
		return nil, apperrors.Internal("Failed to retrieve professionals", err)
	}
	return professionals, nil
}

func (s *professionalService) SetAvailability(ctx context.Context, id string, available bool) (*model.Professional, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Professional ID cannot be empty")
	}

	professional, err := s.repo.SetAvailability(ctx, id, available)
	if err != nil {
		if errors.Is(err, salonerrors.ErrProfessionalNotFound) {
			return nil, apperrors.NotFoundWithID("Professional", id)
		}
		if errors.Is(err, salonerrors.ErrInvalidID) {
			return nil, apperrors.InvalidInput("Invalid professional ID format")
		}
		s.cfg.Log.Error("Failed to update professional availability", "id", id, "error", err)
		return nil, apperrors.Internal("Failed to update professional", err)
	}

	s.cfg.Log.Info("Professional availability updated", "id", id, "available", available)
	return professional, nil
}
