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

type SalonService interface {
	Register(ctx context.Context, salon *model.Salon) error
	GetByID(ctx context.Context, id string) (*model.Salon, error)
	ListApproved(ctx context.Context, limit int, offset int64) ([]*model.Salon, int64, error)
	SetApprovalState(ctx context.Context, id string, state model.ApprovalState) (*model.Salon, error)
}

type salonService struct {
	repo      repository.SalonRepository
	validator *validator.SalonValidator
	cfg       *config.Config
}

func NewSalonService(
	repo repository.SalonRepository,
	validator *validator.SalonValidator,
	cfg *config.Config,
) SalonService {
	return &salonService{
		repo:      repo,
		validator: validator,
		cfg:       cfg,
	}
}

// Register creates a salon in the pending approval state. Whatever state
// the caller sent is discarded; approval only moves through
// SetApprovalState.
func (s *salonService) Register(ctx context.Context, salon *model.Salon) error {
	salon.ID = ""
	salon.Name = sanitizer.NormalizeName(salon.Name)
	salon.District = sanitizer.TrimAndNormalize(salon.District)
	salon.ApprovalState = model.ApprovalPending

	if err := s.validator.ValidateSalon(salon); err != nil {
		s.cfg.Log.Warn("Salon validation failed", "error", err)
		return apperrors.Validation("Salon validation failed", map[string]any{
			"error": err.Error(),
		})
	}

	if err := s.repo.Create(ctx, salon); err != nil {
		s.cfg.Log.Error("Failed to create salon", "name", salon.Name, "error", err)
		return apperrors.Internal("Failed to register salon", err)
	}

	s.cfg.Log.Info("Salon registered", "id", salon.ID, "name", salon.Name, "district", salon.District)
	return nil
}

func (s *salonService) GetByID(ctx context.Context, id string) (*model.Salon, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Salon ID cannot be empty")
	}

	salon, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, salonerrors.ErrSalonNotFound) {
			return nil, apperrors.NotFoundWithID("Salon", id)
		}
		if errors.Is(err, salonerrors.ErrInvalidID) {
			return nil, apperrors.InvalidInput("Invalid salon ID format")
		}
		s.cfg.Log.Error("Failed to get salon", "id", id, "error", err)
		return nil, apperrors.Internal("Failed to retrieve salon", err)
	}
	return salon, nil
}

func (s *salonService) ListApproved(ctx context.Context, limit int, offset int64) ([]*model.Salon, int64, error) {
	salons, err := s.repo.FindApproved(ctx, limit, offset)
	if err != nil {
		s.cfg.Log.Error("Failed to list salons", "error", err)
		return nil, 0, apperrors.Internal("Failed to retrieve salons", err)
	}

	total, err := s.repo.CountApproved(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to count salons", "error", err)
		return nil, 0, apperrors.Internal("Failed to retrieve salons", err)
	}
	return salons, total, nil
}

func (s *salonService) SetApprovalState(ctx context.Context, id string, state model.ApprovalState) (*model.Salon, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Salon ID cannot be empty")
	}
	if !state.Valid() {
		return nil, apperrors.InvalidInput("Approval state must be one of: pending, approved, rejected")
	}

	salon, err := s.repo.UpdateApprovalState(ctx, id, state)
	if err != nil {
		if errors.Is(err, salonerrors.ErrSalonNotFound) {
			return nil, apperrors.NotFoundWithID("Salon", id)
		}
		if errors.Is(err, salonerrors.ErrInvalidID) {
			return nil, apperrors.InvalidInput("Invalid salon ID format")
		}
		s.cfg.Log.Error("Failed to update salon approval state", "id", id, "error", err)
		return nil, apperrors.Internal("Failed to update salon", err)
	}

	s.cfg.Log.Info("Salon approval state updated", "id", id, "state", state)
	return salon, nil
}
