package service

import (
	"context"
	"errors"
	"time"

	timesloterrors "salonbook/internal/timeslots/errors"
	"salonbook/internal/timeslots/repository"
	"salonbook/internal/timeslots/validator"
	"salonbook/pkg/config"
	apperrors "salonbook/pkg/errors"
	"salonbook/pkg/model"
)

type TimeSlotService interface {
	List(ctx context.Context, filter model.ProfessionalFilter, date string) ([]*model.TimeSlot, error)
	Insert(ctx context.Context, slot *model.TimeSlot) error
	SetBooked(ctx context.Context, id string, booked bool) (*model.TimeSlot, error)
}

type timeSlotService struct {
	repo      repository.TimeSlotRepository
	validator *validator.TimeSlotValidator
	cfg       *config.Config
}

func NewTimeSlotService(
	repo repository.TimeSlotRepository,
	validator *validator.TimeSlotValidator,
	cfg *config.Config,
) TimeSlotService {
	return &timeSlotService{
		repo:      repo,
		validator: validator,
		cfg:       cfg,
	}
}

// List returns the full set of slots for one date; the window is bounded
// per professional so no pagination is needed.
func (s *timeSlotService) List(ctx context.Context, filter model.ProfessionalFilter, date string) ([]*model.TimeSlot, error) {
	if date == "" {
		return nil, apperrors.InvalidInput("date is required")
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, apperrors.InvalidInput("date must be in YYYY-MM-DD format")
	}

	slots, err := s.repo.List(ctx, filter, date)
	if err != nil {
		s.cfg.Log.Error("Failed to list time slots", "date", date, "error", err)
		return nil, apperrors.Internal("Failed to retrieve time slots", err)
	}

	s.cfg.Log.Debug("Time slot query completed",
		"date", date,
		"all_professionals", filter.All(),
		"count", len(slots),
	)
	return slots, nil
}

func (s *timeSlotService) Insert(ctx context.Context, slot *model.TimeSlot) error {
	slot.ID = ""
	if err := s.validator.Validate(slot); err != nil {
		s.cfg.Log.Warn("Time slot validation failed", "error", err)
		return apperrors.Validation("Time slot validation failed", map[string]any{
			"error": err.Error(),
		})
	}

	if err := s.repo.Insert(ctx, slot); err != nil {
		if errors.Is(err, timesloterrors.ErrDuplicateSlot) {
			return apperrors.Conflict("A time slot already exists for this professional, date and start time")
		}
		s.cfg.Log.Error("Failed to insert time slot",
			"professional_id", slot.ProfessionalID,
			"date", slot.Date,
			"start_time", slot.StartTime,
			"error", err,
		)
		return apperrors.Internal("Failed to create time slot", err)
	}

	s.cfg.Log.Info("Time slot created",
		"id", slot.ID,
		"professional_id", slot.ProfessionalID,
		"date", slot.Date,
		"start_time", slot.StartTime,
	)
	return nil
}

func (s *timeSlotService) SetBooked(ctx context.Context, id string, booked bool) (*model.TimeSlot, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Time slot ID cannot be empty")
	}

	slot, err := s.repo.SetBooked(ctx, id, booked)
	if err != nil {
		if errors.Is(err, timesloterrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Time slot", id)
		}
		if errors.Is(err, timesloterrors.ErrInvalidID) {
			return nil, apperrors.InvalidInput("Invalid time slot ID format")
		}
		s.cfg.Log.Error("Failed to update time slot booked flag", "id", id, "error", err)
		return nil, apperrors.Internal("Failed to update time slot", err)
	}

	s.cfg.Log.Info("Time slot booked flag updated", "id", id, "is_booked", booked)
	return slot, nil
}
