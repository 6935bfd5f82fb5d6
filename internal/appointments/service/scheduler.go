package service

import (
	"context"
	"errors"

	appterrors "salonbook/internal/appointments/errors"
	"salonbook/internal/appointments/repository"
	"salonbook/internal/appointments/validator"
	"salonbook/pkg/config"
	"salonbook/pkg/duration"
	apperrors "salonbook/pkg/errors"
	"salonbook/pkg/events"
	httputil "salonbook/pkg/http"
	"salonbook/pkg/model"
	"salonbook/pkg/sanitizer"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

// SlotReserver flips booked flags over contiguous slot ranges and reports
// how many slots exist for a professional on a date. The slot store owns
// the implementation; the scheduler only needs these calls.
type SlotReserver interface {
	ReserveRange(ctx context.Context, professionalID, date, startTime, endTime string) (int64, error)
	ReleaseRange(ctx context.Context, professionalID, date, startTime, endTime string) (int64, error)
	CountByProfessionalAndDate(ctx context.Context, professionalID, date string) (int64, error)
}

// BookingResult is what a create-booking call hands back: the inserted
// appointments in request order plus the correlation identifier they share.
type BookingResult struct {
	Appointments   []*model.Appointment
	BookingGroupID string
}

type SchedulerService interface {
	CreateBooking(ctx context.Context, req *model.BookingRequest) (*BookingResult, error)
	GetByID(ctx context.Context, id string) (*model.Appointment, error)
	ListByContact(ctx context.Context, email, phone string, page httputil.PageRequest) ([]*model.Appointment, int64, error)
	ListBySalon(ctx context.Context, salonID, date string, professional model.ProfessionalFilter, page httputil.PageRequest) ([]*model.Appointment, int64, error)
	UpdateStatus(ctx context.Context, id string, status model.AppointmentStatus) (*model.Appointment, error)
	Reschedule(ctx context.Context, id string, req *model.RescheduleRequest) (*model.Appointment, error)
	CancelAndDelete(ctx context.Context, id string) error
}

type schedulerService struct {
	repo      repository.AppointmentRepository
	slots     SlotReserver
	validator *validator.BookingValidator
	publisher events.Publisher
	cfg       *config.Config
}

func NewSchedulerService(
	repo repository.AppointmentRepository,
	slots SlotReserver,
	validator *validator.BookingValidator,
	publisher events.Publisher,
	cfg *config.Config,
) SchedulerService {
	return &schedulerService{
		repo:      repo,
		slots:     slots,
		validator: validator,
		publisher: publisher,
		cfg:       cfg,
	}
}

// CreateBooking inserts one appointment per line-item under a shared
// booking group. Appointments are the source of truth: a slot reservation
// shortfall is logged but never fails the booking, while an insert failure
// aborts the whole batch.
func (s *schedulerService) CreateBooking(ctx context.Context, req *model.BookingRequest) (*BookingResult, error) {
	req.Email = sanitizer.NormalizeEmail(req.Email)
	req.Phone = sanitizer.NormalizePhone(req.Phone)
	req.Name = sanitizer.NormalizeName(req.Name)

	if err := s.validator.ValidateBooking(req); err != nil {
		s.cfg.Log.Warn("Booking validation failed", "error", err)
		return nil, apperrors.Validation("Booking validation failed", map[string]any{
			"error": err.Error(),
		})
	}

	groupID := req.GroupBookingID
	if groupID == "" {
		groupID = uuid.NewString()
	}

	result := &BookingResult{BookingGroupID: groupID}

	for i := range req.Appointments {
		item := &req.Appointments[i]

		parsed := duration.Parse(item.Duration)
		if parsed.Defaulted && item.Duration != "" {
			s.cfg.Log.Warn("Unparsable duration, default applied",
				"duration", item.Duration,
				"minutes", parsed.Minutes,
			)
		}

		endTime, err := duration.EndTime(item.StartTime, parsed.Minutes)
		if err != nil {
			return nil, apperrors.Validation("Invalid start time", map[string]any{
				"startTime": item.StartTime,
			})
		}
		if duration.CrossesMidnight(endTime) {
			return nil, apperrors.Validation("Appointment must not cross midnight", map[string]any{
				"startTime": item.StartTime,
				"endTime":   endTime,
			})
		}

		appt := &model.Appointment{
			SalonID:        item.SalonID,
			ProfessionalID: item.ProfessionalID,
			Services: []model.ServiceLine{{
				Name:     item.ServiceName,
				Price:    item.Price,
				Duration: item.Duration,
			}},
			CustomerName:   req.Name,
			Email:          req.Email,
			Phone:          req.Phone,
			Date:           item.Date,
			StartTime:      item.StartTime,
			EndTime:        endTime,
			Status:         model.StatusPending,
			BookingGroupID: groupID,
		}
		if req.IsGroupBooking {
			appt.MemberInfo = &model.MemberInfo{
				Name:     item.MemberName,
				Category: item.MemberCategory,
			}
		}

		if err := s.repo.Insert(ctx, appt); err != nil {
			s.cfg.Log.Error("Failed to insert appointment",
				"salon_id", item.SalonID,
				"date", item.Date,
				"start_time", item.StartTime,
				"error", err,
			)
			return nil, apperrors.Internal("Failed to create appointment", err)
		}

		if appt.ProfessionalID != "" {
			s.reserve(ctx, appt, parsed.Minutes)
		}

		s.publish(ctx, events.Event{
			Type:           events.TypeAppointmentCreated,
			AppointmentID:  appt.ID,
			SalonID:        appt.SalonID,
			BookingGroupID: groupID,
		})

		result.Appointments = append(result.Appointments, appt)
	}

	s.cfg.Log.Info("Booking created",
		"booking_group_id", groupID,
		"appointments", len(result.Appointments),
		"group", req.IsGroupBooking,
	)
	return result, nil
}

// reserve marks the appointment's slot range booked. A short count means a
// racer won some slots or the horizon is stale; availability is
// over-promised but the appointment stands.
func (s *schedulerService) reserve(ctx context.Context, appt *model.Appointment, minutes int) {
	reserved, err := s.slots.ReserveRange(ctx, appt.ProfessionalID, appt.Date, appt.StartTime, appt.EndTime)
	if err != nil {
		s.cfg.Log.Error("Slot reservation failed, appointment kept",
			"appointment_id", appt.ID,
			"professional_id", appt.ProfessionalID,
			"date", appt.Date,
			"error", err,
		)
		return
	}

	expected := int64(minutes / s.cfg.SlotGranularityMin)
	if reserved < expected {
		s.cfg.Log.Warn("Slot reservation shortfall",
			"appointment_id", appt.ID,
			"professional_id", appt.ProfessionalID,
			"date", appt.Date,
			"reserved", reserved,
			"expected", expected,
			"slots_on_date", s.slotsOnDate(ctx, appt.ProfessionalID, appt.Date),
		)
		return
	}

	s.cfg.Log.Debug("Slots reserved",
		"appointment_id", appt.ID,
		"reserved", reserved,
	)
}

// slotsOnDate distinguishes a stale horizon (no slots materialized) from a
// booking race (slots exist but are taken) in shortfall diagnostics. A
// failed count reports -1.
func (s *schedulerService) slotsOnDate(ctx context.Context, professionalID, date string) int64 {
	count, err := s.slots.CountByProfessionalAndDate(ctx, professionalID, date)
	if err != nil {
		return -1
	}
	return count
}

// release is the symmetric best-effort operation on cancel, delete and
// reschedule.
func (s *schedulerService) release(ctx context.Context, appt *model.Appointment) {
	if appt.ProfessionalID == "" {
		return
	}
	released, err := s.slots.ReleaseRange(ctx, appt.ProfessionalID, appt.Date, appt.StartTime, appt.EndTime)
	if err != nil {
		s.cfg.Log.Error("Slot release failed",
			"appointment_id", appt.ID,
			"professional_id", appt.ProfessionalID,
			"date", appt.Date,
			"error", err,
		)
		return
	}
	s.cfg.Log.Debug("Slots released",
		"appointment_id", appt.ID,
		"released", released,
	)
}

func (s *schedulerService) publish(ctx context.Context, event events.Event) {
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.cfg.Log.Warn("Failed to publish appointment event",
			"type", event.Type,
			"appointment_id", event.AppointmentID,
			"error", err,
		)
	}
}

func (s *schedulerService) GetByID(ctx context.Context, id string) (*model.Appointment, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Appointment ID cannot be empty")
	}

	appt, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.mapLookupError(id, err)
	}
	return appt, nil
}

func (s *schedulerService) ListByContact(ctx context.Context, email, phone string, page httputil.PageRequest) ([]*model.Appointment, int64, error) {
	email = sanitizer.NormalizeEmail(email)
	phone = sanitizer.NormalizePhone(phone)
	if email == "" && phone == "" {
		return nil, 0, apperrors.InvalidInput("At least one of email or phone is required")
	}

	appts, err := s.repo.FindByContact(ctx, email, phone, page.Limit, page.Offset())
	if err != nil {
		s.cfg.Log.Error("Failed to list appointments by contact", "error", err)
		return nil, 0, apperrors.Internal("Failed to retrieve appointments", err)
	}

	total, err := s.repo.CountByContact(ctx, email, phone)
	if err != nil {
		s.cfg.Log.Error("Failed to count appointments by contact", "error", err)
		return nil, 0, apperrors.Internal("Failed to retrieve appointments", err)
	}
	return appts, total, nil
}

func (s *schedulerService) ListBySalon(ctx context.Context, salonID, date string, professional model.ProfessionalFilter, page httputil.PageRequest) ([]*model.Appointment, int64, error) {
	if salonID == "" {
		return nil, 0, apperrors.InvalidInput("Salon ID cannot be empty")
	}

	q := repository.SalonQuery{
		SalonID:      salonID,
		Date:         date,
		Professional: professional,
	}

	appts, err := s.repo.FindBySalon(ctx, q, page.Limit, page.Offset())
	if err != nil {
		s.cfg.Log.Error("Failed to list salon appointments", "salon_id", salonID, "error", err)
		return nil, 0, apperrors.Internal("Failed to retrieve appointments", err)
	}

	total, err := s.repo.CountBySalon(ctx, q)
	if err != nil {
		s.cfg.Log.Error("Failed to count salon appointments", "salon_id", salonID, "error", err)
		return nil, 0, apperrors.Internal("Failed to retrieve appointments", err)
	}
	return appts, total, nil
}

// UpdateStatus drives the appointment state machine. Moving to cancelled
// frees the reserved slots; terminal states accept no further moves.
func (s *schedulerService) UpdateStatus(ctx context.Context, id string, status model.AppointmentStatus) (*model.Appointment, error) {
	if err := s.validator.ValidateStatusUpdate(&model.StatusUpdateRequest{Status: status}); err != nil {
		s.cfg.Log.Warn("Status validation failed", "id", id, "error", err)
		return nil, apperrors.Validation("Status validation failed", map[string]any{
			"error": err.Error(),
		})
	}

	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.mapLookupError(id, err)
	}

	if !current.Status.CanTransitionTo(status) {
		return nil, apperrors.Conflict("Cannot transition appointment from " +
			string(current.Status) + " to " + string(status))
	}

	updated, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, appterrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Appointment", id)
		}
		s.cfg.Log.Error("Failed to update appointment status", "id", id, "error", err)
		return nil, apperrors.Internal("Failed to update appointment", err)
	}

	if status == model.StatusCancelled {
		s.release(ctx, updated)
	}

	s.publish(ctx, events.Event{
		Type:           events.TypeAppointmentStatusChanged,
		AppointmentID:  updated.ID,
		SalonID:        updated.SalonID,
		BookingGroupID: updated.BookingGroupID,
		Payload:        map[string]any{"from": current.Status, "to": status},
	})

	s.cfg.Log.Info("Appointment status updated",
		"id", id,
		"from", current.Status,
		"to", status,
	)
	return updated, nil
}

// Reschedule moves an appointment to a new window. With CreateNew the old
// row is replaced by a fresh one that keeps the original status and points
// back at the old identity; otherwise the row is updated in place. Status
// never changes on either path.
func (s *schedulerService) Reschedule(ctx context.Context, id string, req *model.RescheduleRequest) (*model.Appointment, error) {
	if err := s.validator.ValidateReschedule(req); err != nil {
		s.cfg.Log.Warn("Reschedule validation failed", "id", id, "error", err)
		return nil, apperrors.Validation("Reschedule validation failed", map[string]any{
			"error": err.Error(),
		})
	}

	old, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.mapLookupError(id, err)
	}

	s.release(ctx, old)

	targetProfessional := req.ProfessionalID
	if targetProfessional == "" {
		targetProfessional = old.ProfessionalID
	}

	var updated *model.Appointment
	if req.CreateNew {
		replacement := &model.Appointment{
			SalonID:        old.SalonID,
			ProfessionalID: targetProfessional,
			Services:       old.Services,
			CustomerName:   old.CustomerName,
			Email:          old.Email,
			Phone:          old.Phone,
			Date:           req.Date,
			StartTime:      req.StartTime,
			EndTime:        req.EndTime,
			Status:         old.Status,
			BookingGroupID: old.BookingGroupID,
			IsRescheduled:  true,
			OriginalID:     old.ID,
			MemberInfo:     old.MemberInfo,
		}
		// Replacement insert and original delete commit together, so a
		// failure between them cannot leave both rows visible.
		txErr := s.repo.ExecuteTransaction(ctx, func(sc mongo.SessionContext) error {
			if err := s.repo.Insert(sc, replacement); err != nil {
				return err
			}
			if err := s.repo.Delete(sc, id); err != nil && !errors.Is(err, appterrors.ErrNotFound) {
				return err
			}
			return nil
		})
		if txErr != nil {
			s.cfg.Log.Error("Failed to replace appointment on reschedule", "original_id", id, "error", txErr)
			return nil, apperrors.Internal("Failed to reschedule appointment", txErr)
		}
		updated = replacement
	} else {
		updated, err = s.repo.UpdateTimes(ctx, id, req.Date, req.StartTime, req.EndTime, req.ProfessionalID)
		if err != nil {
			if errors.Is(err, appterrors.ErrNotFound) {
				return nil, apperrors.NotFoundWithID("Appointment", id)
			}
			s.cfg.Log.Error("Failed to update appointment times", "id", id, "error", err)
			return nil, apperrors.Internal("Failed to reschedule appointment", err)
		}
	}

	if targetProfessional != "" {
		start, _ := duration.ParseClock(req.StartTime)
		end, _ := duration.ParseClock(req.EndTime)
		reserved, err := s.slots.ReserveRange(ctx, targetProfessional, req.Date, req.StartTime, req.EndTime)
		if err != nil {
			s.cfg.Log.Error("Slot reservation failed after reschedule",
				"appointment_id", updated.ID,
				"error", err,
			)
		} else if expected := int64((end - start) / s.cfg.SlotGranularityMin); reserved < expected {
			s.cfg.Log.Warn("Slot reservation shortfall after reschedule",
				"appointment_id", updated.ID,
				"reserved", reserved,
				"expected", expected,
				"slots_on_date", s.slotsOnDate(ctx, targetProfessional, req.Date),
			)
		}
	}

	s.publish(ctx, events.Event{
		Type:           events.TypeAppointmentRescheduled,
		AppointmentID:  updated.ID,
		SalonID:        updated.SalonID,
		BookingGroupID: updated.BookingGroupID,
		Payload: map[string]any{
			"date":      req.Date,
			"startTime": req.StartTime,
			"endTime":   req.EndTime,
			"createNew": req.CreateNew,
		},
	})

	s.cfg.Log.Info("Appointment rescheduled",
		"id", id,
		"new_id", updated.ID,
		"date", req.Date,
		"start_time", req.StartTime,
		"create_new", req.CreateNew,
	)
	return updated, nil
}

// CancelAndDelete frees the appointment's slots and removes the row.
func (s *schedulerService) CancelAndDelete(ctx context.Context, id string) error {
	appt, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return s.mapLookupError(id, err)
	}

	s.release(ctx, appt)

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, appterrors.ErrNotFound) {
			return apperrors.NotFoundWithID("Appointment", id)
		}
		s.cfg.Log.Error("Failed to delete appointment", "id", id, "error", err)
		return apperrors.Internal("Failed to delete appointment", err)
	}

	s.publish(ctx, events.Event{
		Type:           events.TypeAppointmentDeleted,
		AppointmentID:  appt.ID,
		SalonID:        appt.SalonID,
		BookingGroupID: appt.BookingGroupID,
	})

	s.cfg.Log.Info("Appointment deleted", "id", id)
	return nil
}

func (s *schedulerService) mapLookupError(id string, err error) error {
	switch {
	case errors.Is(err, appterrors.ErrNotFound):
		return apperrors.NotFoundWithID("Appointment", id)
	case errors.Is(err, appterrors.ErrInvalidID):
		return apperrors.InvalidInput("Invalid appointment ID format")
	default:
		s.cfg.Log.Error("Appointment lookup failed", "id", id, "error", err)
		return apperrors.Internal("Failed to retrieve appointment", err)
	}
}
