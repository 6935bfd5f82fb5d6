package service

import (
	"context"
	"testing"

	salonerrors "salonbook/internal/salons/errors"
	"salonbook/internal/salons/validator"
	apperrors "salonbook/pkg/errors"
	"salonbook/pkg/model"
)

type mockProfessionalRepo struct {
	createFn          func(ctx context.Context, professional *model.Professional) error
	findByIDFn        func(ctx context.Context, id string) (*model.Professional, error)
	findBySalonFn     func(ctx context.Context, salonID string) ([]*model.Professional, error)
	setAvailabilityFn func(ctx context.Context, id string, available bool) (*model.Professional, error)
	streamAllFn       func(ctx context.Context, fn func(*model.Professional) error) error
}

func (m *mockProfessionalRepo) Create(ctx context.Context, professional *model.Professional) error {
	return m.createFn(ctx, professional)
}

func (m *mockProfessionalRepo) FindByID(ctx context.Context, id string) (*model.Professional, error) {
	return m.findByIDFn(ctx, id)
}

func (m *mockProfessionalRepo) FindBySalon(ctx context.Context, salonID string) ([]*model.Professional, error) {
	return m.findBySalonFn(ctx, salonID)
}

func (m *mockProfessionalRepo) SetAvailability(ctx context.Context, id string, available bool) (*model.Professional, error) {
	return m.setAvailabilityFn(ctx, id, available)
}

func (m *mockProfessionalRepo) StreamAll(ctx context.Context, fn func(*model.Professional) error) error {
	return m.streamAllFn(ctx, fn)
}

func newProfessionalService(repo *mockProfessionalRepo, salons *mockSalonRepo) ProfessionalService {
	cfg := testConfig()
	return NewProfessionalService(repo, salons, validator.NewSalonValidator(cfg.Log), cfg)
}

func TestRegisterProfessional(t *testing.T) {
	salons := &mockSalonRepo{
		findByIDFn: func(_ context.Context, id string) (*model.Salon, error) {
			return &model.Salon{ID: id, Name: "Glow Studio", ApprovalState: model.ApprovalApproved}, nil
		},
	}
	var created *model.Professional
	repo := &mockProfessionalRepo{
		createFn: func(_ context.Context, p *model.Professional) error {
			p.ID = "64f0c2e1a2b3c4d5e6f70002"
			created = p
			return nil
		},
	}
	svc := newProfessionalService(repo, salons)

	professional := &model.Professional{
		SalonID: "64f0c2e1a2b3c4d5e6f70001",
		Name:    "  Dana   Reyes ",
		Gender:  "female",
	}
	if err := svc.Register(context.Background(), professional); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if created.Name != "Dana Reyes" {
		t.Errorf("Name = %q, want normalized", created.Name)
	}
}

// An unknown salon reference is an explicit 404, never a silent fallback.
func TestRegisterProfessionalUnknownSalon(t *testing.T) {
	salons := &mockSalonRepo{
		findByIDFn: func(_ context.Context, _ string) (*model.Salon, error) {
			return nil, salonerrors.ErrSalonNotFound
		},
	}
	repo := &mockProfessionalRepo{}
	svc := newProfessionalService(repo, salons)

	err := svc.Register(context.Background(), &model.Professional{
		SalonID: "64f0c2e1a2b3c4d5e6f70099",
		Name:    "Dana Reyes",
	})
	if err == nil {
		t.Fatal("unknown salon must be rejected")
	}
	if apperrors.AsAppError(err).StatusCode() != 404 {
		t.Errorf("status = %d, want 404", apperrors.AsAppError(err).StatusCode())
	}
}

func TestGetProfessionalNotFound(t *testing.T) {
	repo := &mockProfessionalRepo{
		findByIDFn: func(_ context.Context, _ string) (*model.Professional, error) {
			return nil, salonerrors.ErrProfessionalNotFound
		},
	}
	svc := newProfessionalService(repo, &mockSalonRepo{})

	_, err := svc.GetByID(context.Background(), "64f0c2e1a2b3c4d5e6f70099")
	if err == nil {
		t.Fatal("expected not-found error")
	}
	if apperrors.AsAppError(err).StatusCode() != 404 {
		t.Errorf("status = %d, want 404", apperrors.AsAppError(err).StatusCode())
	}
}

func TestSetAvailability(t *testing.T) {
	repo := &mockProfessionalRepo{
		setAvailabilityFn: func(_ context.Context, id string, available bool) (*model.Professional, error) {
			return &model.Professional{ID: id, Name: "Dana Reyes", Available: available}, nil
		},
	}
	svc := newProfessionalService(repo, &mockSalonRepo{})

	professional, err := svc.SetAvailability(context.Background(), "64f0c2e1a2b3c4d5e6f70002", false)
	if err != nil {
		t.Fatalf("SetAvailability failed: %v", err)
	}
	if professional.Available {
		t.Error("Available = true, want false")
	}
}
