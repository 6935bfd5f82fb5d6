package service

import (
	"context"
	"errors"
	"io"
	"testing"

	salonerrors "salonbook/internal/salons/errors"
	"salonbook/internal/salons/validator"
	"salonbook/pkg/config"
	apperrors "salonbook/pkg/errors"
	"salonbook/pkg/logger"
	"salonbook/pkg/model"
)

func testConfig() *config.Config {
	return &config.Config{
		Log: logger.New(logger.Config{Level: logger.ERROR, Output: io.Discard}),
	}
}

type mockSalonRepo struct {
	createFn        func(ctx context.Context, salon *model.Salon) error
	findByIDFn      func(ctx context.Context, id string) (*model.Salon, error)
	findApprovedFn  func(ctx context.Context, limit int, offset int64) ([]*model.Salon, error)
	countApprovedFn func(ctx context.Context) (int64, error)
	updateStateFn   func(ctx context.Context, id string, state model.ApprovalState) (*model.Salon, error)
}

func (m *mockSalonRepo) Create(ctx context.Context, salon *model.Salon) error {
	return m.createFn(ctx, salon)
}

func (m *mockSalonRepo) FindByID(ctx context.Context, id string) (*model.Salon, error) {
	return m.findByIDFn(ctx, id)
}

func (m *mockSalonRepo) FindApproved(ctx context.Context, limit int, offset int64) ([]*model.Salon, error) {
	return m.findApprovedFn(ctx, limit, offset)
}

func (m *mockSalonRepo) CountApproved(ctx context.Context) (int64, error) {
	return m.countApprovedFn(ctx)
}

func (m *mockSalonRepo) UpdateApprovalState(ctx context.Context, id string, state model.ApprovalState) (*model.Salon, error) {
	return m.updateStateFn(ctx, id, state)
}

func newSalonService(repo *mockSalonRepo) SalonService {
	cfg := testConfig()
	return NewSalonService(repo, validator.NewSalonValidator(cfg.Log), cfg)
}

func TestRegisterForcesPendingState(t *testing.T) {
	var created *model.Salon
	repo := &mockSalonRepo{
		createFn: func(_ context.Context, salon *model.Salon) error {
			salon.ID = "64f0c2e1a2b3c4d5e6f70001"
			created = salon
			return nil
		},
	}
	svc := newSalonService(repo)

	salon := &model.Salon{
		Name:          "  Glow   Studio ",
		District:      "Midtown",
		ApprovalState: model.ApprovalApproved,
	}
	if err := svc.Register(context.Background(), salon); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if created.ApprovalState != model.ApprovalPending {
		t.Errorf("ApprovalState = %s, registration must always start pending", created.ApprovalState)
	}
	if created.Name != "Glow Studio" {
		t.Errorf("Name = %q, want normalized", created.Name)
	}
}

func TestRegisterValidation(t *testing.T) {
	svc := newSalonService(&mockSalonRepo{})

	err := svc.Register(context.Background(), &model.Salon{Name: ""})
	if err == nil {
		t.Fatal("nameless salon must be rejected")
	}
	if apperrors.AsAppError(err).StatusCode() != 400 {
		t.Errorf("status = %d, want 400", apperrors.AsAppError(err).StatusCode())
	}
}

func TestGetByIDMapsErrors(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		status  int
	}{
		{"not found", salonerrors.ErrSalonNotFound, 404},
		{"bad id", salonerrors.ErrInvalidID, 400},
		{"store failure", errors.New("connection reset"), 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockSalonRepo{
				findByIDFn: func(_ context.Context, _ string) (*model.Salon, error) {
					return nil, tt.repoErr
				},
			}
			svc := newSalonService(repo)

			_, err := svc.GetByID(context.Background(), "64f0c2e1a2b3c4d5e6f70001")
			if err == nil {
				t.Fatal("expected error")
			}
			if got := apperrors.AsAppError(err).StatusCode(); got != tt.status {
				t.Errorf("status = %d, want %d", got, tt.status)
			}
		})
	}
}

func TestSetApprovalStateRejectsUnknownState(t *testing.T) {
	svc := newSalonService(&mockSalonRepo{})

	if _, err := svc.SetApprovalState(context.Background(), "64f0c2e1a2b3c4d5e6f70001", "archived"); err == nil {
		t.Fatal("unknown approval state must be rejected")
	}
}

func TestSetApprovalState(t *testing.T) {
	repo := &mockSalonRepo{
		updateStateFn: func(_ context.Context, id string, state model.ApprovalState) (*model.Salon, error) {
			return &model.Salon{ID: id, Name: "Glow Studio", ApprovalState: state}, nil
		},
	}
	svc := newSalonService(repo)

	salon, err := svc.SetApprovalState(context.Background(), "64f0c2e1a2b3c4d5e6f70001", model.ApprovalApproved)
	if err != nil {
		t.Fatalf("SetApprovalState failed: %v", err)
	}
	if salon.ApprovalState != model.ApprovalApproved {
		t.Errorf("ApprovalState = %s, want approved", salon.ApprovalState)
	}
}
