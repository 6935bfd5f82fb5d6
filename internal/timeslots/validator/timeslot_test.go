package validator

import (
	"io"
	"testing"

	"salonbook/pkg/logger"
	"salonbook/pkg/model"
)

func newValidator() *TimeSlotValidator {
	return NewTimeSlotValidator(logger.New(logger.Config{Level: logger.ERROR, Output: io.Discard}))
}

func validSlot() *model.TimeSlot {
	return &model.TimeSlot{
		ProfessionalID: "64f0c2e1a2b3c4d5e6f70002",
		SalonID:        "64f0c2e1a2b3c4d5e6f70001",
		Date:           "2025-03-10",
		StartTime:      "10:00",
		EndTime:        "10:05",
	}
}

func TestValidateAcceptsWellFormedSlot(t *testing.T) {
	if err := newValidator().Validate(validSlot()); err != nil {
		t.Fatalf("valid slot rejected: %v", err)
	}
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.TimeSlot)
	}{
		{"missing professional", func(s *model.TimeSlot) { s.ProfessionalID = "" }},
		{"malformed professional", func(s *model.TimeSlot) { s.ProfessionalID = "nope" }},
		{"missing date", func(s *model.TimeSlot) { s.Date = "" }},
		{"malformed date", func(s *model.TimeSlot) { s.Date = "10-03-2025" }},
		{"malformed start", func(s *model.TimeSlot) { s.StartTime = "10am" }},
		{"malformed end", func(s *model.TimeSlot) { s.EndTime = "25:00" }},
		{"end equals start", func(s *model.TimeSlot) { s.EndTime = s.StartTime }},
		{"end before start", func(s *model.TimeSlot) { s.StartTime, s.EndTime = "10:05", "10:00" }},
	}

	v := newValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot := validSlot()
			tt.mutate(slot)
			if err := v.Validate(slot); err == nil {
				t.Error("expected validation failure")
			}
		})
	}
}
