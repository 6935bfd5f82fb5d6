package validator

import (
	"io"
	"testing"

	"salonbook/pkg/logger"
	"salonbook/pkg/model"
)

func newValidator() *BookingValidator {
	return NewBookingValidator(logger.New(logger.Config{Level: logger.ERROR, Output: io.Discard}))
}

func validBooking() *model.BookingRequest {
	return &model.BookingRequest{
		Email: "jane@example.com",
		Appointments: []model.BookingLineItem{{
			SalonID:     "64f0c2e1a2b3c4d5e6f70001",
			ServiceName: "Haircut",
			Price:       2500,
			Date:        "2025-03-10",
			StartTime:   "10:00",
		}},
	}
}

func TestValidateBooking(t *testing.T) {
	v := newValidator()

	if err := v.ValidateBooking(validBooking()); err != nil {
		t.Fatalf("valid booking rejected: %v", err)
	}

	phoneOnly := validBooking()
	phoneOnly.Email = ""
	phoneOnly.Phone = "+15550123456"
	if err := v.ValidateBooking(phoneOnly); err != nil {
		t.Fatalf("phone-only booking rejected: %v", err)
	}
}

func TestValidateBookingRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.BookingRequest)
	}{
		{"no contact", func(r *model.BookingRequest) { r.Email, r.Phone = "", "" }},
		{"bad email", func(r *model.BookingRequest) { r.Email = "not-an-email" }},
		{"no line items", func(r *model.BookingRequest) { r.Appointments = nil }},
		{"missing salon", func(r *model.BookingRequest) { r.Appointments[0].SalonID = "" }},
		{"malformed salon", func(r *model.BookingRequest) { r.Appointments[0].SalonID = "abc" }},
		{"missing service", func(r *model.BookingRequest) { r.Appointments[0].ServiceName = "" }},
		{"malformed date", func(r *model.BookingRequest) { r.Appointments[0].Date = "03/10/2025" }},
		{"malformed start", func(r *model.BookingRequest) { r.Appointments[0].StartTime = "10" }},
		{"negative price", func(r *model.BookingRequest) { r.Appointments[0].Price = -1 }},
	}

	v := newValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validBooking()
			tt.mutate(req)
			if err := v.ValidateBooking(req); err == nil {
				t.Error("expected validation failure")
			}
		})
	}
}

func TestValidateReschedule(t *testing.T) {
	v := newValidator()

	valid := &model.RescheduleRequest{Date: "2025-03-11", StartTime: "11:00", EndTime: "11:30"}
	if err := v.ValidateReschedule(valid); err != nil {
		t.Fatalf("valid reschedule rejected: %v", err)
	}

	tests := []struct {
		name string
		req  *model.RescheduleRequest
	}{
		{"missing date", &model.RescheduleRequest{StartTime: "11:00", EndTime: "11:30"}},
		{"inverted window", &model.RescheduleRequest{Date: "2025-03-11", StartTime: "11:30", EndTime: "11:00"}},
		{"equal times", &model.RescheduleRequest{Date: "2025-03-11", StartTime: "11:00", EndTime: "11:00"}},
		{"cross-midnight end", &model.RescheduleRequest{Date: "2025-03-11", StartTime: "23:30", EndTime: "24:15"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := v.ValidateReschedule(tt.req); err == nil {
				t.Error("expected validation failure")
			}
		})
	}
}

func TestValidateStatusUpdate(t *testing.T) {
	v := newValidator()

	if err := v.ValidateStatusUpdate(&model.StatusUpdateRequest{Status: model.StatusConfirmed}); err != nil {
		t.Fatalf("valid status rejected: %v", err)
	}
	if err := v.ValidateStatusUpdate(&model.StatusUpdateRequest{Status: "archived"}); err == nil {
		t.Error("unknown status must be rejected")
	}
	if err := v.ValidateStatusUpdate(&model.StatusUpdateRequest{}); err == nil {
		t.Error("empty status must be rejected")
	}
}
