package model

import "time"

// ServiceLine is one service on an appointment. Duration stays a free-form
// string ("30 minutes", "1 hour 15 minutes"); the duration parser resolves
// it to minutes at booking time.
type ServiceLine struct {
	Name     string `json:"name" bson:"name" validate:"required,min=1,max=100"`
	Price    int    `json:"price" bson:"price" validate:"min=0"`
	Duration string `json:"duration,omitempty" bson:"duration,omitempty" validate:"omitempty,max=50"`
}

// Appointment is a confirmed or pending reservation of contiguous slots for
// one customer on a single day. Times are salon-local "HH:MM" strings.
type Appointment struct {
	ID             string            `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	SalonID        string            `json:"salonId" bson:"salon_id" validate:"required,mongodb"`
	ProfessionalID string            `json:"professionalId,omitempty" bson:"professional_id,omitempty" validate:"omitempty,mongodb"`
	Services       []ServiceLine     `json:"services" bson:"services" validate:"required,min=1,dive"`
	CustomerName   string            `json:"customerName,omitempty" bson:"customer_name,omitempty" validate:"omitempty,max=100"`
	Email          string            `json:"email,omitempty" bson:"email,omitempty" validate:"omitempty,email"`
	Phone          string            `json:"phone,omitempty" bson:"phone,omitempty" validate:"omitempty,max=20"`
	Date           string            `json:"date" bson:"date" validate:"required,ymd"`
	StartTime      string            `json:"startTime" bson:"start_time" validate:"required,hhmm"`
	EndTime        string            `json:"endTime" bson:"end_time" validate:"required,hhmm"`
	Status         AppointmentStatus `json:"status" bson:"status" validate:"required,oneof=pending confirmed completed cancelled"`
	BookingGroupID string            `json:"bookingGroupId,omitempty" bson:"booking_group_id,omitempty"`
	IsRescheduled  bool              `json:"isRescheduled,omitempty" bson:"is_rescheduled,omitempty"`
	OriginalID     string            `json:"originalAppointmentId,omitempty" bson:"original_appointment_id,omitempty"`
	MemberInfo     *MemberInfo       `json:"memberInfo,omitempty" bson:"member_info,omitempty"`
	CreatedAt      time.Time         `json:"createdAt,omitempty" bson:"created_at"`
}

// MemberInfo identifies which member of a booking group an appointment
// belongs to.
type MemberInfo struct {
	Name     string `json:"name,omitempty" bson:"name,omitempty" validate:"omitempty,max=100"`
	Category string `json:"category,omitempty" bson:"category,omitempty" validate:"omitempty,max=50"`
}

// BookingRequest is the create-appointment payload. A single request may
// carry several line-items committed under one booking group.
type BookingRequest struct {
	Email          string            `json:"email,omitempty" validate:"omitempty,email"`
	Phone          string            `json:"phone,omitempty" validate:"omitempty,max=20"`
	Name           string            `json:"name,omitempty" validate:"omitempty,max=100"`
	IsGroupBooking bool              `json:"isGroupBooking,omitempty"`
	GroupBookingID string            `json:"groupBookingId,omitempty"`
	Appointments   []BookingLineItem `json:"appointments" validate:"required,min=1,dive"`
}

// BookingLineItem describes one appointment to create.
type BookingLineItem struct {
	SalonID        string `json:"salonId" validate:"required,mongodb"`
	ProfessionalID string `json:"professionalId,omitempty" validate:"omitempty,mongodb"`
	ServiceName    string `json:"serviceName" validate:"required,min=1,max=100"`
	Price          int    `json:"price" validate:"min=0"`
	Date           string `json:"date" validate:"required,ymd"`
	StartTime      string `json:"startTime" validate:"required,hhmm"`
	Duration       string `json:"duration,omitempty" validate:"omitempty,max=50"`
	MemberName     string `json:"memberName,omitempty" validate:"omitempty,max=100"`
	MemberCategory string `json:"memberCategory,omitempty" validate:"omitempty,max=50"`
}

// RescheduleRequest moves an appointment to a new window, optionally under
// a new professional. CreateNew replaces the row instead of updating it.
type RescheduleRequest struct {
	Date           string `json:"date" validate:"required,ymd"`
	StartTime      string `json:"startTime" validate:"required,hhmm"`
	EndTime        string `json:"endTime" validate:"required,hhmm"`
	ProfessionalID string `json:"professionalId,omitempty" validate:"omitempty,mongodb"`
	CreateNew      bool   `json:"createNew,omitempty"`
}

// StatusUpdateRequest is the PATCH body for status transitions.
type StatusUpdateRequest struct {
	Status AppointmentStatus `json:"status" validate:"required,oneof=pending confirmed completed cancelled"`
}
