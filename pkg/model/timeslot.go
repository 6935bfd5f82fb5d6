package model

// TimeSlot is a fixed-granularity unit of potential availability. IsBooked
// is a cache over the set of covering appointments; appointments remain the
// source of truth. The collection carries a unique index on
// (professional_id, date, start_time, end_time).
type TimeSlot struct {
	ID             string `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	ProfessionalID string `json:"professionalId" bson:"professional_id" validate:"required,mongodb"`
	SalonID        string `json:"salonId" bson:"salon_id" validate:"required,mongodb"`
	Date           string `json:"date" bson:"date" validate:"required,ymd"`
	StartTime      string `json:"startTime" bson:"start_time" validate:"required,hhmm"`
	EndTime        string `json:"endTime" bson:"end_time" validate:"required,hhmm"`
	IsBooked       bool   `json:"isBooked" bson:"is_booked"`
}
