package model

import "time"

// Professional is a service provider belonging to exactly one salon. It
// owns its availability flag and service set; the salon only references it.
type Professional struct {
	ID         string    `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	SalonID    string    `json:"salonId" bson:"salon_id" validate:"required,mongodb"`
	Name       string    `json:"name" bson:"name" validate:"required,min=2,max=100"`
	Gender     string    `json:"gender,omitempty" bson:"gender,omitempty" validate:"omitempty,oneof=male female other"`
	Available  bool      `json:"available" bson:"available"`
	ServiceIDs []string  `json:"serviceIds,omitempty" bson:"service_ids,omitempty"`
	CreatedAt  time.Time `json:"createdAt,omitempty" bson:"created_at"`
}
