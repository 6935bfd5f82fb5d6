package model

import "time"

// ApprovalState gates a salon's public visibility. Only approved salons
// appear in unauthenticated listings.
type ApprovalState string

const (
	ApprovalPending  ApprovalState = "pending"
	ApprovalApproved ApprovalState = "approved"
	ApprovalRejected ApprovalState = "rejected"
)

func (s ApprovalState) Valid() bool {
	switch s {
	case ApprovalPending, ApprovalApproved, ApprovalRejected:
		return true
	}
	return false
}

type Salon struct {
	ID            string        `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	Name          string        `json:"name" bson:"name" validate:"required,min=2,max=100"`
	District      string        `json:"district,omitempty" bson:"district,omitempty" validate:"omitempty,max=100"`
	ApprovalState ApprovalState `json:"approvalState" bson:"approval_state" validate:"omitempty,oneof=pending approved rejected"`
	CreatedAt     time.Time     `json:"createdAt,omitempty" bson:"created_at"`
}
