package request

import (
	"github.com/google/uuid"
)

type PurchasePackageRequest struct {
	UserID        uuid.UUID  `json:"user_id" binding:"required"`
	TotalSessions int        `json:"total_sessions" binding:"required,min=1"`
	ValidityDays  int        `json:"validity_days" binding:"required,min=1"`
	MachineID     *uuid.UUID `json:"machine_id,omitempty"`
	BallType      string     `json:"ball_type" binding:"required"`
	PitchType     string     `json:"pitch_type"`
	Timing        string     `json:"timing"`
	AmountPaid    int64      `json:"amount_paid" binding:"min=0"`
}

// PreviewPackageUseRequest asks whether a package can fund a booking shape
// without committing anything.
type PreviewPackageUseRequest struct {
	BallType  string     `json:"ball_type" binding:"required"`
	PitchType string     `json:"pitch_type"`
	Slab      string     `json:"slab" binding:"required"`
	Sessions  int        `json:"sessions" binding:"required,min=1"`
	MachineID *uuid.UUID `json:"machine_id,omitempty"`
}
