package request

import (
	"time"

	"github.com/google/uuid"
)

// CreateBookingRequest selects slots by their start instants. Exactly one of
// the funding fields must be set.
type CreateBookingRequest struct {
	MachineID  uuid.UUID   `json:"machine_id" binding:"required"`
	Date       time.Time   `json:"date" binding:"required"`
	StartTimes []time.Time `json:"start_times" binding:"required,min=1"`
	BallType   string      `json:"ball_type" binding:"required"`
	PitchType  string      `json:"pitch_type"`

	PackageID      *uuid.UUID `json:"package_id,omitempty"`
	SubscriptionID *uuid.UUID `json:"subscription_id,omitempty"`
	PaymentID      *uuid.UUID `json:"payment_id,omitempty"`
}
