package payment

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotOwner    = errors.New("payment belongs to another user")
	ErrNotCaptured = errors.New("payment is not captured")
)

// Status transitions to CAPTURED out-of-band via the gateway webhook; this
// core never initiates gateway calls.
type Status string

const (
	StatusCreated  Status = "CREATED"
	StatusCaptured Status = "CAPTURED"
	StatusFailed   Status = "FAILED"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusCreated, StatusCaptured, StatusFailed:
		return true
	default:
		return false
	}
}

type Payment struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	GatewayRef string
	Amount     int64
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// AuthorizeLink gates attaching bookings to a payment: the payment must belong
// to the requesting user and must already be captured.
func (p *Payment) AuthorizeLink(userID uuid.UUID) error {
	if p.UserID != userID {
		return ErrNotOwner
	}
	if p.Status != StatusCaptured {
		return ErrNotCaptured
	}
	return nil
}
