package booking

import (
	"errors"
	"time"

	"crease/internal/domain/pricing"
	"crease/internal/domain/slot"
	"crease/internal/domain/user"

	"github.com/google/uuid"
)

var (
	ErrInvalidWindow   = errors.New("slot window is invalid")
	ErrNegativePrice   = errors.New("price cannot be negative")
	ErrNotCancellable  = errors.New("booking cannot be cancelled")
	ErrAlreadyTerminal = errors.New("booking is already finalized")
	ErrPastBooking     = errors.New("booking start time has already passed")
	ErrNotOwner        = errors.New("booking belongs to another user")
	ErrMissingFunding  = errors.New("booking requires a funding source")
	ErrNotDoneEligible = errors.New("only booked sessions can be marked done")
)

// Booking is one user's claim on one slot.
type Booking struct {
	id             uuid.UUID
	userID         uuid.UUID
	machineID      uuid.UUID
	window         slot.Window
	ball           pricing.BallType
	pitch          pricing.PitchType
	status         Status
	price          int64
	originalPrice  int64
	discountAmount int64
	discountType   string
	funding        Funding
	createdAt      time.Time
	updatedAt      time.Time
}

type NewBookingParams struct {
	UserID         uuid.UUID
	MachineID      uuid.UUID
	Window         slot.Window
	Ball           pricing.BallType
	Pitch          pricing.PitchType
	Price          int64
	OriginalPrice  int64
	DiscountAmount int64
	DiscountType   string
	Funding        Funding
}

func NewBooking(p NewBookingParams) (*Booking, error) {
	if !p.Window.End.After(p.Window.Start) {
		return nil, ErrInvalidWindow
	}
	if p.Price < 0 || p.OriginalPrice < 0 {
		return nil, ErrNegativePrice
	}
	if p.Funding == nil {
		return nil, ErrMissingFunding
	}
	return &Booking{
		id:             uuid.New(),
		userID:         p.UserID,
		machineID:      p.MachineID,
		window:         p.Window,
		ball:           p.Ball,
		pitch:          p.Pitch,
		status:         StatusBooked,
		price:          p.Price,
		originalPrice:  p.OriginalPrice,
		discountAmount: p.DiscountAmount,
		discountType:   p.DiscountType,
		funding:        p.Funding,
	}, nil
}

func Reconstruct(id, userID, machineID uuid.UUID, window slot.Window, ball pricing.BallType, pitch pricing.PitchType, status Status, price, originalPrice, discountAmount int64, discountType string, funding Funding, createdAt, updatedAt time.Time) *Booking {
	return &Booking{
		id:             id,
		userID:         userID,
		machineID:      machineID,
		window:         window,
		ball:           ball,
		pitch:          pitch,
		status:         status,
		price:          price,
		originalPrice:  originalPrice,
		discountAmount: discountAmount,
		discountType:   discountType,
		funding:        funding,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (b *Booking) ID() uuid.UUID             { return b.id }
func (b *Booking) UserID() uuid.UUID         { return b.userID }
func (b *Booking) MachineID() uuid.UUID      { return b.machineID }
func (b *Booking) Window() slot.Window       { return b.window }
func (b *Booking) Ball() pricing.BallType    { return b.ball }
func (b *Booking) Pitch() pricing.PitchType  { return b.pitch }
func (b *Booking) Status() Status            { return b.status }
func (b *Booking) Price() int64              { return b.price }
func (b *Booking) OriginalPrice() int64      { return b.originalPrice }
func (b *Booking) DiscountAmount() int64     { return b.discountAmount }
func (b *Booking) DiscountType() string      { return b.discountType }
func (b *Booking) Funding() Funding          { return b.funding }
func (b *Booking) CreatedAt() time.Time      { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time      { return b.updatedAt }

// AuthorizeCancel enforces the cancellation policy: the owner or a privileged
// actor may cancel a BOOKED booking, and a non-privileged actor cannot cancel
// once the slot's start time has passed.
func (b *Booking) AuthorizeCancel(actor user.Principal, now time.Time) error {
	if b.status != StatusBooked {
		return ErrAlreadyTerminal
	}
	if b.userID != actor.ID && !actor.Role.IsPrivileged() {
		return ErrNotOwner
	}
	if !actor.Role.IsPrivileged() && b.window.Start.Before(now) {
		return ErrPastBooking
	}
	return nil
}

func (b *Booking) Cancel(actor user.Principal, now time.Time) error {
	if err := b.AuthorizeCancel(actor, now); err != nil {
		return err
	}
	b.status = StatusCancelled
	return nil
}

// MarkDone is the privileged terminal transition after a session is played.
func (b *Booking) MarkDone(actor user.Principal) error {
	if !actor.Role.IsPrivileged() {
		return ErrNotOwner
	}
	if b.status != StatusBooked {
		return ErrNotDoneEligible
	}
	b.status = StatusDone
	return nil
}
