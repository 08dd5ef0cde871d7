//go:build unit || e2e

package builder

import (
	"time"

	dombooking "crease/internal/domain/booking"
	"crease/internal/domain/pricing"
	"crease/internal/domain/slot"
	"crease/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	MachineID      uuid.UUID
	Start          time.Time
	End            time.Time
	Ball           pricing.BallType
	Pitch          pricing.PitchType
	Status         dombooking.Status
	Price          int64
	OriginalPrice  int64
	DiscountAmount int64
	DiscountType   string
	Funding        dombooking.Funding
	CreatedAt      time.Time
}

func NewBookingBuilder() *BookingBuilder {
	start := time.Now().Add(24 * time.Hour).Truncate(30 * time.Minute)
	return &BookingBuilder{
		ID:            uuid.New(),
		UserID:        uuid.New(),
		MachineID:     uuid.New(),
		Start:         start,
		End:           start.Add(30 * time.Minute),
		Ball:          pricing.BallTennis,
		Pitch:         pricing.PitchAstro,
		Status:        dombooking.StatusBooked,
		Price:         600,
		OriginalPrice: 600,
		Funding:       dombooking.DirectPay{PaymentID: uuid.New()},
		CreatedAt:     time.Now(),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildDomain() *dombooking.Booking {
	return dombooking.Reconstruct(
		b.ID, b.UserID, b.MachineID,
		slot.Window{Start: b.Start, End: b.End},
		b.Ball, b.Pitch, b.Status,
		b.Price, b.OriginalPrice, b.DiscountAmount, b.DiscountType,
		b.Funding, b.CreatedAt, b.CreatedAt,
	)
}

func (b *BookingBuilder) BuildSnapshot() *shared.BookingSnapshot {
	snap := &shared.BookingSnapshot{
		ID:        b.ID,
		UserID:    b.UserID,
		MachineID: b.MachineID,
		StartTime: b.Start,
		EndTime:   b.End,
		Status:    string(b.Status),
	}
	switch f := b.Funding.(type) {
	case dombooking.PackageFunded:
		snap.FundingKind = "package"
		id := f.PackageID
		snap.PackageID = &id
	case dombooking.SubscriptionFunded:
		snap.FundingKind = "subscription"
		id := f.SubscriptionID
		snap.SubscriptionID = &id
	case dombooking.DirectPay:
		snap.FundingKind = "direct"
		id := f.PaymentID
		snap.PaymentID = &id
	}
	return snap
}
