package repository

import (
	"context"

	"crease/internal/domain/booking"
	"crease/internal/infra"
	"crease/internal/infra/db"

	"github.com/google/uuid"
)

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{db: dbtx}
}

const insertBookingSQL = `
INSERT INTO bookings (
	id, user_id, machine_id, slot_date, start_time, end_time,
	ball_type, pitch_type, status, price, original_price,
	discount_amount, discount_type, funding_kind,
	package_id, subscription_id, payment_id
) VALUES (
	$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17
)
RETURNING id`

// Insert relies on the partial unique index over (machine_id, start_time)
// WHERE status = 'BOOKED' for the double-booking guarantee; a violation comes
// back as KindConflict.
func (r *BookingRepository) Insert(ctx context.Context, b *booking.Booking) (uuid.UUID, error) {
	var (
		packageID      *uuid.UUID
		subscriptionID *uuid.UUID
		paymentID      *uuid.UUID
		fundingKind    string
	)

	switch f := b.Funding().(type) {
	case booking.PackageFunded:
		fundingKind = "package"
		id := f.PackageID
		packageID = &id
	case booking.SubscriptionFunded:
		fundingKind = "subscription"
		id := f.SubscriptionID
		subscriptionID = &id
	case booking.DirectPay:
		fundingKind = "direct"
		id := f.PaymentID
		paymentID = &id
	}

	w := b.Window()
	var discountType *string
	if b.DiscountType() != "" {
		dt := b.DiscountType()
		discountType = &dt
	}

	// The window start carries the facility timezone, so its calendar date is
	// the facility-local booking date.
	slotDate := w.Start.Format("2006-01-02")

	var id uuid.UUID
	err := r.db.QueryRow(ctx, insertBookingSQL,
		b.ID(), b.UserID(), b.MachineID(), slotDate, w.Start, w.End,
		string(b.Ball()), string(b.Pitch()), b.Status().String(),
		b.Price(), b.OriginalPrice(), b.DiscountAmount(), discountType,
		fundingKind, packageID, subscriptionID, paymentID,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create booking", err)
	}

	return id, nil
}

const updateBookingStatusSQL = `
UPDATE bookings
SET status = $3, updated_at = now()
WHERE id = $1 AND status = $2`

func (r *BookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to booking.Status) error {
	tag, err := r.db.Exec(ctx, updateBookingStatusSQL, id, from.String(), to.String())
	if err != nil {
		return infra.WrapRepoErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("booking not in expected status", nil, infra.KindConflict)
	}
	return nil
}
