package readstore

import (
	"context"
	"time"

	"crease/internal/infra"
	"crease/internal/infra/db"
	"crease/internal/usecase/queries"
	"crease/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

const bookedStartTimesSQL = `
SELECT start_time
FROM bookings
WHERE machine_id = $1
  AND start_time >= $2
  AND start_time < $3
  AND status = 'BOOKED'
ORDER BY start_time`

// BookedStartTimes returns the occupied slot starts for a machine within
// [from, to). The availability resolver subtracts these from the generated
// grid.
func (r *BookingReadStore) BookedStartTimes(ctx context.Context, machineID uuid.UUID, from, to time.Time) ([]time.Time, error) {
	rows, err := r.db.Query(ctx, bookedStartTimesSQL, machineID, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list booked slots", err)
	}
	defer rows.Close()

	var result []time.Time
	for rows.Next() {
		var t time.Time
		if err := rows.Scan(&t); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booked slot", err)
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booked slots", err)
	}
	return result, nil
}

const bookingSnapshotSQL = `
SELECT id, user_id, machine_id, start_time, end_time, status,
       funding_kind, package_id, subscription_id, payment_id
FROM bookings
WHERE id = $1`

func (r *BookingReadStore) SnapshotByID(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	var snap shared.BookingSnapshot
	err := r.db.QueryRow(ctx, bookingSnapshotSQL, id).Scan(
		&snap.ID, &snap.UserID, &snap.MachineID, &snap.StartTime, &snap.EndTime,
		&snap.Status, &snap.FundingKind, &snap.PackageID, &snap.SubscriptionID, &snap.PaymentID,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return &snap, nil
}

const bookingViewSQL = `
SELECT b.id, b.user_id, b.machine_id, m.name, b.start_time, b.end_time,
       b.ball_type, b.pitch_type, b.status, b.price, b.original_price,
       b.discount_amount, b.discount_type, b.funding_kind,
       b.package_id, b.subscription_id, b.payment_id,
       b.created_at, b.updated_at
FROM bookings b
JOIN machines m ON m.id = b.machine_id
WHERE b.id = $1`

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	var v queries.BookingView
	err := r.db.QueryRow(ctx, bookingViewSQL, id).Scan(
		&v.ID, &v.UserID, &v.MachineID, &v.MachineName, &v.StartTime, &v.EndTime,
		&v.BallType, &v.PitchType, &v.Status, &v.Price, &v.OriginalPrice,
		&v.DiscountAmount, &v.DiscountType, &v.FundingKind,
		&v.PackageID, &v.SubscriptionID, &v.PaymentID,
		&v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find booking by ID", err)
	}
	return &v, nil
}

const bookingsByUserSQL = `
SELECT b.id, b.machine_id, m.name, b.start_time, b.end_time, b.status, b.price, b.created_at
FROM bookings b
JOIN machines m ON m.id = b.machine_id
WHERE b.user_id = $1
ORDER BY b.start_time DESC
LIMIT $2`

func (r *BookingReadStore) ListByUser(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.BookingListItem, error) {
	rows, err := r.db.Query(ctx, bookingsByUserSQL, userID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by user", err)
	}
	defer rows.Close()
	return scanBookingList(rows)
}

const bookingsByMachineDaySQL = `
SELECT b.id, b.machine_id, m.name, b.start_time, b.end_time, b.status, b.price, b.created_at
FROM bookings b
JOIN machines m ON m.id = b.machine_id
WHERE b.machine_id = $1 AND b.slot_date = $2
ORDER BY b.start_time`

func (r *BookingReadStore) ListByMachineDay(ctx context.Context, machineID uuid.UUID, slotDate string) ([]*queries.BookingListItem, error) {
	rows, err := r.db.Query(ctx, bookingsByMachineDaySQL, machineID, slotDate)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by machine and day", err)
	}
	defer rows.Close()
	return scanBookingList(rows)
}

func scanBookingList(rows pgx.Rows) ([]*queries.BookingListItem, error) {
	var result []*queries.BookingListItem
	for rows.Next() {
		var v queries.BookingListItem
		if err := rows.Scan(&v.ID, &v.MachineID, &v.MachineName, &v.StartTime, &v.EndTime, &v.Status, &v.Price, &v.CreatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate booking rows", err)
	}
	return result, nil
}
