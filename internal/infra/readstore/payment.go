package readstore

import (
	"context"

	"crease/internal/infra"
	"crease/internal/infra/db"
	"crease/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PaymentReadStore struct {
	db db.DBTX
}

func NewPaymentReadStore(dbtx db.DBTX) *PaymentReadStore {
	return &PaymentReadStore{db: dbtx}
}

const paymentForUpdateSQL = `
SELECT id, user_id, gateway_ref, amount, status
FROM payments
WHERE id = $1
FOR UPDATE`

// SnapshotByIDForUpdate locks the payment row for the duration of the
// transaction, serializing concurrent link attempts. The lock alone does not
// stop a payment being reused across committed transactions; callers pair it
// with LinkedToBooking.
func (r *PaymentReadStore) SnapshotByIDForUpdate(ctx context.Context, id uuid.UUID) (*shared.PaymentSnapshot, error) {
	var snap shared.PaymentSnapshot
	err := r.db.QueryRow(ctx, paymentForUpdateSQL, id).Scan(
		&snap.ID, &snap.UserID, &snap.GatewayRef, &snap.Amount, &snap.Status,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("payment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find payment by ID", err)
	}
	return &snap, nil
}

const paymentLinkedSQL = `
SELECT EXISTS (SELECT 1 FROM bookings WHERE payment_id = $1)`

// LinkedToBooking reports whether any booking already references the payment.
// Cancelled bookings count: direct-pay cancellations are not refunded, so a
// spent payment stays spent.
func (r *PaymentReadStore) LinkedToBooking(ctx context.Context, id uuid.UUID) (bool, error) {
	var linked bool
	if err := r.db.QueryRow(ctx, paymentLinkedSQL, id).Scan(&linked); err != nil {
		return false, infra.WrapRepoErr("failed to check payment linkage", err)
	}
	return linked, nil
}
