package repository

import (
	"context"

	"crease/internal/domain/pack"
	"crease/internal/infra"
	"crease/internal/infra/db"

	"github.com/google/uuid"
)

type PackageRepository struct {
	db db.DBTX
}

func NewPackageRepository(dbtx db.DBTX) *PackageRepository {
	return &PackageRepository{db: dbtx}
}

const insertPackageSQL = `
INSERT INTO user_packages (
	id, user_id, total_sessions, used_sessions, activated_at, expires_at,
	status, machine_id, ball_type, pitch_type, timing, amount_paid
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING id`

func (r *PackageRepository) Insert(ctx context.Context, p *pack.Package) (uuid.UUID, error) {
	scope := p.Scope()
	var id uuid.UUID
	err := r.db.QueryRow(ctx, insertPackageSQL,
		p.ID(), p.UserID(), p.TotalSessions(), p.UsedSessions(),
		p.ActivatedAt(), p.ExpiresAt(), string(p.EffectiveStatus(p.ActivatedAt())),
		scope.MachineID, string(scope.Ball), string(scope.Pitch), string(scope.Timing),
		p.AmountPaid(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create package", err)
	}
	return id, nil
}

const consumePackageSessionsSQL = `
UPDATE user_packages
SET used_sessions = used_sessions + $2, updated_at = now()
WHERE id = $1
  AND status = 'ACTIVE'
  AND used_sessions + $2 <= total_sessions`

// ConsumeSessions debits inside the reconciler's transaction. The WHERE guard
// keeps used_sessions <= total_sessions even if a concurrent commit slipped in
// between validation and here.
func (r *PackageRepository) ConsumeSessions(ctx context.Context, id uuid.UUID, n int) error {
	tag, err := r.db.Exec(ctx, consumePackageSessionsSQL, id, n)
	if err != nil {
		return infra.WrapRepoErr("failed to consume package sessions", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("package has insufficient sessions", nil, infra.KindConflict)
	}
	return nil
}

const insertPackageBookingSQL = `
INSERT INTO package_bookings (
	id, package_id, booking_id, sessions_used, extra_charge, extra_charge_type
) VALUES ($1, $2, $3, $4, $5, $6)`

// InsertPackageBooking writes the immutable audit row tying a booking to the
// package sessions it consumed.
func (r *PackageRepository) InsertPackageBooking(ctx context.Context, packageID, bookingID uuid.UUID, sessionsUsed int, extraCharge int64, extraChargeKind string) error {
	var kind *string
	if extraChargeKind != "" {
		kind = &extraChargeKind
	}
	_, err := r.db.Exec(ctx, insertPackageBookingSQL,
		uuid.New(), packageID, bookingID, sessionsUsed, extraCharge, kind,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create package booking record", err)
	}
	return nil
}
