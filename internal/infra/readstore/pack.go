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

type PackageReadStore struct {
	db db.DBTX
}

func NewPackageReadStore(dbtx db.DBTX) *PackageReadStore {
	return &PackageReadStore{db: dbtx}
}

const packageSnapshotSQL = `
SELECT id, user_id, total_sessions, used_sessions, activated_at, expires_at,
       status, machine_id, ball_type, pitch_type, timing, amount_paid
FROM user_packages
WHERE id = $1`

func (r *PackageReadStore) SnapshotByID(ctx context.Context, id uuid.UUID) (*shared.PackageSnapshot, error) {
	var snap shared.PackageSnapshot
	err := r.db.QueryRow(ctx, packageSnapshotSQL, id).Scan(
		&snap.ID, &snap.UserID, &snap.TotalSessions, &snap.UsedSessions,
		&snap.ActivatedAt, &snap.ExpiresAt, &snap.Status, &snap.MachineID,
		&snap.Ball, &snap.Pitch, &snap.Timing, &snap.AmountPaid,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("package not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find package by ID", err)
	}
	return &snap, nil
}

const packagesByUserSQL = `
SELECT id, user_id, total_sessions, used_sessions, activated_at, expires_at,
       status, machine_id, ball_type, pitch_type, timing, amount_paid
FROM user_packages
WHERE user_id = $1
ORDER BY activated_at DESC`

// ListByUser returns package views with expiry resolved at read time, so a
// package past its window reads EXPIRED even before any write touched the row.
func (r *PackageReadStore) ListByUser(ctx context.Context, userID uuid.UUID, now time.Time) ([]*queries.PackageView, error) {
	rows, err := r.db.Query(ctx, packagesByUserSQL, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list packages by user", err)
	}
	defer rows.Close()

	var result []*queries.PackageView
	for rows.Next() {
		var v queries.PackageView
		if err := rows.Scan(
			&v.ID, &v.UserID, &v.TotalSessions, &v.UsedSessions,
			&v.ActivatedAt, &v.ExpiresAt, &v.Status, &v.MachineID,
			&v.BallType, &v.PitchType, &v.Timing, &v.AmountPaid,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan package row", err)
		}
		v.RemainingSessions = v.TotalSessions - v.UsedSessions
		if v.Status == "ACTIVE" && now.After(v.ExpiresAt) {
			v.Status = "EXPIRED"
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate package rows", err)
	}
	return result, nil
}
