package readstore

import (
	"context"

	"crease/internal/infra"
	"crease/internal/infra/db"
	"crease/internal/usecase/queries"
	"crease/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type MachineReadStore struct {
	db db.DBTX
}

func NewMachineReadStore(dbtx db.DBTX) *MachineReadStore {
	return &MachineReadStore{db: dbtx}
}

const machineByIDSQL = `
SELECT id, name, kind, leather_capable, active
FROM machines
WHERE id = $1`

func (r *MachineReadStore) FindByID(ctx context.Context, id uuid.UUID) (*shared.MachineSnapshot, error) {
	var snap shared.MachineSnapshot
	err := r.db.QueryRow(ctx, machineByIDSQL, id).Scan(
		&snap.ID, &snap.Name, &snap.Kind, &snap.LeatherCapable, &snap.Active,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("machine not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find machine by ID", err)
	}
	return &snap, nil
}

const listActiveMachinesSQL = `
SELECT id, name, kind, leather_capable
FROM machines
WHERE active
ORDER BY name`

func (r *MachineReadStore) ListActive(ctx context.Context) ([]*queries.MachineView, error) {
	rows, err := r.db.Query(ctx, listActiveMachinesSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list machines", err)
	}
	defer rows.Close()

	var result []*queries.MachineView
	for rows.Next() {
		var v queries.MachineView
		if err := rows.Scan(&v.ID, &v.Name, &v.Kind, &v.LeatherCapable); err != nil {
			return nil, infra.WrapRepoErr("failed to scan machine row", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate machine rows", err)
	}
	return result, nil
}
