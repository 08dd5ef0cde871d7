package readstore

import (
	"context"

	"crease/internal/infra"
	"crease/internal/infra/db"

	"github.com/jackc/pgx/v5"
)

// SettingsReadStore reads operator overrides from the configs table. Values
// are raw JSON; callers unmarshal into their own types.
type SettingsReadStore struct {
	db db.DBTX
}

func NewSettingsReadStore(dbtx db.DBTX) *SettingsReadStore {
	return &SettingsReadStore{db: dbtx}
}

const settingByKeySQL = `
SELECT value
FROM configs
WHERE key = $1`

func (r *SettingsReadStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRow(ctx, settingByKeySQL, key).Scan(&value)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("setting not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read setting", err)
	}
	return value, nil
}
