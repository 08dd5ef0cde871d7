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

type SubscriptionReadStore struct {
	db db.DBTX
}

func NewSubscriptionReadStore(dbtx db.DBTX) *SubscriptionReadStore {
	return &SubscriptionReadStore{db: dbtx}
}

const subscriptionSnapshotSQL = `
SELECT id, user_id, plan_id, sessions_remaining, month_year, expires_at, status
FROM user_subscriptions
WHERE id = $1`

func (r *SubscriptionReadStore) SnapshotByID(ctx context.Context, id uuid.UUID) (*shared.SubscriptionSnapshot, error) {
	var snap shared.SubscriptionSnapshot
	err := r.db.QueryRow(ctx, subscriptionSnapshotSQL, id).Scan(
		&snap.ID, &snap.UserID, &snap.PlanID, &snap.SessionsRemaining,
		&snap.MonthYear, &snap.ExpiresAt, &snap.Status,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("subscription not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find subscription by ID", err)
	}
	return &snap, nil
}

const planByIDSQL = `
SELECT id, name, sessions_per_month, price_per_month
FROM subscription_plans
WHERE id = $1`

func (r *SubscriptionReadStore) PlanByID(ctx context.Context, id uuid.UUID) (*shared.PlanSnapshot, error) {
	var snap shared.PlanSnapshot
	err := r.db.QueryRow(ctx, planByIDSQL, id).Scan(
		&snap.ID, &snap.Name, &snap.SessionsPerMonth, &snap.PricePerMonth,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("plan not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find plan by ID", err)
	}
	return &snap, nil
}

const subscriptionsByUserSQL = `
SELECT s.id, s.user_id, s.plan_id, p.name, p.sessions_per_month,
       s.sessions_remaining, s.month_year, s.expires_at, s.status
FROM user_subscriptions s
JOIN subscription_plans p ON p.id = s.plan_id
WHERE s.user_id = $1
ORDER BY s.month_year DESC`

func (r *SubscriptionReadStore) ListByUser(ctx context.Context, userID uuid.UUID, now time.Time) ([]*queries.SubscriptionView, error) {
	rows, err := r.db.Query(ctx, subscriptionsByUserSQL, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list subscriptions by user", err)
	}
	defer rows.Close()

	var result []*queries.SubscriptionView
	for rows.Next() {
		var v queries.SubscriptionView
		if err := rows.Scan(
			&v.ID, &v.UserID, &v.PlanID, &v.PlanName, &v.SessionsPerMonth,
			&v.SessionsRemaining, &v.MonthYear, &v.ExpiresAt, &v.Status,
		); err != nil {
			return nil, infra.WrapRepoErr("failed to scan subscription row", err)
		}
		if v.Status == "ACTIVE" && now.After(v.ExpiresAt) {
			v.Status = "EXPIRED"
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate subscription rows", err)
	}
	return result, nil
}

const listPlansSQL = `
SELECT id, name, sessions_per_month, price_per_month
FROM subscription_plans
ORDER BY price_per_month`

func (r *SubscriptionReadStore) ListPlans(ctx context.Context) ([]*queries.PlanView, error) {
	rows, err := r.db.Query(ctx, listPlansSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list plans", err)
	}
	defer rows.Close()

	var result []*queries.PlanView
	for rows.Next() {
		var v queries.PlanView
		if err := rows.Scan(&v.ID, &v.Name, &v.SessionsPerMonth, &v.PricePerMonth); err != nil {
			return nil, infra.WrapRepoErr("failed to scan plan row", err)
		}
		result = append(result, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate plan rows", err)
	}
	return result, nil
}
