package repository

import (
	"context"

	"crease/internal/domain/subscription"
	"crease/internal/infra"
	"crease/internal/infra/db"

	"github.com/google/uuid"
)

type SubscriptionRepository struct {
	db db.DBTX
}

func NewSubscriptionRepository(dbtx db.DBTX) *SubscriptionRepository {
	return &SubscriptionRepository{db: dbtx}
}

const insertSubscriptionSQL = `
INSERT INTO user_subscriptions (
	id, user_id, plan_id, sessions_remaining, month_year, expires_at, status
) VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id`

// Insert relies on the unique index over (user_id, plan_id, month_year) for
// the one-subscription-per-month invariant.
func (r *SubscriptionRepository) Insert(ctx context.Context, s *subscription.Subscription) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, insertSubscriptionSQL,
		s.ID(), s.UserID(), s.PlanID(), s.SessionsRemaining(),
		s.MonthYear(), s.ExpiresAt(), string(subscription.StatusActive),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create subscription", err)
	}
	return id, nil
}

const debitSubscriptionSQL = `
UPDATE user_subscriptions
SET sessions_remaining = sessions_remaining - $2, updated_at = now()
WHERE id = $1
  AND status = 'ACTIVE'
  AND sessions_remaining >= $2`

func (r *SubscriptionRepository) DebitSessions(ctx context.Context, id uuid.UUID, n int) error {
	tag, err := r.db.Exec(ctx, debitSubscriptionSQL, id, n)
	if err != nil {
		return infra.WrapRepoErr("failed to debit subscription sessions", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("subscription has insufficient sessions", nil, infra.KindConflict)
	}
	return nil
}

const creditSubscriptionSQL = `
UPDATE user_subscriptions
SET sessions_remaining = LEAST(sessions_remaining + 1, $2), updated_at = now()
WHERE id = $1 AND status = 'ACTIVE'`

// CreditSession refunds one session, clamped to the plan's monthly allotment.
// The month-window policy check happens in the usecase before calling this.
func (r *SubscriptionRepository) CreditSession(ctx context.Context, id uuid.UUID, sessionsPerMonth int) error {
	tag, err := r.db.Exec(ctx, creditSubscriptionSQL, id, sessionsPerMonth)
	if err != nil {
		return infra.WrapRepoErr("failed to credit subscription session", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("subscription not active", nil, infra.KindConflict)
	}
	return nil
}
