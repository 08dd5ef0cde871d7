package queries

import (
	"context"
	"time"

	"crease/internal/pkg/clock"

	"github.com/google/uuid"
)

type SubscriptionQueries interface {
	ListMine(ctx context.Context, userID uuid.UUID) ([]*SubscriptionView, error)
	ListPlans(ctx context.Context) ([]*PlanView, error)
}

type SubscriptionViewRepo interface {
	ListByUser(ctx context.Context, userID uuid.UUID, now time.Time) ([]*SubscriptionView, error)
	ListPlans(ctx context.Context) ([]*PlanView, error)
}

type subscriptionQueriesImpl struct {
	repo  SubscriptionViewRepo
	clock clock.Clock
}

func NewSubscriptionQueries(repo SubscriptionViewRepo, clk clock.Clock) SubscriptionQueries {
	return &subscriptionQueriesImpl{repo: repo, clock: clk}
}

func (q *subscriptionQueriesImpl) ListMine(ctx context.Context, userID uuid.UUID) ([]*SubscriptionView, error) {
	return q.repo.ListByUser(ctx, userID, q.clock.Now())
}

func (q *subscriptionQueriesImpl) ListPlans(ctx context.Context) ([]*PlanView, error) {
	return q.repo.ListPlans(ctx)
}
