package commands

import (
	"context"
	"time"

	"crease/internal/domain/subscription"
	"crease/internal/infra"
	"crease/internal/pkg/clock"
	"crease/internal/pkg/errs"
	"crease/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrPlanNotFound       = errs.New("subscription plan not found")
	ErrSubscriptionExists = errs.New("subscription already exists for this month")
)

type SubscriptionCommands interface {
	Issue(ctx context.Context, userID, planID uuid.UUID) (uuid.UUID, error)
}

type subscriptionUseCaseImpl struct {
	uow      shared.UnitOfWork
	location *time.Location
	clock    clock.Clock
}

func NewSubscriptionUseCase(uow shared.UnitOfWork, location *time.Location, clk clock.Clock) SubscriptionCommands {
	return &subscriptionUseCaseImpl{uow: uow, location: location, clock: clk}
}

// Issue creates the current month's allotment for (user, plan). The unique
// index over (user_id, plan_id, month_year) makes a second issue in the same
// month a conflict.
func (u *subscriptionUseCaseImpl) Issue(ctx context.Context, userID, planID uuid.UUID) (uuid.UUID, error) {
	now := u.clock.Now().In(u.location)
	monthYear := now.Format("2006-01")
	expiresAt := endOfMonth(now)

	var id uuid.UUID
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		planSnap, err := tx.Reads().PlanByID(ctx, planID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrPlanNotFound
			}
			return errs.Mark(err, ErrStoreFailed)
		}

		sub := subscription.New(userID, subscription.Plan{
			ID:               planSnap.ID,
			Name:             planSnap.Name,
			SessionsPerMonth: planSnap.SessionsPerMonth,
			PricePerMonth:    planSnap.PricePerMonth,
		}, monthYear, expiresAt)

		id, err = tx.Subscriptions().Insert(ctx, sub)
		if err != nil {
			if infra.IsKind(err, infra.KindConflict) {
				return ErrSubscriptionExists
			}
			return errs.Mark(err, ErrStoreFailed)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func endOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m+1, 1, 0, 0, 0, 0, t.Location()).Add(-time.Second)
}
