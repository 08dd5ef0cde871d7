//go:build unit || e2e

package builder

import (
	"time"

	domsub "crease/internal/domain/subscription"
	"crease/internal/usecase/shared"

	"github.com/google/uuid"
)

type SubscriptionBuilder struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	PlanID            uuid.UUID
	PlanName          string
	SessionsPerMonth  int
	PricePerMonth     int64
	SessionsRemaining int
	MonthYear         string
	ExpiresAt         time.Time
	Status            domsub.Status
}

func NewSubscriptionBuilder() *SubscriptionBuilder {
	now := time.Now()
	endOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).
		AddDate(0, 1, 0).Add(-time.Second)
	return &SubscriptionBuilder{
		ID:                uuid.New(),
		UserID:            uuid.New(),
		PlanID:            uuid.New(),
		PlanName:          "Monthly 12",
		SessionsPerMonth:  12,
		PricePerMonth:     6000,
		SessionsRemaining: 12,
		MonthYear:         now.Format("2006-01"),
		ExpiresAt:         endOfMonth,
		Status:            domsub.StatusActive,
	}
}

func (b *SubscriptionBuilder) With(mutate func(*SubscriptionBuilder)) *SubscriptionBuilder {
	mutate(b)
	return b
}

func (b *SubscriptionBuilder) Plan() domsub.Plan {
	return domsub.Plan{
		ID:               b.PlanID,
		Name:             b.PlanName,
		SessionsPerMonth: b.SessionsPerMonth,
		PricePerMonth:    b.PricePerMonth,
	}
}

func (b *SubscriptionBuilder) BuildDomain() *domsub.Subscription {
	return domsub.Reconstruct(
		b.ID, b.UserID, b.PlanID, b.SessionsRemaining,
		b.MonthYear, b.ExpiresAt, b.Status,
	)
}

func (b *SubscriptionBuilder) BuildSnapshot() *shared.SubscriptionSnapshot {
	return &shared.SubscriptionSnapshot{
		ID:                b.ID,
		UserID:            b.UserID,
		PlanID:            b.PlanID,
		SessionsRemaining: b.SessionsRemaining,
		MonthYear:         b.MonthYear,
		ExpiresAt:         b.ExpiresAt,
		Status:            string(b.Status),
	}
}

func (b *SubscriptionBuilder) BuildPlanSnapshot() *shared.PlanSnapshot {
	return &shared.PlanSnapshot{
		ID:               b.PlanID,
		Name:             b.PlanName,
		SessionsPerMonth: b.SessionsPerMonth,
		PricePerMonth:    b.PricePerMonth,
	}
}
