//go:build unit

package subscription_test

import (
	"testing"
	"time"

	"crease/internal/domain/subscription"
	"crease/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateUse(t *testing.T) {
	now := time.Now()

	t.Run("active with balance", func(t *testing.T) {
		b := builder.NewSubscriptionBuilder()
		assert.NoError(t, b.BuildDomain().ValidateUse(b.UserID, 1, now))
	})

	cases := []struct {
		name   string
		mutate func(*builder.SubscriptionBuilder)
		userID func(*builder.SubscriptionBuilder) uuid.UUID
		n      int
		errIs  error
	}{
		{
			name:  "zero sessions",
			n:     0,
			errIs: subscription.ErrInvalidSessionCount,
		},
		{
			name:   "different owner",
			userID: func(*builder.SubscriptionBuilder) uuid.UUID { return uuid.New() },
			n:      1,
			errIs:  subscription.ErrNotOwner,
		},
		{
			name:   "expired",
			mutate: func(b *builder.SubscriptionBuilder) { b.ExpiresAt = now.Add(-time.Hour) },
			n:      1,
			errIs:  subscription.ErrExpired,
		},
		{
			name:   "insufficient balance",
			mutate: func(b *builder.SubscriptionBuilder) { b.SessionsRemaining = 1 },
			n:      2,
			errIs:  subscription.ErrInsufficientSessions,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builder.NewSubscriptionBuilder()
			if tc.mutate != nil {
				tc.mutate(b)
			}
			userID := b.UserID
			if tc.userID != nil {
				userID = tc.userID(b)
			}
			err := b.BuildDomain().ValidateUse(userID, tc.n, now)
			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}

func TestDebitSessions(t *testing.T) {
	t.Run("debit reduces the balance", func(t *testing.T) {
		s := builder.NewSubscriptionBuilder().BuildDomain()
		s.DebitSessions(3)
		assert.Equal(t, 9, s.SessionsRemaining())
	})

	t.Run("balance never goes below zero", func(t *testing.T) {
		b := builder.NewSubscriptionBuilder().With(func(b *builder.SubscriptionBuilder) {
			b.SessionsRemaining = 2
		})
		s := b.BuildDomain()
		s.DebitSessions(5)
		assert.Zero(t, s.SessionsRemaining())
	})
}

func TestCreditSession(t *testing.T) {
	now := time.Now()

	t.Run("credit restores one session", func(t *testing.T) {
		b := builder.NewSubscriptionBuilder().With(func(b *builder.SubscriptionBuilder) {
			b.SessionsRemaining = 5
		})
		s := b.BuildDomain()
		require.True(t, s.CreditSession(b.Plan(), now))
		assert.Equal(t, 6, s.SessionsRemaining())
	})

	t.Run("credit clamps at the plan allotment", func(t *testing.T) {
		b := builder.NewSubscriptionBuilder() // full balance
		s := b.BuildDomain()
		require.True(t, s.CreditSession(b.Plan(), now))
		assert.Equal(t, b.SessionsPerMonth, s.SessionsRemaining())
	})

	t.Run("no credit after the subscription month ends", func(t *testing.T) {
		b := builder.NewSubscriptionBuilder().With(func(b *builder.SubscriptionBuilder) {
			// Stored ACTIVE but the funded month is over; lazy expiry kicks in
			// at credit time and the session is forfeited.
			b.ExpiresAt = now.AddDate(0, -1, 0)
			b.SessionsRemaining = 5
		})
		s := b.BuildDomain()
		assert.False(t, s.CreditSession(b.Plan(), now))
		assert.Equal(t, 5, s.SessionsRemaining())
	})

	t.Run("no credit outside the funded calendar month", func(t *testing.T) {
		b := builder.NewSubscriptionBuilder().With(func(b *builder.SubscriptionBuilder) {
			// Still active, but the expiry lands in a future month, so the
			// credit would cross a month boundary.
			b.ExpiresAt = now.AddDate(0, 2, 0)
			b.SessionsRemaining = 5
		})
		s := b.BuildDomain()
		assert.False(t, s.CreditSession(b.Plan(), now))
		assert.Equal(t, 5, s.SessionsRemaining())
	})

	t.Run("month boundary is judged on the facility calendar", func(t *testing.T) {
		kolkata, err := time.LoadLocation("Asia/Kolkata")
		require.NoError(t, err)

		b := builder.NewSubscriptionBuilder().With(func(b *builder.SubscriptionBuilder) {
			b.MonthYear = "2026-04"
			b.ExpiresAt = time.Date(2026, 4, 30, 23, 59, 59, 0, kolkata)
			b.SessionsRemaining = 5
		})
		s := b.BuildDomain()

		// 18:40 UTC on Mar 31 is already Apr 1 00:10 at the facility; the
		// credit must land even though the server clock still reads March.
		cancelledAt := time.Date(2026, 3, 31, 18, 40, 0, 0, time.UTC)
		require.True(t, s.CreditSession(b.Plan(), cancelledAt))
		assert.Equal(t, 6, s.SessionsRemaining())
	})

	t.Run("no credit on an expired subscription", func(t *testing.T) {
		b := builder.NewSubscriptionBuilder().With(func(b *builder.SubscriptionBuilder) {
			b.Status = subscription.StatusExpired
		})
		s := b.BuildDomain()
		assert.False(t, s.CreditSession(b.Plan(), now))
	})
}

func TestEffectiveStatus(t *testing.T) {
	now := time.Now()

	t.Run("stored active flag is overruled past expiry", func(t *testing.T) {
		b := builder.NewSubscriptionBuilder().With(func(b *builder.SubscriptionBuilder) {
			b.ExpiresAt = now.Add(-time.Second)
		})
		assert.Equal(t, subscription.StatusExpired, b.BuildDomain().EffectiveStatus(now))
	})

	t.Run("active until expiry", func(t *testing.T) {
		b := builder.NewSubscriptionBuilder()
		assert.Equal(t, subscription.StatusActive, b.BuildDomain().EffectiveStatus(now))
	})
}

func TestNew(t *testing.T) {
	t.Run("issues the full monthly allotment", func(t *testing.T) {
		b := builder.NewSubscriptionBuilder()
		s := subscription.New(b.UserID, b.Plan(), "2026-08", time.Now().AddDate(0, 1, 0))

		assert.Equal(t, b.SessionsPerMonth, s.SessionsRemaining())
		assert.Equal(t, "2026-08", s.MonthYear())
		assert.Equal(t, subscription.StatusActive, s.EffectiveStatus(time.Now()))
	})
}
