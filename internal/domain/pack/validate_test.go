//go:build unit

package pack_test

import (
	"testing"
	"time"

	"crease/internal/domain/pack"
	"crease/internal/domain/pricing"
	"crease/internal/domain/slot"
	"crease/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateUse(t *testing.T) {
	now := time.Now()
	surcharges := pack.DefaultSurcharges()

	baseRequest := func(b *builder.PackageBuilder) pack.UseRequest {
		return pack.UseRequest{
			UserID:   b.UserID,
			Ball:     b.Ball,
			Pitch:    b.Pitch,
			Slab:     slot.SlabMorning,
			Sessions: 1,
		}
	}

	t.Run("in-scope use has no extra charge", func(t *testing.T) {
		b := builder.NewPackageBuilder()
		quote, err := b.BuildDomain().ValidateUse(baseRequest(b), surcharges, now)
		require.NoError(t, err)
		assert.Zero(t, quote.ExtraCharge)
		assert.Empty(t, quote.ExtraChargeKind)
	})

	t.Run("rejections", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*builder.PackageBuilder)
			req    func(*builder.PackageBuilder) pack.UseRequest
			errIs  error
		}{
			{
				name: "zero sessions",
				req: func(b *builder.PackageBuilder) pack.UseRequest {
					r := baseRequest(b)
					r.Sessions = 0
					return r
				},
				errIs: pack.ErrInvalidSessionCount,
			},
			{
				name: "different owner",
				req: func(b *builder.PackageBuilder) pack.UseRequest {
					r := baseRequest(b)
					r.UserID = uuid.New()
					return r
				},
				errIs: pack.ErrNotOwner,
			},
			{
				name:   "expired package",
				mutate: func(b *builder.PackageBuilder) { b.ExpiresAt = now.Add(-time.Hour) },
				errIs:  pack.ErrExpired,
			},
			{
				name:   "cancelled package",
				mutate: func(b *builder.PackageBuilder) { b.Status = pack.StatusCancelled },
				errIs:  pack.ErrNotActive,
			},
			{
				name:   "insufficient sessions",
				mutate: func(b *builder.PackageBuilder) { b.UsedSessions = b.TotalSessions },
				errIs:  pack.ErrInsufficientSessions,
			},
			{
				name: "downgrade has no surcharge entry",
				mutate: func(b *builder.PackageBuilder) {
					b.Ball = pricing.BallLeather
				},
				req: func(b *builder.PackageBuilder) pack.UseRequest {
					r := baseRequest(b)
					r.Ball = pricing.BallMachine
					return r
				},
				errIs: pack.ErrScopeMismatch,
			},
			{
				name: "machine locked package on another machine",
				mutate: func(b *builder.PackageBuilder) {
					id := uuid.New()
					b.MachineID = &id
				},
				req: func(b *builder.PackageBuilder) pack.UseRequest {
					r := baseRequest(b)
					other := uuid.New()
					r.MachineID = &other
					return r
				},
				errIs: pack.ErrMachineMismatch,
			},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				b := builder.NewPackageBuilder()
				if tc.mutate != nil {
					tc.mutate(b)
				}
				req := baseRequest(b)
				if tc.req != nil {
					req = tc.req(b)
				}
				_, err := b.BuildDomain().ValidateUse(req, surcharges, now)
				assert.ErrorIs(t, err, tc.errIs)
			})
		}
	})

	t.Run("ownership is checked before expiry", func(t *testing.T) {
		b := builder.NewPackageBuilder().With(func(b *builder.PackageBuilder) {
			b.ExpiresAt = now.Add(-time.Hour)
		})
		req := baseRequest(b)
		req.UserID = uuid.New()

		_, err := b.BuildDomain().ValidateUse(req, surcharges, now)
		assert.ErrorIs(t, err, pack.ErrNotOwner)
	})

	t.Run("surcharges", func(t *testing.T) {
		t.Run("ball upgrade", func(t *testing.T) {
			b := builder.NewPackageBuilder().With(func(b *builder.PackageBuilder) {
				b.Ball = pricing.BallMachine
			})
			req := baseRequest(b)
			req.Ball = pricing.BallLeather

			quote, err := b.BuildDomain().ValidateUse(req, surcharges, now)
			require.NoError(t, err)
			assert.Equal(t, int64(200), quote.ExtraCharge)
			assert.Equal(t, pack.SurchargeBallType, quote.ExtraChargeKind)
		})

		t.Run("pitch upgrade", func(t *testing.T) {
			b := builder.NewPackageBuilder()
			req := baseRequest(b)
			req.Pitch = pricing.PitchCement

			quote, err := b.BuildDomain().ValidateUse(req, surcharges, now)
			require.NoError(t, err)
			assert.Equal(t, int64(100), quote.ExtraCharge)
			assert.Equal(t, pack.SurchargeWicketType, quote.ExtraChargeKind)
		})

		t.Run("morning package in an evening slot", func(t *testing.T) {
			b := builder.NewPackageBuilder().With(func(b *builder.PackageBuilder) {
				b.Timing = slot.SlabMorning
			})
			req := baseRequest(b)
			req.Slab = slot.SlabEvening

			quote, err := b.BuildDomain().ValidateUse(req, surcharges, now)
			require.NoError(t, err)
			assert.Equal(t, int64(150), quote.ExtraCharge)
			assert.Equal(t, pack.SurchargeTimingType, quote.ExtraChargeKind)
		})

		t.Run("any timing package never pays timing surcharge", func(t *testing.T) {
			b := builder.NewPackageBuilder()
			req := baseRequest(b)
			req.Slab = slot.SlabEvening

			quote, err := b.BuildDomain().ValidateUse(req, surcharges, now)
			require.NoError(t, err)
			assert.Zero(t, quote.ExtraCharge)
		})

		t.Run("stacked upgrades sum and scale with sessions", func(t *testing.T) {
			b := builder.NewPackageBuilder().With(func(b *builder.PackageBuilder) {
				b.Ball = pricing.BallMachine
				b.Timing = slot.SlabMorning
			})
			req := baseRequest(b)
			req.Ball = pricing.BallLeather
			req.Pitch = pricing.PitchCement
			req.Slab = slot.SlabEvening
			req.Sessions = 2

			quote, err := b.BuildDomain().ValidateUse(req, surcharges, now)
			require.NoError(t, err)
			// (200 + 100 + 150) per session, two sessions.
			assert.Equal(t, int64(900), quote.ExtraCharge)
		})
	})
}

func TestPackageLifecycle(t *testing.T) {
	now := time.Now()

	t.Run("lazy expiry overrules a stored active flag", func(t *testing.T) {
		b := builder.NewPackageBuilder().With(func(b *builder.PackageBuilder) {
			b.ExpiresAt = now.Add(-time.Minute)
		})
		assert.Equal(t, pack.StatusExpired, b.BuildDomain().EffectiveStatus(now))
	})

	t.Run("consume guards capacity", func(t *testing.T) {
		p := builder.NewPackageBuilder().With(func(b *builder.PackageBuilder) {
			b.TotalSessions = 3
			b.UsedSessions = 2
		}).BuildDomain()

		require.NoError(t, p.ConsumeSessions(1))
		assert.Zero(t, p.Remaining())
		assert.ErrorIs(t, p.ConsumeSessions(1), pack.ErrSessionsExhausted)
	})

	t.Run("new package rejects non positive sessions", func(t *testing.T) {
		_, err := pack.NewPackage(uuid.New(), 0, now, now.AddDate(0, 0, 30), pack.Scope{}, 0)
		assert.ErrorIs(t, err, pack.ErrInvalidSessionCount)
	})
}
