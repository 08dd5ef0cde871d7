//go:build unit

package pricing_test

import (
	"testing"
	"time"

	"crease/internal/domain/pricing"
	"crease/internal/domain/slot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var kolkata = func() *time.Location {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		panic(err)
	}
	return loc
}()

func windowsAt(hours ...int) []slot.Window {
	out := make([]slot.Window, 0, len(hours)*2)
	for _, h := range hours {
		start := time.Date(2026, 3, 14, h, 0, 0, 0, kolkata)
		out = append(out,
			slot.Window{Start: start, End: start.Add(30 * time.Minute)},
			slot.Window{Start: start.Add(30 * time.Minute), End: start.Add(time.Hour)},
		)
	}
	return out
}

func newEngine(discount bool) *pricing.Engine {
	slabs := slot.SlabConfig{EveningStartHour: 16, Location: kolkata}
	return pricing.NewEngine(pricing.DefaultTable(), slabs, discount)
}

func TestQuote(t *testing.T) {
	engine := newEngine(true)

	t.Run("single slot charges the single rate", func(t *testing.T) {
		windows := windowsAt(9)[:1]
		q, err := engine.Quote(pricing.SubTypeTennis, pricing.PitchAstro, windows)
		require.NoError(t, err)

		assert.Equal(t, int64(600), q.Total)
		assert.Equal(t, int64(600), q.OriginalTotal)
		assert.False(t, q.HasSavings)
		assert.Empty(t, q.DiscountType)
	})

	t.Run("consecutive pair gets the pair rate", func(t *testing.T) {
		// Tennis morning: single 600, consecutive pair 1000.
		windows := windowsAt(9)
		q, err := engine.Quote(pricing.SubTypeTennis, pricing.PitchAstro, windows)
		require.NoError(t, err)

		assert.Equal(t, int64(1200), q.OriginalTotal)
		assert.Equal(t, int64(1000), q.Total)
		assert.Equal(t, int64(200), q.DiscountAmount)
		assert.Equal(t, pricing.DiscountTypeConsecutive, q.DiscountType)
		assert.True(t, q.HasSavings)
	})

	t.Run("four consecutive slots sum half pair rates", func(t *testing.T) {
		windows := windowsAt(9, 10)
		q, err := engine.Quote(pricing.SubTypeTennis, pricing.PitchAstro, windows)
		require.NoError(t, err)

		assert.Equal(t, int64(2400), q.OriginalTotal)
		assert.Equal(t, int64(2000), q.Total)
		assert.Equal(t, int64(400), q.DiscountAmount)
	})

	t.Run("broken run charges single rates", func(t *testing.T) {
		windows := append(windowsAt(9)[:1], windowsAt(11)[:1]...)
		q, err := engine.Quote(pricing.SubTypeTennis, pricing.PitchAstro, windows)
		require.NoError(t, err)

		assert.Equal(t, int64(1200), q.Total)
		assert.False(t, q.HasSavings)
	})

	t.Run("run spanning the slab boundary mixes rates", func(t *testing.T) {
		// 15:00-15:30 morning, 15:30-16:00 morning, then evening rates apply
		// per slot; the run is still unbroken so halves sum.
		start := time.Date(2026, 3, 14, 15, 0, 0, 0, kolkata)
		var windows []slot.Window
		for i := 0; i < 4; i++ {
			s := start.Add(time.Duration(i) * 30 * time.Minute)
			windows = append(windows, slot.Window{Start: s, End: s.Add(30 * time.Minute)})
		}
		q, err := engine.Quote(pricing.SubTypeTennis, pricing.PitchAstro, windows)
		require.NoError(t, err)

		// Morning 600/1000, evening 700/1200.
		assert.Equal(t, int64(600+600+700+700), q.OriginalTotal)
		assert.Equal(t, int64(500+500+600+600), q.Total)
		assert.True(t, q.HasSavings)
	})

	t.Run("discount needs strictly lower total", func(t *testing.T) {
		// An overlay where the pair rate gives no saving must not label a
		// discount on an equal total.
		table := pricing.DefaultTable().Merge(pricing.Table{
			{Sub: pricing.SubTypeTennis, Pitch: pricing.PitchAstro, Slab: slot.SlabMorning}: {Single: 600, Consecutive: 1200},
		})
		engine := pricing.NewEngine(table, slot.SlabConfig{EveningStartHour: 16, Location: kolkata}, true)

		q, err := engine.Quote(pricing.SubTypeTennis, pricing.PitchAstro, windowsAt(9))
		require.NoError(t, err)

		assert.Equal(t, int64(1200), q.Total)
		assert.False(t, q.HasSavings)
		assert.Zero(t, q.DiscountAmount)
	})

	t.Run("discount can be switched off", func(t *testing.T) {
		engine := newEngine(false)
		q, err := engine.Quote(pricing.SubTypeTennis, pricing.PitchAstro, windowsAt(9))
		require.NoError(t, err)

		assert.Equal(t, int64(1200), q.Total)
		assert.False(t, q.HasSavings)
	})

	t.Run("empty selection is rejected", func(t *testing.T) {
		_, err := engine.Quote(pricing.SubTypeTennis, pricing.PitchAstro, nil)
		assert.ErrorIs(t, err, pricing.ErrNoSlots)
	})
}

func TestPriceSlot(t *testing.T) {
	engine := newEngine(true)

	t.Run("evening slot uses the evening rate", func(t *testing.T) {
		w := windowsAt(18)[0]
		sp := engine.PriceSlot(pricing.SubTypeLeather, pricing.PitchCement, w)

		assert.Equal(t, slot.SlabEvening, sp.Slab)
		assert.Equal(t, int64(1200), sp.Single)
		assert.Equal(t, int64(1100), sp.ConsecutiveHalf)
	})
}

func TestNormalizePitch(t *testing.T) {
	cases := []struct {
		raw  string
		want pricing.PitchType
	}{
		{"ASTRO", pricing.PitchAstro},
		{"CEMENT", pricing.PitchCement},
		{"TURF", pricing.PitchCement},
		{"", pricing.PitchAstro},
		{"grass", pricing.PitchAstro},
	}
	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			assert.Equal(t, tc.want, pricing.NormalizePitch(tc.raw))
		})
	}
}

func TestResolveSubType(t *testing.T) {
	cases := []struct {
		name string
		spec pricing.MachineSpec
		ball pricing.BallType
		want pricing.SubType
	}{
		{
			name: "non leather machine always prices as tennis",
			spec: pricing.MachineSpec{Kind: pricing.MachineBowling, LeatherCapable: false},
			ball: pricing.BallLeather,
			want: pricing.SubTypeTennis,
		},
		{
			name: "yantra wins regardless of ball",
			spec: pricing.MachineSpec{Kind: pricing.MachineYantra, LeatherCapable: true},
			ball: pricing.BallTennis,
			want: pricing.SubTypeYantra,
		},
		{
			name: "leather ball on leather capable machine",
			spec: pricing.MachineSpec{Kind: pricing.MachineBowling, LeatherCapable: true},
			ball: pricing.BallLeather,
			want: pricing.SubTypeLeather,
		},
		{
			name: "machine ball on leather capable machine",
			spec: pricing.MachineSpec{Kind: pricing.MachineBowling, LeatherCapable: true},
			ball: pricing.BallMachine,
			want: pricing.SubTypeMachine,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, pricing.ResolveSubType(tc.spec, tc.ball))
		})
	}
}

func TestTableRateFallback(t *testing.T) {
	table := pricing.DefaultTable()

	t.Run("missing pitch falls back to astro", func(t *testing.T) {
		got := table.Rate(pricing.SubTypeTennis, pricing.PitchType("UNKNOWN"), slot.SlabMorning)
		assert.Equal(t, int64(600), got.Single)
	})
}
