//go:build unit

package slot_test

import (
	"testing"
	"time"

	"crease/internal/domain/slot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kolkata(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)
	return loc
}

func TestGenerate(t *testing.T) {
	loc := kolkata(t)
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, loc)

	t.Run("covers the full facility day", func(t *testing.T) {
		cfg := slot.Config{StartHour: 6, EndHour: 22, DurationMinutes: 30, Location: loc}
		windows, err := slot.Generate(cfg, day)
		require.NoError(t, err)

		require.Len(t, windows, 32)
		assert.Equal(t, time.Date(2026, 3, 14, 6, 0, 0, 0, loc), windows[0].Start)
		assert.Equal(t, time.Date(2026, 3, 14, 6, 30, 0, 0, loc), windows[0].End)
		assert.Equal(t, time.Date(2026, 3, 14, 21, 30, 0, 0, loc), windows[31].Start)
		assert.Equal(t, time.Date(2026, 3, 14, 22, 0, 0, 0, loc), windows[31].End)
	})

	t.Run("short window", func(t *testing.T) {
		cfg := slot.Config{StartHour: 6, EndHour: 8, DurationMinutes: 30, Location: loc}
		windows, err := slot.Generate(cfg, day)
		require.NoError(t, err)
		require.Len(t, windows, 4)
	})

	t.Run("drops a trailing partial slot", func(t *testing.T) {
		cfg := slot.Config{StartHour: 6, EndHour: 8, DurationMinutes: 45, Location: loc}
		windows, err := slot.Generate(cfg, day)
		require.NoError(t, err)

		// 6:00-6:45 and 6:45-7:30 fit; 7:30-8:15 would overrun closing.
		require.Len(t, windows, 2)
		assert.Equal(t, time.Date(2026, 3, 14, 7, 30, 0, 0, loc), windows[1].End)
	})

	t.Run("windows are contiguous and non-overlapping", func(t *testing.T) {
		cfg := slot.Config{StartHour: 6, EndHour: 22, DurationMinutes: 30, Location: loc}
		windows, err := slot.Generate(cfg, day)
		require.NoError(t, err)
		for i := 0; i < len(windows)-1; i++ {
			assert.True(t, windows[i].End.Equal(windows[i+1].Start))
		}
	})

	t.Run("resolves the day in the facility timezone", func(t *testing.T) {
		cfg := slot.Config{StartHour: 6, EndHour: 22, DurationMinutes: 30, Location: loc}
		// 2026-03-13 20:00 UTC is already 2026-03-14 in Kolkata.
		utcEvening := time.Date(2026, 3, 13, 20, 0, 0, 0, time.UTC)
		windows, err := slot.Generate(cfg, utcEvening)
		require.NoError(t, err)
		assert.Equal(t, 14, windows[0].Start.In(loc).Day())
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name  string
			cfg   slot.Config
			errIs error
		}{
			{
				name:  "zero duration",
				cfg:   slot.Config{StartHour: 6, EndHour: 22, DurationMinutes: 0, Location: loc},
				errIs: slot.ErrInvalidDuration,
			},
			{
				name:  "start after end",
				cfg:   slot.Config{StartHour: 22, EndHour: 6, DurationMinutes: 30, Location: loc},
				errIs: slot.ErrInvalidWindow,
			},
			{
				name:  "end past midnight",
				cfg:   slot.Config{StartHour: 6, EndHour: 25, DurationMinutes: 30, Location: loc},
				errIs: slot.ErrInvalidWindow,
			},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := slot.Generate(tc.cfg, day)
				assert.ErrorIs(t, err, tc.errIs)
			})
		}
	})
}

func TestConsecutive(t *testing.T) {
	loc := kolkata(t)
	at := func(h, m int) time.Time {
		return time.Date(2026, 3, 14, h, m, 0, 0, loc)
	}
	w := func(sh, sm, eh, em int) slot.Window {
		return slot.Window{Start: at(sh, sm), End: at(eh, em)}
	}

	cases := []struct {
		name    string
		windows []slot.Window
		want    bool
	}{
		{
			name:    "single slot is not a run",
			windows: []slot.Window{w(6, 0, 6, 30)},
			want:    false,
		},
		{
			name:    "two adjacent slots",
			windows: []slot.Window{w(6, 0, 6, 30), w(6, 30, 7, 0)},
			want:    true,
		},
		{
			name:    "unsorted input is sorted before checking",
			windows: []slot.Window{w(6, 30, 7, 0), w(6, 0, 6, 30)},
			want:    true,
		},
		{
			name:    "gap breaks the run",
			windows: []slot.Window{w(6, 0, 6, 30), w(7, 0, 7, 30)},
			want:    false,
		},
		{
			name:    "three slots with one gap",
			windows: []slot.Window{w(6, 0, 6, 30), w(6, 30, 7, 0), w(8, 0, 8, 30)},
			want:    false,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, slot.Consecutive(tc.windows))
		})
	}
}

func TestSlabFor(t *testing.T) {
	loc := kolkata(t)
	sc := slot.SlabConfig{EveningStartHour: 16, Location: loc}

	cases := []struct {
		name string
		hour int
		want slot.Slab
	}{
		{"opening hour", 6, slot.SlabMorning},
		{"just before the boundary", 15, slot.SlabMorning},
		{"boundary hour is evening", 16, slot.SlabEvening},
		{"closing hour", 21, slot.SlabEvening},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ts := time.Date(2026, 3, 14, tc.hour, 0, 0, 0, loc)
			assert.Equal(t, tc.want, sc.SlabFor(ts))
		})
	}

	t.Run("classifies in facility time regardless of input zone", func(t *testing.T) {
		// 11:00 UTC is 16:30 in Kolkata.
		ts := time.Date(2026, 3, 14, 11, 0, 0, 0, time.UTC)
		assert.Equal(t, slot.SlabEvening, sc.SlabFor(ts))
	})
}
