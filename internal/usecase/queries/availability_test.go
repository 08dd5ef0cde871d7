//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"crease/internal/domain/pricing"
	"crease/internal/domain/slot"
	"crease/internal/infra"
	"crease/internal/pkg/clock"
	"crease/internal/usecase/queries"
	"crease/internal/usecase/shared"
	queriesmock "crease/tests/mock/queries"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var kolkata = func() *time.Location {
	loc, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		panic(err)
	}
	return loc
}()

type availabilityFixture struct {
	machines *queriesmock.MockMachineSnapshotRepo
	bookings *queriesmock.MockBookedSlotsRepo
	clock    *clock.MockClock
	q        queries.AvailabilityQueries
}

func newAvailabilityFixture(t *testing.T, now time.Time) *availabilityFixture {
	ctrl := gomock.NewController(t)
	machines := queriesmock.NewMockMachineSnapshotRepo(ctrl)
	bookings := queriesmock.NewMockBookedSlotsRepo(ctrl)
	clk := clock.NewMockClock(now)

	gridCfg := slot.Config{StartHour: 6, EndHour: 8, DurationMinutes: 30, Location: kolkata}
	slabs := slot.SlabConfig{EveningStartHour: 16, Location: kolkata}
	engine := pricing.NewEngine(pricing.DefaultTable(), slabs, true)

	return &availabilityFixture{
		machines: machines,
		bookings: bookings,
		clock:    clk,
		q:        queries.NewAvailabilityQueries(machines, bookings, engine, gridCfg, clk),
	}
}

func activeMachine(id uuid.UUID) *shared.MachineSnapshot {
	return &shared.MachineSnapshot{
		ID:             id,
		Name:           "Lane 1",
		Kind:           "bowling",
		LeatherCapable: false,
		Active:         true,
	}
}

func TestFreeSlots(t *testing.T) {
	machineID := uuid.New()
	day := time.Date(2026, 3, 14, 0, 0, 0, 0, kolkata)
	dayBefore := day.AddDate(0, 0, -1)

	t.Run("full grid when nothing is booked", func(t *testing.T) {
		f := newAvailabilityFixture(t, dayBefore)
		f.machines.EXPECT().FindByID(gomock.Any(), machineID).Return(activeMachine(machineID), nil)
		f.bookings.EXPECT().BookedStartTimes(gomock.Any(), machineID, gomock.Any(), gomock.Any()).Return(nil, nil)

		free, err := f.q.FreeSlots(context.Background(), machineID, day, "TENNIS", "ASTRO")
		require.NoError(t, err)

		require.Len(t, free, 4)
		starts := make([]time.Time, len(free))
		for i, s := range free {
			starts[i] = s.StartTime
		}
		want := []time.Time{
			time.Date(2026, 3, 14, 6, 0, 0, 0, kolkata),
			time.Date(2026, 3, 14, 6, 30, 0, 0, kolkata),
			time.Date(2026, 3, 14, 7, 0, 0, 0, kolkata),
			time.Date(2026, 3, 14, 7, 30, 0, 0, kolkata),
		}
		assert.Empty(t, cmp.Diff(want, starts))
		assert.Equal(t, "morning", free[0].Slab)
		assert.Equal(t, int64(600), free[0].Price)
	})

	t.Run("booked slots are removed", func(t *testing.T) {
		f := newAvailabilityFixture(t, dayBefore)
		taken := time.Date(2026, 3, 14, 6, 30, 0, 0, kolkata)
		f.machines.EXPECT().FindByID(gomock.Any(), machineID).Return(activeMachine(machineID), nil)
		f.bookings.EXPECT().BookedStartTimes(gomock.Any(), machineID, gomock.Any(), gomock.Any()).
			Return([]time.Time{taken}, nil)

		free, err := f.q.FreeSlots(context.Background(), machineID, day, "TENNIS", "ASTRO")
		require.NoError(t, err)

		require.Len(t, free, 3)
		for _, s := range free {
			assert.False(t, s.StartTime.Equal(taken))
		}
	})

	t.Run("booked instants match across timezones", func(t *testing.T) {
		f := newAvailabilityFixture(t, dayBefore)
		// Same instant as 06:30 IST, reported in UTC by the store.
		taken := time.Date(2026, 3, 14, 1, 0, 0, 0, time.UTC)
		f.machines.EXPECT().FindByID(gomock.Any(), machineID).Return(activeMachine(machineID), nil)
		f.bookings.EXPECT().BookedStartTimes(gomock.Any(), machineID, gomock.Any(), gomock.Any()).
			Return([]time.Time{taken}, nil)

		free, err := f.q.FreeSlots(context.Background(), machineID, day, "TENNIS", "ASTRO")
		require.NoError(t, err)
		require.Len(t, free, 3)
	})

	t.Run("past slots are hidden on the current day", func(t *testing.T) {
		midMorning := time.Date(2026, 3, 14, 6, 45, 0, 0, kolkata)
		f := newAvailabilityFixture(t, midMorning)
		f.machines.EXPECT().FindByID(gomock.Any(), machineID).Return(activeMachine(machineID), nil)
		f.bookings.EXPECT().BookedStartTimes(gomock.Any(), machineID, gomock.Any(), gomock.Any()).Return(nil, nil)

		free, err := f.q.FreeSlots(context.Background(), machineID, day, "TENNIS", "ASTRO")
		require.NoError(t, err)

		// 6:00 and 6:30 already started; 7:00 and 7:30 remain.
		require.Len(t, free, 2)
		assert.Equal(t, time.Date(2026, 3, 14, 7, 0, 0, 0, kolkata), free[0].StartTime)
	})

	t.Run("inactive machine yields an empty list", func(t *testing.T) {
		f := newAvailabilityFixture(t, dayBefore)
		inactive := activeMachine(machineID)
		inactive.Active = false
		f.machines.EXPECT().FindByID(gomock.Any(), machineID).Return(inactive, nil)

		free, err := f.q.FreeSlots(context.Background(), machineID, day, "TENNIS", "ASTRO")
		require.NoError(t, err)
		assert.Empty(t, free)
	})

	t.Run("unknown machine propagates not found", func(t *testing.T) {
		f := newAvailabilityFixture(t, dayBefore)
		notFound := infra.WrapRepoErr("machine not found", nil, infra.KindNotFound)
		f.machines.EXPECT().FindByID(gomock.Any(), machineID).Return(nil, notFound)

		_, err := f.q.FreeSlots(context.Background(), machineID, day, "TENNIS", "ASTRO")
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("prices follow the requested ball on a leather machine", func(t *testing.T) {
		f := newAvailabilityFixture(t, dayBefore)
		leather := activeMachine(machineID)
		leather.LeatherCapable = true
		f.machines.EXPECT().FindByID(gomock.Any(), machineID).Return(leather, nil)
		f.bookings.EXPECT().BookedStartTimes(gomock.Any(), machineID, gomock.Any(), gomock.Any()).Return(nil, nil)

		free, err := f.q.FreeSlots(context.Background(), machineID, day, "LEATHER", "CEMENT")
		require.NoError(t, err)

		require.NotEmpty(t, free)
		// Leather on cement, morning slab.
		assert.Equal(t, int64(1100), free[0].Price)
	})
}
