package queries

import (
	"context"
	"time"

	"crease/internal/domain/pricing"
	"crease/internal/domain/slot"
	"crease/internal/pkg/clock"
	"crease/internal/usecase/shared"

	"github.com/google/uuid"
)

type AvailabilityQueries interface {
	// FreeSlots returns the facility grid for the day minus occupied slots,
	// each annotated with its slab and single-session price for the requested
	// ball and pitch.
	FreeSlots(ctx context.Context, machineID uuid.UUID, date time.Time, ball, pitch string) ([]*FreeSlot, error)
}

type MachineSnapshotRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*shared.MachineSnapshot, error)
}

type BookedSlotsRepo interface {
	BookedStartTimes(ctx context.Context, machineID uuid.UUID, from, to time.Time) ([]time.Time, error)
}

type availabilityQueriesImpl struct {
	machines MachineSnapshotRepo
	bookings BookedSlotsRepo
	engine   *pricing.Engine
	gridCfg  slot.Config
	clock    clock.Clock
}

func NewAvailabilityQueries(
	machines MachineSnapshotRepo,
	bookings BookedSlotsRepo,
	engine *pricing.Engine,
	gridCfg slot.Config,
	clk clock.Clock,
) AvailabilityQueries {
	return &availabilityQueriesImpl{
		machines: machines,
		bookings: bookings,
		engine:   engine,
		gridCfg:  gridCfg,
		clock:    clk,
	}
}

func (q *availabilityQueriesImpl) FreeSlots(ctx context.Context, machineID uuid.UUID, date time.Time, ball, pitch string) ([]*FreeSlot, error) {
	machine, err := q.machines.FindByID(ctx, machineID)
	if err != nil {
		return nil, err
	}
	if !machine.Active {
		return []*FreeSlot{}, nil
	}

	grid, err := slot.Generate(q.gridCfg, date)
	if err != nil {
		return nil, err
	}
	if len(grid) == 0 {
		return []*FreeSlot{}, nil
	}

	booked, err := q.bookings.BookedStartTimes(ctx, machineID, grid[0].Start, grid[len(grid)-1].End)
	if err != nil {
		return nil, err
	}
	occupied := make(map[int64]struct{}, len(booked))
	for _, t := range booked {
		occupied[t.Unix()] = struct{}{}
	}

	spec := pricing.MachineSpec{
		Kind:           pricing.MachineKind(machine.Kind),
		LeatherCapable: machine.LeatherCapable,
	}
	sub := pricing.ResolveSubType(spec, pricing.BallType(ball))
	normalizedPitch := pricing.NormalizePitch(pitch)

	now := q.clock.Now()
	free := []*FreeSlot{}
	for _, w := range grid {
		if w.Start.Before(now) {
			continue
		}
		if _, taken := occupied[w.Start.Unix()]; taken {
			continue
		}
		sp := q.engine.PriceSlot(sub, normalizedPitch, w)
		free = append(free, &FreeSlot{
			StartTime: w.Start,
			EndTime:   w.End,
			Slab:      sp.Slab.String(),
			Price:     sp.Single,
		})
	}
	return free, nil
}
