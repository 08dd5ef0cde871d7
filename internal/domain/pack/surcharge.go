package pack

import (
	"crease/internal/domain/pricing"
	"crease/internal/domain/slot"
)

type SurchargeKind string

const (
	SurchargeBallType   SurchargeKind = "BALL_TYPE"
	SurchargeWicketType SurchargeKind = "WICKET_TYPE"
	SurchargeTimingType SurchargeKind = "TIMING_TYPE"
)

// Surcharge is the per-session upcharge for booking an attribute above the
// package's scope.
type Surcharge struct {
	Kind             SurchargeKind
	AmountPerSession int64
}

type ballUpgrade struct {
	from, to pricing.BallType
}

type pitchUpgrade struct {
	from, to pricing.PitchType
}

// SurchargeTable is the explicit upgrade matrix. An entry means the upgrade is
// allowed at the listed per-session price; absence means the mismatch rejects
// outright.
type SurchargeTable struct {
	Ball   map[ballUpgrade]Surcharge
	Pitch  map[pitchUpgrade]Surcharge
	Timing map[slot.Slab]Surcharge // keyed by the requested slab
}

// DefaultSurcharges covers the upgrades the facility sells: machine ball to
// leather, astro wicket to cement, and morning-scoped packages booking
// evening slots.
func DefaultSurcharges() SurchargeTable {
	return SurchargeTable{
		Ball: map[ballUpgrade]Surcharge{
			{pricing.BallMachine, pricing.BallLeather}: {Kind: SurchargeBallType, AmountPerSession: 200},
		},
		Pitch: map[pitchUpgrade]Surcharge{
			{pricing.PitchAstro, pricing.PitchCement}: {Kind: SurchargeWicketType, AmountPerSession: 100},
		},
		Timing: map[slot.Slab]Surcharge{
			slot.SlabEvening: {Kind: SurchargeTimingType, AmountPerSession: 150},
		},
	}
}

// SetBallUpgrade registers or replaces a ball upgrade entry.
func (t SurchargeTable) SetBallUpgrade(from, to pricing.BallType, s Surcharge) {
	t.Ball[ballUpgrade{from, to}] = s
}

// SetPitchUpgrade registers or replaces a wicket upgrade entry.
func (t SurchargeTable) SetPitchUpgrade(from, to pricing.PitchType, s Surcharge) {
	t.Pitch[pitchUpgrade{from, to}] = s
}

// SetTimingUpgrade registers or replaces the surcharge for booking into slab.
func (t SurchargeTable) SetTimingUpgrade(slab slot.Slab, s Surcharge) {
	t.Timing[slab] = s
}

func (t SurchargeTable) ballUpgrade(from, to pricing.BallType) (Surcharge, bool) {
	s, ok := t.Ball[ballUpgrade{from, to}]
	return s, ok
}

func (t SurchargeTable) pitchUpgrade(from, to pricing.PitchType) (Surcharge, bool) {
	s, ok := t.Pitch[pitchUpgrade{from, to}]
	return s, ok
}

func (t SurchargeTable) timingUpgrade(requested slot.Slab) (Surcharge, bool) {
	s, ok := t.Timing[requested]
	return s, ok
}
