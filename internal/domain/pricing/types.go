package pricing

import (
	"crease/internal/domain/slot"
)

// PitchType is the wicket surface. Legacy and unrecognized values are folded
// into the canonical set by NormalizePitch.
type PitchType string

const (
	PitchAstro  PitchType = "ASTRO"
	PitchCement PitchType = "CEMENT"

	// Deprecated alias still present in stored package scopes.
	pitchTurf PitchType = "TURF"
)

// NormalizePitch maps TURF to CEMENT and anything unrecognized to ASTRO.
func NormalizePitch(raw string) PitchType {
	switch PitchType(raw) {
	case PitchCement:
		return PitchCement
	case pitchTurf:
		return PitchCement
	case PitchAstro:
		return PitchAstro
	default:
		return PitchAstro
	}
}

type BallType string

const (
	BallTennis  BallType = "TENNIS"
	BallMachine BallType = "MACHINE"
	BallLeather BallType = "LEATHER"
)

func (b BallType) IsValid() bool {
	switch b {
	case BallTennis, BallMachine, BallLeather:
		return true
	default:
		return false
	}
}

// SubType selects the rate table for a machine/ball combination.
type SubType string

const (
	SubTypeYantra  SubType = "yantra"
	SubTypeLeather SubType = "leather"
	SubTypeMachine SubType = "machine"
	SubTypeTennis  SubType = "tennis"
)

type MachineKind string

const (
	MachineYantra  MachineKind = "yantra"
	MachineBowling MachineKind = "bowling"
	MachineTennis  MachineKind = "tennis"
)

// MachineSpec is the pricing-relevant shape of a machine.
type MachineSpec struct {
	Kind           MachineKind
	LeatherCapable bool
}

// ResolveSubType picks the rate table. The yantra machine has its own table
// regardless of ball; other leather-capable machines branch on the ball flag;
// everything else prices as tennis.
func ResolveSubType(m MachineSpec, ball BallType) SubType {
	if !m.LeatherCapable {
		return SubTypeTennis
	}
	if m.Kind == MachineYantra {
		return SubTypeYantra
	}
	if ball == BallLeather {
		return SubTypeLeather
	}
	return SubTypeMachine
}

// Rate is a price pair in rupees: Single per slot, Consecutive per pair of
// adjacent slots.
type Rate struct {
	Single      int64 `json:"single"`
	Consecutive int64 `json:"consecutive"`
}

type RateKey struct {
	Sub   SubType
	Pitch PitchType
	Slab  slot.Slab
}

type Table map[RateKey]Rate
