package pricing

import (
	"crease/internal/domain/slot"
)

// DefaultTable returns the compiled-in rate card. The config store may
// override individual entries; missing keys always resolve here.
func DefaultTable() Table {
	t := Table{}

	set := func(sub SubType, morning, evening Rate) {
		for _, pitch := range []PitchType{PitchAstro, PitchCement} {
			t[RateKey{sub, pitch, slot.SlabMorning}] = morning
			t[RateKey{sub, pitch, slot.SlabEvening}] = evening
		}
	}

	set(SubTypeTennis, Rate{Single: 600, Consecutive: 1000}, Rate{Single: 700, Consecutive: 1200})
	set(SubTypeMachine, Rate{Single: 800, Consecutive: 1400}, Rate{Single: 900, Consecutive: 1600})
	set(SubTypeLeather, Rate{Single: 1000, Consecutive: 1800}, Rate{Single: 1100, Consecutive: 2000})
	set(SubTypeYantra, Rate{Single: 1200, Consecutive: 2200}, Rate{Single: 1300, Consecutive: 2400})

	// Cement wickets carry a premium for hard-ball machines.
	t[RateKey{SubTypeLeather, PitchCement, slot.SlabMorning}] = Rate{Single: 1100, Consecutive: 2000}
	t[RateKey{SubTypeLeather, PitchCement, slot.SlabEvening}] = Rate{Single: 1200, Consecutive: 2200}
	t[RateKey{SubTypeYantra, PitchCement, slot.SlabMorning}] = Rate{Single: 1300, Consecutive: 2400}
	t[RateKey{SubTypeYantra, PitchCement, slot.SlabEvening}] = Rate{Single: 1400, Consecutive: 2600}

	return t
}

// Merge overlays non-zero entries from other onto a copy of t.
func (t Table) Merge(other Table) Table {
	merged := make(Table, len(t)+len(other))
	for k, v := range t {
		merged[k] = v
	}
	for k, v := range other {
		merged[k] = v
	}
	return merged
}

func (t Table) Rate(sub SubType, pitch PitchType, slab slot.Slab) Rate {
	if r, ok := t[RateKey{sub, pitch, slab}]; ok {
		return r
	}
	// Fall back to the astro entry, then to the tennis baseline.
	if r, ok := t[RateKey{sub, PitchAstro, slab}]; ok {
		return r
	}
	return t[RateKey{SubTypeTennis, PitchAstro, slab}]
}
