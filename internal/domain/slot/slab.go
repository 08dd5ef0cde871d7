package slot

import "time"

// Slab is the named period of day used as a pricing dimension.
type Slab string

const (
	SlabMorning Slab = "morning"
	SlabEvening Slab = "evening"
)

func (s Slab) String() string {
	return string(s)
}

// SlabConfig maps hour-of-day to a slab. Hours before EveningStartHour count
// as morning.
type SlabConfig struct {
	EveningStartHour int
	Location         *time.Location
}

func (sc SlabConfig) SlabFor(t time.Time) Slab {
	loc := sc.Location
	if loc == nil {
		loc = time.UTC
	}
	if t.In(loc).Hour() >= sc.EveningStartHour {
		return SlabEvening
	}
	return SlabMorning
}
