package slot

import (
	"errors"
	"sort"
	"time"
)

var (
	ErrInvalidWindow   = errors.New("facility window is invalid")
	ErrInvalidDuration = errors.New("slot duration must be positive")
)

// Config is the facility's daily bookable window. Hours are facility-local.
type Config struct {
	StartHour       int
	EndHour         int
	DurationMinutes int
	Location        *time.Location
}

func (c Config) Validate() error {
	if c.DurationMinutes <= 0 {
		return ErrInvalidDuration
	}
	if c.StartHour < 0 || c.EndHour > 24 || c.StartHour >= c.EndHour {
		return ErrInvalidWindow
	}
	return nil
}

// Window is one bookable slot: [Start, End) on a calendar day.
type Window struct {
	Start time.Time
	End   time.Time
}

func (w Window) Duration() time.Duration {
	return w.End.Sub(w.Start)
}

// Generate produces the ordered, contiguous, non-overlapping candidate slots
// for the calendar day containing `day` in the facility timezone. A trailing
// interval shorter than the configured duration is dropped.
func Generate(cfg Config, day time.Time) ([]Window, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}

	local := day.In(loc)
	y, m, d := local.Date()
	cursor := time.Date(y, m, d, cfg.StartHour, 0, 0, 0, loc)
	closing := time.Date(y, m, d, cfg.EndHour, 0, 0, 0, loc)
	step := time.Duration(cfg.DurationMinutes) * time.Minute

	var windows []Window
	for !cursor.Add(step).After(closing) {
		windows = append(windows, Window{Start: cursor, End: cursor.Add(step)})
		cursor = cursor.Add(step)
	}
	return windows, nil
}

// Consecutive reports whether the selection forms one unbroken run: sorted by
// start time, each window's end equals the next window's start, and there are
// at least two windows.
func Consecutive(windows []Window) bool {
	if len(windows) < 2 {
		return false
	}
	sorted := SortedByStart(windows)
	for i := 0; i < len(sorted)-1; i++ {
		if !sorted[i].End.Equal(sorted[i+1].Start) {
			return false
		}
	}
	return true
}

func SortedByStart(windows []Window) []Window {
	sorted := make([]Window, len(windows))
	copy(sorted, windows)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start.Before(sorted[j].Start)
	})
	return sorted
}
