package tcc

import (
	"fmt"
	"strings"
	"time"
)

// TimeOfDay is the (local) time at which a temporary override ends.
type TimeOfDay struct {
	Hours   int
	Minutes int
}

// DefaultUntil is the end time of a temporary override.
var DefaultUntil = TimeOfDay{Hours: 22, Minutes: 50}

// ParseTimeOfDay parses a time of day in HH:MM format.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", strings.TrimSpace(s))
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	return TimeOfDay{Hours: t.Hour(), Minutes: t.Minute()}, nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hours, t.Minutes)
}
