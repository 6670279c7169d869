package plan

import (
	"time"

	"fitbot/internal/models"
)

// CyclePosition maps a calendar date onto a position of the repeating cycle.
// The cycle is periodic in both directions: dates before startDate resolve
// through the signed day difference, the result is always in [0, cycleLen).
func CyclePosition(startDate, targetDate time.Time, cycleLen int) (int, error) {
	if cycleLen <= 0 {
		return 0, ConfigurationError{Reason: "цикл пуст"}
	}
	pos := DaysBetween(startDate, targetDate) % cycleLen
	if pos < 0 {
		pos += cycleLen
	}
	return pos, nil
}

// DaysBetween returns the whole-day difference to - from, ignoring the
// time-of-day and location of both arguments.
func DaysBetween(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}

// ResolvedDay is the outcome of mapping a date onto the cycle.
type ResolvedDay struct {
	Position   int
	WorkoutKey string
	DayType    models.DayType
	// ContentMissing is set when a training key had no content in the
	// snapshot; the day degrades to rest.
	ContentMissing bool
}

// ResolveDay computes the cycle position and day type of targetDate under
// this snapshot. Pure function of its inputs.
func (s *Snapshot) ResolveDay(startDate, targetDate time.Time) (ResolvedDay, error) {
	pos, err := CyclePosition(startDate, targetDate, len(s.Def.CycleOrder))
	if err != nil {
		return ResolvedDay{}, err
	}

	key := s.Def.CycleOrder[pos]
	day := ResolvedDay{Position: pos, WorkoutKey: key, DayType: models.DayTypeTrain}

	if key == models.RestKey {
		day.DayType = models.DayTypeRest
		return day, nil
	}
	if _, ok := s.DayContent(key); !ok {
		day.DayType = models.DayTypeRest
		day.ContentMissing = true
	}
	return day, nil
}
