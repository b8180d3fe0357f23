package habit

import (
	"slices"

	"github.com/routinely/routinely/pkg/daykey"
)

// maxLookbackDays bounds the day-by-day scans below. It guarantees
// termination for pathological interval rules; a habit due less often
// than once a year reports no previous occurrence.
const maxLookbackDays = 365

// DueOn reports whether day is a scheduled occurrence of f.
func (f Frequency) DueOn(day daykey.DayKey) bool {
	switch f.Kind {
	case FrequencyDaily:
		return true
	case FrequencyWeekly:
		return slices.Contains(f.DaysOfWeek, day.Weekday())
	case FrequencyInterval:
		if day.Before(f.AnchorDate) {
			return false
		}
		interval := f.IntervalDays
		if interval < 1 {
			interval = 1
		}
		return daykey.DaysBetween(f.AnchorDate, day)%interval == 0
	default:
		return false
	}
}

// DueOn reports whether day is a scheduled occurrence of h's rule.
func (h Habit) DueOn(day daykey.DayKey) bool {
	return h.Frequency.DueOn(day)
}

// PreviousDueDate returns the nearest due day strictly before reference,
// or the zero key if none falls within the lookback window.
func PreviousDueDate(h Habit, reference daykey.DayKey) daykey.DayKey {
	cursor := reference.AddDays(-1)
	for steps := 1; steps <= maxLookbackDays; steps++ {
		if h.DueOn(cursor) {
			return cursor
		}
		cursor = cursor.AddDays(-1)
	}
	return ""
}

// CountMissedBetween counts due occurrences strictly after from and
// strictly before toExclusive. An absent from means the habit's creation
// day. Counting stops once the total exceeds the lookback cap, returning
// the partial count, so a long-abandoned habit cannot make the scan
// unbounded in the penalty it produces.
func CountMissedBetween(h Habit, from daykey.DayKey, toExclusive daykey.DayKey) int {
	if toExclusive.IsZero() {
		return 0
	}
	start := from
	if start.IsZero() {
		start = h.CreatedOn
	}

	missed := 0
	for cursor := start.AddDays(1); cursor.Before(toExclusive); cursor = cursor.AddDays(1) {
		if h.DueOn(cursor) {
			missed++
		}
		if missed > maxLookbackDays {
			break
		}
	}
	return missed
}

// ConsecutiveCompletion reports whether completing h on today continues
// the streak: the nearest due day before today must be the day the habit
// was last completed.
func ConsecutiveCompletion(h Habit, today daykey.DayKey) bool {
	if h.LastCompletedOn.IsZero() {
		return false
	}
	previousDue := PreviousDueDate(h, today)
	if previousDue.IsZero() {
		return false
	}
	return daykey.SameDay(previousDue, h.LastCompletedOn)
}
