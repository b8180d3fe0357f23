package habit

import (
	"slices"
	"time"

	"github.com/routinely/routinely/pkg/daykey"
)

// NormalizeFrequency repairs f into canonical form. It runs both when a
// habit is created or edited and when persisted state is loaded, so
// corrupt or legacy stored rules degrade to something usable instead of
// failing the load.
//
// Daily rules pass through. Weekly rules get their day set deduplicated,
// restricted to Sunday..Saturday and sorted; an empty result falls back
// to fallback's weekday. Interval rules get IntervalDays clamped to at
// least 1 and a missing or invalid anchor replaced with fallback. Any
// unrecognized kind collapses to daily.
func NormalizeFrequency(f Frequency, fallback daykey.DayKey) Frequency {
	switch f.Kind {
	case FrequencyDaily:
		return Frequency{Kind: FrequencyDaily}
	case FrequencyWeekly:
		days := slices.Clone(f.DaysOfWeek)
		slices.Sort(days)
		days = slices.Compact(days)
		days = slices.DeleteFunc(days, func(d time.Weekday) bool {
			return d < time.Sunday || d > time.Saturday
		})
		if len(days) == 0 {
			days = []time.Weekday{fallback.Weekday()}
		}
		return Frequency{Kind: FrequencyWeekly, DaysOfWeek: days}
	case FrequencyInterval:
		interval := f.IntervalDays
		if interval < 1 {
			interval = 1
		}
		anchor, err := daykey.Parse(f.AnchorDate.String())
		if err != nil {
			anchor = fallback
		}
		return Frequency{Kind: FrequencyInterval, IntervalDays: interval, AnchorDate: anchor}
	default:
		return Frequency{Kind: FrequencyDaily}
	}
}
