package habit

import (
	"reflect"
	"testing"
	"time"

	"github.com/routinely/routinely/pkg/daykey"
)

// 2024-03-18 was a Monday.
const fallbackDay = daykey.DayKey("2024-03-18")

func TestNormalizeFrequency_DailyPassesThrough(t *testing.T) {
	got := NormalizeFrequency(Frequency{Kind: FrequencyDaily}, fallbackDay)
	if got.Kind != FrequencyDaily {
		t.Fatalf("got kind %q, want daily", got.Kind)
	}
}

func TestNormalizeFrequency_WeeklySanitizesDaySet(t *testing.T) {
	in := Frequency{
		Kind:       FrequencyWeekly,
		DaysOfWeek: []time.Weekday{5, 1, 3, 1, -2, 9, 5},
	}
	got := NormalizeFrequency(in, fallbackDay)

	want := []time.Weekday{time.Monday, time.Wednesday, time.Friday}
	if !reflect.DeepEqual(got.DaysOfWeek, want) {
		t.Fatalf("got %v, want %v", got.DaysOfWeek, want)
	}
}

func TestNormalizeFrequency_WeeklyEmptyFallsBackToFallbackWeekday(t *testing.T) {
	in := Frequency{Kind: FrequencyWeekly, DaysOfWeek: []time.Weekday{-1, 7}}
	got := NormalizeFrequency(in, fallbackDay)

	want := []time.Weekday{time.Monday}
	if !reflect.DeepEqual(got.DaysOfWeek, want) {
		t.Fatalf("got %v, want %v", got.DaysOfWeek, want)
	}
}

func TestNormalizeFrequency_IntervalClampsAndAnchors(t *testing.T) {
	in := Frequency{Kind: FrequencyInterval, IntervalDays: 0}
	got := NormalizeFrequency(in, fallbackDay)

	if got.IntervalDays != 1 {
		t.Fatalf("got interval %d, want 1", got.IntervalDays)
	}
	if got.AnchorDate != fallbackDay {
		t.Fatalf("got anchor %s, want fallback %s", got.AnchorDate, fallbackDay)
	}
}

func TestNormalizeFrequency_IntervalRepairsBadAnchor(t *testing.T) {
	in := Frequency{Kind: FrequencyInterval, IntervalDays: 3, AnchorDate: "garbage"}
	got := NormalizeFrequency(in, fallbackDay)

	if got.AnchorDate != fallbackDay {
		t.Fatalf("got anchor %s, want fallback %s", got.AnchorDate, fallbackDay)
	}
	if got.IntervalDays != 3 {
		t.Fatalf("got interval %d, want 3", got.IntervalDays)
	}
}

func TestNormalizeFrequency_UnknownKindBecomesDaily(t *testing.T) {
	got := NormalizeFrequency(Frequency{Kind: "fortnightly-ish"}, fallbackDay)
	if got.Kind != FrequencyDaily {
		t.Fatalf("got kind %q, want daily", got.Kind)
	}
}

func TestNormalizeFrequency_IsIdempotent(t *testing.T) {
	rules := []Frequency{
		{Kind: FrequencyDaily},
		{Kind: FrequencyWeekly, DaysOfWeek: []time.Weekday{6, 6, 0}},
		{Kind: FrequencyInterval, IntervalDays: -4, AnchorDate: "nope"},
		{Kind: "???"},
	}
	for _, r := range rules {
		once := NormalizeFrequency(r, fallbackDay)
		twice := NormalizeFrequency(once, fallbackDay)
		if !reflect.DeepEqual(once, twice) {
			t.Errorf("normalize not idempotent for %+v: %+v vs %+v", r, once, twice)
		}
	}
}
