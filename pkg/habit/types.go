package habit

import (
	"time"

	"github.com/routinely/routinely/pkg/daykey"
)

type Type string

const (
	TypeCheckbox Type = "checkbox"
	TypeValue    Type = "value"
)

type FrequencyKind string

const (
	FrequencyDaily    FrequencyKind = "daily"
	FrequencyWeekly   FrequencyKind = "weekly"
	FrequencyInterval FrequencyKind = "interval"
)

// Frequency is a recurrence rule. Kind selects which of the remaining
// fields are meaningful: DaysOfWeek for weekly rules, IntervalDays and
// AnchorDate for interval rules.
type Frequency struct {
	Kind         FrequencyKind  `json:"kind"`
	DaysOfWeek   []time.Weekday `json:"days_of_week,omitempty"`
	IntervalDays int            `json:"interval_days,omitempty"`
	AnchorDate   daykey.DayKey  `json:"anchor_date,omitempty"`
}

// Habit is a recurring practice to track. Streak and LastCompletedOn are
// updated together, only by the completion transition.
type Habit struct {
	ID              string        `json:"id"`
	Title           string        `json:"title"`
	Type            Type          `json:"type"`
	Frequency       Frequency     `json:"frequency"`
	Streak          int           `json:"streak"`
	LastCompletedOn daykey.DayKey `json:"last_completed_on,omitempty"`
	CreatedOn       daykey.DayKey `json:"created_on"`
	ValueUnit       string        `json:"value_unit,omitempty"`
	DefaultTarget   *float64      `json:"default_target,omitempty"`
}

// Completion is one logged check-in. HabitTitle is denormalized so the
// log stays readable after the habit is renamed.
type Completion struct {
	ID            string        `json:"id"`
	HabitID       string        `json:"habit_id"`
	HabitTitle    string        `json:"habit_title"`
	CompletedOn   daykey.DayKey `json:"completed_on"`
	Value         *float64      `json:"value,omitempty"`
	PointsAwarded int           `json:"points_awarded"`
}

// Reward describes the outcome of a single completion event. It is
// handed back to the caller and never persisted.
type Reward struct {
	HabitID           string   `json:"habit_id"`
	HabitTitle        string   `json:"habit_title"`
	PointsAwarded     int      `json:"points_awarded"`
	NewStreak         int      `json:"new_streak"`
	MissedOccurrences int      `json:"missed_occurrences"`
	PenaltyApplied    int      `json:"penalty_applied"`
	ValueRecorded     *float64 `json:"value_recorded,omitempty"`
	ValueUnit         string   `json:"value_unit,omitempty"`
}
