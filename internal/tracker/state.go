package tracker

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/routinely/routinely/internal/logger"
	"github.com/routinely/routinely/pkg/daykey"
	"github.com/routinely/routinely/pkg/habit"
)

const (
	// completionLogLimit caps the retained completion log; the oldest
	// entries are dropped first.
	completionLogLimit = 200

	missedOccurrencePenalty = 5
)

// State is the whole tracked aggregate: the habit collection, the
// completion log and the running point total. Transitions below are pure
// functions from a State to a new State; callers replace the aggregate
// wholesale, which is what makes a completion atomic.
type State struct {
	Habits      []habit.Habit      `json:"habits"`
	Completions []habit.Completion `json:"completions"`
	TotalPoints int                `json:"total_points"`
}

// HabitInput is the caller-supplied shape for creating or editing a
// habit.
type HabitInput struct {
	Title         string          `json:"title"`
	Type          habit.Type      `json:"type"`
	Frequency     habit.Frequency `json:"frequency"`
	ValueUnit     string          `json:"value_unit,omitempty"`
	DefaultTarget *float64        `json:"default_target,omitempty"`
}

// HydrateState rebuilds a State from a persisted snapshot, repairing
// each field to a safe default so schema drift or partial corruption
// degrades instead of failing the load. A payload that cannot be parsed
// at all yields the empty aggregate; the snapshot is fully regenerated
// on the next mutation anyway.
func HydrateState(raw []byte, today daykey.DayKey) State {
	if len(raw) == 0 {
		return State{}
	}

	var s State
	if err := json.Unmarshal(raw, &s); err != nil {
		logger.Warn("Discarding unreadable state snapshot", "error", err)
		return State{}
	}

	for i := range s.Habits {
		s.Habits[i] = repairHabit(s.Habits[i], today)
	}

	repaired := s.Completions[:0]
	for _, c := range s.Completions {
		if c.HabitID == "" {
			continue
		}
		repaired = append(repaired, repairCompletion(c, today))
	}
	s.Completions = repaired

	if s.TotalPoints < 0 {
		s.TotalPoints = 0
	}
	return s
}

func repairHabit(h habit.Habit, today daykey.DayKey) habit.Habit {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	if strings.TrimSpace(h.Title) == "" {
		h.Title = "Unnamed habit"
	}
	if h.Type != habit.TypeValue {
		h.Type = habit.TypeCheckbox
	}

	if last, err := daykey.Parse(h.LastCompletedOn.String()); err == nil {
		h.LastCompletedOn = last
	} else {
		h.LastCompletedOn = ""
	}

	fallback := today
	if created, err := daykey.Parse(h.CreatedOn.String()); err == nil {
		fallback = created
	} else if !h.LastCompletedOn.IsZero() {
		fallback = h.LastCompletedOn
	}
	h.CreatedOn = fallback

	h.Frequency = habit.NormalizeFrequency(h.Frequency, fallback)
	if h.Streak < 0 {
		h.Streak = 0
	}
	h.DefaultTarget = finiteOrNil(h.DefaultTarget)
	return h
}

func repairCompletion(c habit.Completion, today daykey.DayKey) habit.Completion {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if c.HabitTitle == "" {
		c.HabitTitle = "Habit"
	}
	if day, err := daykey.Parse(c.CompletedOn.String()); err == nil {
		c.CompletedOn = day
	} else {
		c.CompletedOn = today
	}
	c.Value = finiteOrNil(c.Value)
	return c
}

func finiteOrNil(v *float64) *float64 {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return nil
	}
	return v
}

func (s State) addHabit(in HabitInput, today daykey.DayKey) (State, habit.Habit, bool) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return s, habit.Habit{}, false
	}

	typ := in.Type
	if typ != habit.TypeValue {
		typ = habit.TypeCheckbox
	}

	h := habit.Habit{
		ID:        uuid.NewString(),
		Title:     title,
		Type:      typ,
		Frequency: habit.NormalizeFrequency(in.Frequency, today),
		Streak:    0,
		CreatedOn: today,
	}
	if typ == habit.TypeValue {
		h.ValueUnit = strings.TrimSpace(in.ValueUnit)
		h.DefaultTarget = finiteOrNil(in.DefaultTarget)
	}

	next := s
	next.Habits = append(append([]habit.Habit(nil), s.Habits...), h)
	return next, h, true
}

func (s State) updateHabit(id string, in HabitInput) (State, habit.Habit, bool) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return s, habit.Habit{}, false
	}

	idx := -1
	for i := range s.Habits {
		if s.Habits[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return s, habit.Habit{}, false
	}

	h := s.Habits[idx]
	h.Title = title
	if in.Type == habit.TypeValue {
		h.Type = habit.TypeValue
		h.ValueUnit = strings.TrimSpace(in.ValueUnit)
		h.DefaultTarget = finiteOrNil(in.DefaultTarget)
	} else {
		h.Type = habit.TypeCheckbox
		h.ValueUnit = ""
		h.DefaultTarget = nil
	}
	h.Frequency = habit.NormalizeFrequency(in.Frequency, h.CreatedOn)

	next := s
	next.Habits = append([]habit.Habit(nil), s.Habits...)
	next.Habits[idx] = h

	// Rename the denormalized title on the habit's log entries.
	next.Completions = append([]habit.Completion(nil), s.Completions...)
	for i := range next.Completions {
		if next.Completions[i].HabitID == id {
			next.Completions[i].HabitTitle = title
		}
	}
	return next, h, true
}

func (s State) removeHabit(id string) (State, bool) {
	found := false
	habits := make([]habit.Habit, 0, len(s.Habits))
	for _, h := range s.Habits {
		if h.ID == id {
			found = true
			continue
		}
		habits = append(habits, h)
	}
	if !found {
		return s, false
	}

	completions := make([]habit.Completion, 0, len(s.Completions))
	for _, c := range s.Completions {
		if c.HabitID == id {
			continue
		}
		completions = append(completions, c)
	}

	next := s
	next.Habits = habits
	next.Completions = completions
	return next, true
}

// completeHabit is the single streak/points transition. A nil reward
// means the guard rejected the request and the state is unchanged.
func (s State) completeHabit(id string, value *float64, today daykey.DayKey) (State, *habit.Reward) {
	idx := -1
	for i := range s.Habits {
		if s.Habits[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return s, nil
	}

	h := s.Habits[idx]
	if daykey.SameDay(h.LastCompletedOn, today) || !h.DueOn(today) {
		return s, nil
	}

	missed := habit.CountMissedBetween(h, h.LastCompletedOn, today)
	penalty := missed * missedOccurrencePenalty

	// Both halves of the continuity test matter: zero misses per the
	// counter does not imply the previous due day was the one completed.
	consecutive := missed == 0 && habit.ConsecutiveCompletion(h, today)
	newStreak := 1
	if consecutive {
		newStreak = h.Streak + 1
	}
	pointsAwarded := 10 + newStreak*2

	var recorded *float64
	if h.Type == habit.TypeValue {
		recorded = finiteOrNil(value)
	}

	reward := &habit.Reward{
		HabitID:           h.ID,
		HabitTitle:        h.Title,
		PointsAwarded:     pointsAwarded,
		NewStreak:         newStreak,
		MissedOccurrences: missed,
		PenaltyApplied:    penalty,
		ValueRecorded:     recorded,
		ValueUnit:         h.ValueUnit,
	}

	h.Streak = newStreak
	h.LastCompletedOn = today

	next := s
	next.Habits = append([]habit.Habit(nil), s.Habits...)
	next.Habits[idx] = h

	next.TotalPoints = max(0, s.TotalPoints-penalty+pointsAwarded)

	completions := append(append([]habit.Completion(nil), s.Completions...), habit.Completion{
		ID:            uuid.NewString(),
		HabitID:       h.ID,
		HabitTitle:    h.Title,
		CompletedOn:   today,
		Value:         recorded,
		PointsAwarded: pointsAwarded,
	})
	if len(completions) > completionLogLimit {
		completions = completions[len(completions)-completionLogLimit:]
	}
	next.Completions = completions

	return next, reward
}

func (s State) dueToday(today daykey.DayKey) (due, completed int) {
	for _, h := range s.Habits {
		if !h.DueOn(today) {
			continue
		}
		due++
		if daykey.SameDay(h.LastCompletedOn, today) {
			completed++
		}
	}
	return due, completed
}
