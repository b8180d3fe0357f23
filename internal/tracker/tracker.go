package tracker

import (
	"encoding/json"
	"sync"

	"github.com/routinely/routinely/internal/logger"
	"github.com/routinely/routinely/internal/storage"
	"github.com/routinely/routinely/pkg/daykey"
	"github.com/routinely/routinely/pkg/habit"
)

// Saver persists an encoded state snapshot. Saving is best-effort: a
// failed save is logged, never surfaced to the command that triggered
// it, and the full snapshot is rewritten on the next mutation.
type Saver interface {
	Save(snapshot []byte) error
}

// Tracker owns the aggregate state and serializes access to it. Every
// command delegates to a pure State transition and persists the result.
type Tracker struct {
	mu    sync.Mutex
	state State
	saver Saver
}

// New builds a Tracker around an already-hydrated state. saver may be
// nil for callers that do not persist (tests, dry runs).
func New(state State, saver Saver) *Tracker {
	return &Tracker{state: state, saver: saver}
}

// Open loads and hydrates the snapshot held by store and returns a
// Tracker that saves back to it.
func Open(store storage.Store) (*Tracker, error) {
	raw, err := store.Load()
	if err != nil {
		return nil, err
	}
	return New(HydrateState(raw, daykey.Today()), store), nil
}

func (t *Tracker) persist() {
	if t.saver == nil {
		return
	}
	raw, err := json.Marshal(t.state)
	if err != nil {
		logger.Error("Failed to encode state snapshot", "error", err)
		return
	}
	if err := t.saver.Save(raw); err != nil {
		logger.Warn("Failed to persist state snapshot", "error", err)
	}
}

// AddHabit creates a habit from in. It reports false, without mutating
// anything, when the input is unusable (blank title).
func (t *Tracker) AddHabit(in HabitInput) (habit.Habit, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	next, h, ok := t.state.addHabit(in, daykey.Today())
	if !ok {
		return habit.Habit{}, false
	}
	t.state = next
	t.persist()
	logger.Info("Habit added", "habit_id", h.ID, "title", h.Title, "kind", h.Frequency.Kind)
	return h, true
}

// UpdateHabit edits a habit's title, type, rule and value metadata, and
// renames the denormalized title on its completion records.
func (t *Tracker) UpdateHabit(id string, in HabitInput) (habit.Habit, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	next, h, ok := t.state.updateHabit(id, in)
	if !ok {
		return habit.Habit{}, false
	}
	t.state = next
	t.persist()
	logger.Info("Habit updated", "habit_id", id, "title", h.Title)
	return h, true
}

// RemoveHabit deletes a habit and cascades to its completion records.
func (t *Tracker) RemoveHabit(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	next, ok := t.state.removeHabit(id)
	if !ok {
		return false
	}
	t.state = next
	t.persist()
	logger.Info("Habit removed", "habit_id", id)
	return true
}

// CompleteHabit records a completion for today. A nil reward means the
// request was rejected (unknown id, already completed today, or not a
// due day) and nothing changed.
func (t *Tracker) CompleteHabit(id string, value *float64) *habit.Reward {
	t.mu.Lock()
	defer t.mu.Unlock()

	next, reward := t.state.completeHabit(id, value, daykey.Today())
	if reward == nil {
		return nil
	}
	t.state = next
	t.persist()
	logger.Info("Habit completed",
		"habit_id", id,
		"streak", reward.NewStreak,
		"points", reward.PointsAwarded,
		"missed", reward.MissedOccurrences)
	return reward
}

// Reset drops the whole aggregate back to the empty state.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.state = State{}
	t.persist()
	logger.Info("State reset")
}

// Habits returns a copy of the habit collection.
func (t *Tracker) Habits() []habit.Habit {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]habit.Habit(nil), t.state.Habits...)
}

// Completions returns a copy of the completion log in insertion order.
func (t *Tracker) Completions() []habit.Completion {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]habit.Completion(nil), t.state.Completions...)
}

// TotalPoints returns the running point total.
func (t *Tracker) TotalPoints() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state.TotalPoints
}

// Today reports how many habits are due today and how many of those are
// already completed.
func (t *Tracker) Today() (due, completed int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state.dueToday(daykey.Today())
}
