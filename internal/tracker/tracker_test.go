package tracker

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/routinely/routinely/pkg/habit"
)

type memSaver struct {
	snapshots [][]byte
	err       error
}

func (m *memSaver) Save(snapshot []byte) error {
	if m.err != nil {
		return m.err
	}
	m.snapshots = append(m.snapshots, snapshot)
	return nil
}

func (m *memSaver) last(t *testing.T) State {
	t.Helper()
	if len(m.snapshots) == 0 {
		t.Fatal("no snapshot saved")
	}
	var s State
	if err := json.Unmarshal(m.snapshots[len(m.snapshots)-1], &s); err != nil {
		t.Fatalf("snapshot not valid JSON: %v", err)
	}
	return s
}

func TestTracker_AddPersistsSnapshot(t *testing.T) {
	saver := &memSaver{}
	tr := New(State{}, saver)

	h, ok := tr.AddHabit(HabitInput{
		Title:     "stretch",
		Type:      habit.TypeCheckbox,
		Frequency: habit.Frequency{Kind: habit.FrequencyDaily},
	})
	if !ok {
		t.Fatal("AddHabit rejected valid input")
	}

	saved := saver.last(t)
	if len(saved.Habits) != 1 || saved.Habits[0].ID != h.ID {
		t.Fatalf("snapshot missing added habit: %+v", saved)
	}
}

func TestTracker_RejectedCommandDoesNotPersist(t *testing.T) {
	saver := &memSaver{}
	tr := New(State{}, saver)

	if _, ok := tr.AddHabit(HabitInput{Title: "  "}); ok {
		t.Fatal("expected rejection")
	}
	if len(saver.snapshots) != 0 {
		t.Fatal("rejected command wrote a snapshot")
	}
	if reward := tr.CompleteHabit("missing", nil); reward != nil {
		t.Fatal("expected nil reward for unknown habit")
	}
	if len(saver.snapshots) != 0 {
		t.Fatal("rejected completion wrote a snapshot")
	}
}

func TestTracker_SaveFailureIsNonFatal(t *testing.T) {
	saver := &memSaver{err: errors.New("disk full")}
	tr := New(State{}, saver)

	_, ok := tr.AddHabit(HabitInput{
		Title:     "stretch",
		Frequency: habit.Frequency{Kind: habit.FrequencyDaily},
	})
	if !ok {
		t.Fatal("save failure must not fail the command")
	}
	if len(tr.Habits()) != 1 {
		t.Fatal("state change lost on save failure")
	}
}

func TestTracker_CompleteTodayFlow(t *testing.T) {
	tr := New(State{}, nil)
	h, _ := tr.AddHabit(HabitInput{
		Title:     "stretch",
		Frequency: habit.Frequency{Kind: habit.FrequencyDaily},
	})

	due, completed := tr.Today()
	if due != 1 || completed != 0 {
		t.Fatalf("got due=%d completed=%d, want 1/0", due, completed)
	}

	reward := tr.CompleteHabit(h.ID, nil)
	if reward == nil {
		t.Fatal("completion rejected")
	}
	if reward.NewStreak != 1 || reward.PointsAwarded != 12 {
		t.Fatalf("got streak=%d points=%d, want 1/12", reward.NewStreak, reward.PointsAwarded)
	}
	if tr.TotalPoints() != 12 {
		t.Fatalf("total=%d, want 12", tr.TotalPoints())
	}

	if again := tr.CompleteHabit(h.ID, nil); again != nil {
		t.Fatal("second same-day completion must be rejected")
	}

	due, completed = tr.Today()
	if due != 1 || completed != 1 {
		t.Fatalf("got due=%d completed=%d, want 1/1", due, completed)
	}
	if len(tr.Completions()) != 1 {
		t.Fatalf("log has %d entries, want 1", len(tr.Completions()))
	}
}

func TestTracker_Reset(t *testing.T) {
	saver := &memSaver{}
	tr := New(State{}, saver)
	tr.AddHabit(HabitInput{Title: "stretch", Frequency: habit.Frequency{Kind: habit.FrequencyDaily}})

	tr.Reset()

	if len(tr.Habits()) != 0 || tr.TotalPoints() != 0 {
		t.Fatal("reset left state behind")
	}
	saved := saver.last(t)
	if len(saved.Habits) != 0 {
		t.Fatal("reset snapshot not empty")
	}
}

func TestTracker_ReadsReturnCopies(t *testing.T) {
	tr := New(State{}, nil)
	tr.AddHabit(HabitInput{Title: "stretch", Frequency: habit.Frequency{Kind: habit.FrequencyDaily}})

	habits := tr.Habits()
	habits[0].Title = "mutated"

	if tr.Habits()[0].Title != "stretch" {
		t.Fatal("Habits() exposed internal state")
	}
}
