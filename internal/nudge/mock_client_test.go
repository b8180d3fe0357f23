package nudge

import (
	"context"

	"github.com/routinely/routinely/pkg/habit"
)

type mockClient struct {
	habits []habit.Habit
	err    error
}

func (f *mockClient) ListHabits(ctx context.Context) ([]habit.Habit, error) {
	return f.habits, f.err
}
