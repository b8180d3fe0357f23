package nudge

import (
	"context"

	"github.com/routinely/routinely/pkg/habit"
)

type Querier interface {
	ListHabits(ctx context.Context) ([]habit.Habit, error)
}
