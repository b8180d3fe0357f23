package nudge

import (
	"context"

	"github.com/routinely/routinely/internal/logger"
	"github.com/routinely/routinely/pkg/daykey"
)

// DueForReminder returns the titles of habits that are due today and
// have not been completed yet.
func DueForReminder(ctx context.Context, q Querier) ([]string, error) {
	habits, err := q.ListHabits(ctx)
	if err != nil {
		return nil, err
	}

	today := daykey.Today()
	var due []string
	for _, h := range habits {
		if !h.DueOn(today) {
			continue
		}
		if daykey.SameDay(h.LastCompletedOn, today) {
			continue
		}
		due = append(due, h.Title)
	}
	return due, nil
}

// Nudge sends one reminder covering every habit still open today. It is
// a no-op when nothing is due.
func Nudge(ctx context.Context, q Querier, n Notifier) error {
	due, err := DueForReminder(ctx, q)
	if err != nil {
		return err
	}
	if len(due) == 0 {
		logger.Info("No habits due for a reminder")
		return nil
	}

	logger.Info("Sending reminder", "habits", len(due))
	return n.SendReminder(due)
}
