package server

import (
	"github.com/routinely/routinely/pkg/habit"
)

type HabitListResponse struct {
	Habits []habit.Habit `json:"habits"`
}

type CompletionLogResponse struct {
	Completions []habit.Completion `json:"completions"`
}

type SummaryResponse struct {
	TotalPoints    int `json:"total_points"`
	DueToday       int `json:"due_today"`
	CompletedToday int `json:"completed_today"`
}

type CompleteRequest struct {
	Value *float64 `json:"value,omitempty"`
}
