package server

import (
	"encoding/json"
	"net/http"

	"github.com/routinely/routinely/internal/logger"
	"github.com/routinely/routinely/internal/tracker"
	"github.com/routinely/routinely/pkg/versioninfo"

	"github.com/go-chi/chi/v5"
)

func writeJSON(w http.ResponseWriter, code int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	return json.NewEncoder(w).Encode(v)
}

func (s *Server) getVersionInfo(w http.ResponseWriter, _ *http.Request) {
	info := versioninfo.VersionInfo{
		Version:   versioninfo.Version,
		BuildDate: versioninfo.BuildDate,
	}
	if err := writeJSON(w, http.StatusOK, info); err != nil {
		logger.Error("Failed to serialize version info response", "error", err)
		http.Error(w, `{"error":"failed to serialize version info"}`, http.StatusInternalServerError)
		return
	}
}

func (s *Server) listHabits(w http.ResponseWriter, _ *http.Request) {
	habits := s.tracker.Habits()
	logger.Debug("Listed habits", "count", len(habits))
	if err := writeJSON(w, http.StatusOK, HabitListResponse{Habits: habits}); err != nil {
		logger.Error("Failed to serialize habit list response", "error", err)
		http.Error(w, `{"error":"failed to serialize response"}`, http.StatusInternalServerError)
		return
	}
}

func (s *Server) createHabit(w http.ResponseWriter, r *http.Request) {
	var in tracker.HabitInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		logger.Warn("Invalid JSON in create habit request", "error", err)
		http.Error(w, `{"error":"invalid JSON"}`, http.StatusBadRequest)
		return
	}

	h, ok := s.tracker.AddHabit(in)
	if !ok {
		http.Error(w, `{"error":"habit title is required"}`, http.StatusBadRequest)
		return
	}
	s.refreshGauges()

	if err := writeJSON(w, http.StatusCreated, h); err != nil {
		logger.Error("Failed to serialize create habit response", "habit_id", h.ID, "error", err)
		http.Error(w, `{"error":"failed to serialize response"}`, http.StatusInternalServerError)
		return
	}
}

func (s *Server) updateHabit(w http.ResponseWriter, r *http.Request) {
	habitID := chi.URLParam(r, "habit_id")
	if habitID == "" {
		http.Error(w, `{"error":"habit id is required"}`, http.StatusBadRequest)
		return
	}

	var in tracker.HabitInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		logger.Warn("Invalid JSON in update habit request", "habit_id", habitID, "error", err)
		http.Error(w, `{"error":"invalid JSON"}`, http.StatusBadRequest)
		return
	}

	h, ok := s.tracker.UpdateHabit(habitID, in)
	if !ok {
		http.Error(w, `{"error":"habit not found or title missing"}`, http.StatusNotFound)
		return
	}
	s.refreshGauges()

	if err := writeJSON(w, http.StatusOK, h); err != nil {
		logger.Error("Failed to serialize update habit response", "habit_id", habitID, "error", err)
		http.Error(w, `{"error":"failed to serialize response"}`, http.StatusInternalServerError)
		return
	}
}

func (s *Server) removeHabit(w http.ResponseWriter, r *http.Request) {
	habitID := chi.URLParam(r, "habit_id")
	if habitID == "" {
		http.Error(w, `{"error":"habit id is required"}`, http.StatusBadRequest)
		return
	}

	if !s.tracker.RemoveHabit(habitID) {
		http.Error(w, `{"error":"habit not found"}`, http.StatusNotFound)
		return
	}
	s.refreshGauges()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) completeHabit(w http.ResponseWriter, r *http.Request) {
	habitID := chi.URLParam(r, "habit_id")
	if habitID == "" {
		http.Error(w, `{"error":"habit id is required"}`, http.StatusBadRequest)
		return
	}

	var req CompleteRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Warn("Invalid JSON in complete habit request", "habit_id", habitID, "error", err)
			http.Error(w, `{"error":"invalid JSON"}`, http.StatusBadRequest)
			return
		}
	}

	reward := s.tracker.CompleteHabit(habitID, req.Value)
	if reward == nil {
		// Not an error worth raising: the habit is unknown, already
		// completed today, or today is not a due day.
		http.Error(w, `{"error":"no reward: habit already completed or not due today"}`, http.StatusConflict)
		return
	}
	s.refreshGauges()
	completionsTotal.Inc()

	if err := writeJSON(w, http.StatusOK, reward); err != nil {
		logger.Error("Failed to serialize reward response", "habit_id", habitID, "error", err)
		http.Error(w, `{"error":"failed to serialize response"}`, http.StatusInternalServerError)
		return
	}
}

func (s *Server) listCompletions(w http.ResponseWriter, _ *http.Request) {
	log := s.tracker.Completions()
	if err := writeJSON(w, http.StatusOK, CompletionLogResponse{Completions: log}); err != nil {
		logger.Error("Failed to serialize completion log response", "error", err)
		http.Error(w, `{"error":"failed to serialize response"}`, http.StatusInternalServerError)
		return
	}
}

func (s *Server) getSummary(w http.ResponseWriter, _ *http.Request) {
	due, completed := s.tracker.Today()
	summary := SummaryResponse{
		TotalPoints:    s.tracker.TotalPoints(),
		DueToday:       due,
		CompletedToday: completed,
	}
	if err := writeJSON(w, http.StatusOK, summary); err != nil {
		logger.Error("Failed to serialize summary response", "error", err)
		http.Error(w, `{"error":"failed to serialize response"}`, http.StatusInternalServerError)
		return
	}
}

func (s *Server) resetState(w http.ResponseWriter, _ *http.Request) {
	s.tracker.Reset()
	s.refreshGauges()
	w.WriteHeader(http.StatusNoContent)
}
