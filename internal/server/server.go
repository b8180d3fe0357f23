package server

import (
	"net/http"

	"github.com/routinely/routinely/internal/tracker"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Server struct {
	tracker *tracker.Tracker
}

func New(tr *tracker.Tracker) *Server {
	s := &Server{tracker: tr}
	s.refreshGauges()
	return s
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(metricsMiddleware)

	r.Get("/version", s.getVersionInfo)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/habits", func(r chi.Router) {
		r.Get("/", s.listHabits)
		r.Post("/", s.createHabit)
		r.Put("/{habit_id}", s.updateHabit)
		r.Delete("/{habit_id}", s.removeHabit)
		r.Post("/{habit_id}/completions", s.completeHabit)
	})
	r.Get("/completions", s.listCompletions)
	r.Get("/summary", s.getSummary)
	r.Delete("/state", s.resetState)

	return r
}
