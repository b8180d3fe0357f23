package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "routinely_http_requests_total",
			Help: "Total number of HTTP requests by endpoint, method, and status",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "routinely_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	completionsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "routinely_completions_total",
			Help: "Total number of rewarded habit completions",
		},
	)

	activeHabits = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "routinely_active_habits",
			Help: "Number of tracked habits",
		},
	)

	habitsDueToday = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "routinely_habits_due_today",
			Help: "Number of habits due today",
		},
	)

	habitsCompletedToday = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "routinely_habits_completed_today",
			Help: "Number of due habits already completed today",
		},
	)

	totalPoints = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "routinely_total_points",
			Help: "Running reward point total",
		},
	)
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(wrapped.statusCode)

		httpRequestsTotal.WithLabelValues(r.URL.Path, r.Method, statusCode).Inc()
		httpRequestDuration.WithLabelValues(r.URL.Path, r.Method, statusCode).Observe(duration)
	})
}

func (s *Server) refreshGauges() {
	activeHabits.Set(float64(len(s.tracker.Habits())))
	due, completed := s.tracker.Today()
	habitsDueToday.Set(float64(due))
	habitsCompletedToday.Set(float64(completed))
	totalPoints.Set(float64(s.tracker.TotalPoints()))
}
