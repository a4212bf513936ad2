package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// Server holds dependencies for HTTP handlers. It keeps no workout state:
// every request builds and discards its own workout.
type Server struct {
	log     *slog.Logger
	apiKey  string
	version string
	now     func() time.Time
	router  chi.Router
}

// New creates a new Server with all routes configured. An empty apiKey
// leaves the calculation endpoints open.
func New(apiKey, version string, log *slog.Logger) *Server {
	s := &Server{
		log:     log,
		apiKey:  apiKey,
		version: version,
		now:     time.Now,
		router:  chi.NewRouter(),
	}
	s.routes()
	return s
}

// SetClock replaces the time source used for default exercise dates.
func (s *Server) SetClock(now func() time.Time) {
	s.now = now
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	s.router.Get("/api/v1/health", s.handleHealth)
	s.router.Get("/api/v1/intensities", s.handleIntensities)

	s.router.Group(func(r chi.Router) {
		if s.apiKey != "" {
			r.Use(APIKeyAuth(s.apiKey))
		}
		r.Post("/api/v1/workouts/summary", s.handleWorkoutSummary)
		r.Post("/api/v1/exercises/calories", s.handleExerciseCalories)
	})
}
