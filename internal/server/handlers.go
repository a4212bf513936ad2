package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/claude/workoutlog/internal/exercise"
	"github.com/claude/workoutlog/internal/ingest"
)

// maxBodyBytes caps request bodies; a workout is a handful of small entries.
const maxBodyBytes = 1 << 20

// summaryRequest is the body of POST /api/v1/workouts/summary.
type summaryRequest struct {
	Exercises []ingest.Entry `json:"exercises"`
}

type intensityInfo struct {
	Intensity  exercise.Intensity `json:"intensity"`
	Multiplier float64            `json:"multiplier"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": s.version,
	})
}

func (s *Server) handleIntensities(w http.ResponseWriter, r *http.Request) {
	levels := exercise.Intensities()
	out := make([]intensityInfo, 0, len(levels))
	for _, level := range levels {
		out = append(out, intensityInfo{Intensity: level, Multiplier: level.Multiplier()})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleWorkoutSummary(w http.ResponseWriter, r *http.Request) {
	var req summaryRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	wo, err := ingest.BuildWorkout(req.Exercises, s.now)
	if err != nil {
		s.writeBuildError(w, err)
		return
	}

	s.log.Debug("workout summarized",
		"exercises", wo.ExerciseCount(),
		"calories", wo.TotalCalories(),
	)
	writeJSON(w, http.StatusOK, ingest.NewReport(wo))
}

func (s *Server) handleExerciseCalories(w http.ResponseWriter, r *http.Request) {
	var entry ingest.Entry
	if err := decodeBody(w, r, &entry); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	ex, err := entry.Build(s.now)
	if err != nil {
		s.writeBuildError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ingest.NewExerciseReport(ex))
}

// writeBuildError maps domain errors to 400 and anything else to 500.
func (s *Server) writeBuildError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, exercise.ErrInvalidArgument):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error(), "kind": "invalid_argument"})
	case errors.Is(err, exercise.ErrTypeMismatch):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error(), "kind": "type_mismatch"})
	default:
		s.log.Error("building workout", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
