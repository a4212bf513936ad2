package ingest

import (
	"github.com/claude/workoutlog/internal/exercise"
	"github.com/claude/workoutlog/internal/workout"
	"github.com/google/uuid"
)

// ExerciseReport is the rendered view of one exercise.
type ExerciseReport struct {
	ID          uuid.UUID     `json:"id"`
	Kind        exercise.Kind `json:"kind"`
	Name        string        `json:"name"`
	Date        string        `json:"date"`
	Calories    float64       `json:"calories"`
	DurationMin float64       `json:"duration_min"`
	Display     string        `json:"display"`
}

// Report is the rendered view of a workout returned by the HTTP and MCP
// surfaces.
type Report struct {
	ExerciseCount    int                  `json:"exercise_count"`
	TotalCalories    float64              `json:"total_calories"`
	TotalDurationMin float64              `json:"total_duration_min"`
	Display          string               `json:"display"`
	Summary          string               `json:"summary"`
	Breakdown        []workout.KindTotals `json:"breakdown"`
	Exercises        []ExerciseReport     `json:"exercises"`
}

// NewExerciseReport renders a single exercise.
func NewExerciseReport(ex exercise.Exercise) ExerciseReport {
	return ExerciseReport{
		ID:          ex.ID(),
		Kind:        ex.Kind(),
		Name:        ex.Name(),
		Date:        ex.Date(),
		Calories:    ex.Calories(),
		DurationMin: ex.Duration(),
		Display:     ex.String(),
	}
}

// NewReport renders w. Breakdown and Exercises are never nil so they encode
// as empty arrays.
func NewReport(w *workout.Workout) Report {
	exs := w.Exercises()
	reports := make([]ExerciseReport, 0, len(exs))
	for _, ex := range exs {
		reports = append(reports, NewExerciseReport(ex))
	}
	return Report{
		ExerciseCount:    w.ExerciseCount(),
		TotalCalories:    w.TotalCalories(),
		TotalDurationMin: w.TotalDuration(),
		Display:          w.String(),
		Summary:          w.Summary(),
		Breakdown:        w.Breakdown(),
		Exercises:        reports,
	}
}
