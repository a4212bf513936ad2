// Package ingest decodes exercise entries from request bodies, tool
// arguments and YAML log files into workouts.
package ingest

import (
	"fmt"
	"time"

	"github.com/claude/workoutlog/internal/exercise"
	"github.com/claude/workoutlog/internal/workout"
)

// Entry is the wire and file shape of a single exercise. Only the fields
// relevant to Kind are read.
type Entry struct {
	Kind      string  `json:"kind" yaml:"kind"`
	Name      string  `json:"name" yaml:"name"`
	Date      string  `json:"date,omitempty" yaml:"date,omitempty"`
	Distance  float64 `json:"distance,omitempty" yaml:"distance,omitempty"`
	Duration  float64 `json:"duration,omitempty" yaml:"duration,omitempty"`
	Weight    float64 `json:"weight,omitempty" yaml:"weight,omitempty"`
	Reps      int     `json:"reps,omitempty" yaml:"reps,omitempty"`
	Sets      int     `json:"sets,omitempty" yaml:"sets,omitempty"`
	Intensity string  `json:"intensity,omitempty" yaml:"intensity,omitempty"`
}

// Build constructs the exercise described by e. now supplies the default
// date when e.Date is empty; nil means time.Now.
func (e Entry) Build(now func() time.Time) (exercise.Exercise, error) {
	kind, err := exercise.ParseKind(e.Kind)
	if err != nil {
		return nil, err
	}

	opts := []exercise.Option{exercise.WithClock(now)}
	if e.Date != "" {
		opts = append(opts, exercise.WithDate(e.Date))
	}

	var ex exercise.Exercise
	switch kind {
	case exercise.KindCardio:
		ex, err = exercise.NewCardio(e.Name, e.Distance, e.Duration, opts...)
	case exercise.KindStrength:
		ex, err = exercise.NewStrength(e.Name, e.Weight, e.Reps, e.Sets, opts...)
	default:
		ex, err = exercise.NewFlexibility(e.Name, e.Duration, e.Intensity, opts...)
	}
	if err != nil {
		return nil, err
	}
	return ex, nil
}

// BuildWorkout builds every entry and adds it to a new workout, stopping at
// the first entry that fails.
func BuildWorkout(entries []Entry, now func() time.Time) (*workout.Workout, error) {
	w := workout.New()
	for i, e := range entries {
		ex, err := e.Build(now)
		if err != nil {
			return nil, fmt.Errorf("exercise %d (%q): %w", i+1, e.Name, err)
		}
		if err := w.Append(ex); err != nil {
			return nil, fmt.Errorf("exercise %d (%q): %w", i+1, e.Name, err)
		}
	}
	return w, nil
}
