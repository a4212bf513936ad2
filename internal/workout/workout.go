// Package workout aggregates logged exercises into a single session.
//
// A Workout is not safe for concurrent use; callers sharing one across
// goroutines must serialize access themselves.
package workout

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/claude/workoutlog/internal/exercise"
)

// Workout is an ordered collection of exercises. The same exercise may be
// added more than once.
type Workout struct {
	exercises []exercise.Exercise
}

// New returns an empty workout.
func New() *Workout {
	return &Workout{}
}

// AddExercise appends ex. A nil interface or typed nil pointer does not
// satisfy the exercise contract and is rejected with exercise.ErrTypeMismatch.
func (w *Workout) AddExercise(ex exercise.Exercise) error {
	if isNil(ex) {
		return fmt.Errorf("adding exercise: nil value: %w", exercise.ErrTypeMismatch)
	}
	w.exercises = append(w.exercises, ex)
	return nil
}

// Append adds v when it implements exercise.Exercise. It is the entry point
// for values whose static type is unknown, such as decoded payloads.
func (w *Workout) Append(v any) error {
	ex, ok := v.(exercise.Exercise)
	if !ok {
		return fmt.Errorf("adding exercise: %T is not an exercise: %w", v, exercise.ErrTypeMismatch)
	}
	return w.AddExercise(ex)
}

func isNil(ex exercise.Exercise) bool {
	if ex == nil {
		return true
	}
	v := reflect.ValueOf(ex)
	return v.Kind() == reflect.Pointer && v.IsNil()
}

// ExerciseCount returns the number of exercises in the workout.
func (w *Workout) ExerciseCount() int {
	return len(w.exercises)
}

// Len is ExerciseCount under the conventional container name.
func (w *Workout) Len() int {
	return len(w.exercises)
}

// TotalCalories sums Calories over all exercises.
func (w *Workout) TotalCalories() float64 {
	var total float64
	for _, ex := range w.exercises {
		total += ex.Calories()
	}
	return total
}

// TotalDuration sums Duration, in minutes, over all exercises.
func (w *Workout) TotalDuration() float64 {
	var total float64
	for _, ex := range w.exercises {
		total += ex.Duration()
	}
	return total
}

// Exercises returns the exercises in insertion order. The returned slice is
// newly allocated and owned by the caller; modifying it does not affect the
// workout.
func (w *Workout) Exercises() []exercise.Exercise {
	out := make([]exercise.Exercise, len(w.exercises))
	copy(out, w.exercises)
	return out
}

// String renders e.g. "Workout: 3 exercises, 495.0 calories".
func (w *Workout) String() string {
	return fmt.Sprintf("Workout: %s, %s calories",
		pluralExercises(len(w.exercises)), exercise.FormatQuantity(w.TotalCalories()))
}

// Summary renders a multi-line report: a header, one numbered line per
// exercise and a closing total.
func (w *Workout) Summary() string {
	if len(w.exercises) == 0 {
		return "Empty workout: no exercises logged"
	}

	var b strings.Builder
	b.WriteString("Workout Summary\n")
	b.WriteString("===============\n")
	for i, ex := range w.exercises {
		fmt.Fprintf(&b, "%d. %s\n", i+1, ex)
	}
	fmt.Fprintf(&b, "Total: %s, %s calories, %s min",
		pluralExercises(len(w.exercises)),
		exercise.FormatQuantity(w.TotalCalories()),
		exercise.FormatQuantity(w.TotalDuration()))
	return b.String()
}

func pluralExercises(n int) string {
	if n == 1 {
		return "1 exercise"
	}
	return fmt.Sprintf("%d exercises", n)
}
