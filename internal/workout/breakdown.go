package workout

import "github.com/claude/workoutlog/internal/exercise"

// KindTotals holds aggregated stats for one exercise kind within a workout.
type KindTotals struct {
	Kind        exercise.Kind `json:"kind"`
	Count       int           `json:"count"`
	Calories    float64       `json:"calories"`
	DurationMin float64       `json:"duration_min"`
}

// Breakdown groups the workout by exercise kind. Kinds appear in the order
// they were first added; kinds with no exercises are omitted.
func (w *Workout) Breakdown() []KindTotals {
	byKind := make(map[exercise.Kind]*KindTotals)
	var order []exercise.Kind

	for _, ex := range w.exercises {
		k := ex.Kind()
		if _, ok := byKind[k]; !ok {
			byKind[k] = &KindTotals{Kind: k}
			order = append(order, k)
		}
		kt := byKind[k]
		kt.Count++
		kt.Calories += ex.Calories()
		kt.DurationMin += ex.Duration()
	}

	result := make([]KindTotals, 0, len(order))
	for _, k := range order {
		result = append(result, *byKind[k])
	}
	return result
}
