package exercise

import "fmt"

const (
	strengthCalorieFactor = 0.05
	minutesPerSet         = 3.0
)

// Strength is a weighted set/rep exercise.
type Strength struct {
	base
	weight float64
	reps   int
	sets   int
}

// NewStrength creates a strength exercise. Weight is in pounds; zero weight
// means bodyweight.
func NewStrength(name string, weight float64, reps, sets int, opts ...Option) (*Strength, error) {
	b, err := newBase(name, opts)
	if err != nil {
		return nil, err
	}
	if err := checkNonNegative("weight", weight); err != nil {
		return nil, err
	}
	if reps < 0 {
		return nil, fmt.Errorf("reps must be non-negative, got %d: %w", reps, ErrInvalidArgument)
	}
	if sets < 0 {
		return nil, fmt.Errorf("sets must be non-negative, got %d: %w", sets, ErrInvalidArgument)
	}
	return &Strength{base: b, weight: weight, reps: reps, sets: sets}, nil
}

func (s *Strength) Kind() Kind { return KindStrength }

func (s *Strength) Weight() float64 { return s.weight }
func (s *Strength) Reps() int       { return s.reps }
func (s *Strength) Sets() int       { return s.sets }

// Calories returns weight * reps * sets * 0.05.
func (s *Strength) Calories() float64 {
	return s.weight * float64(s.reps) * float64(s.sets) * strengthCalorieFactor
}

// Duration estimates three minutes per set regardless of reps or weight.
func (s *Strength) Duration() float64 {
	return minutesPerSet * float64(s.sets)
}

// String renders e.g. "Bench Press (135.0 lbs, 10 reps, 3 sets): 202.5 calories".
func (s *Strength) String() string {
	return fmt.Sprintf("%s (%s lbs, %d reps, %d sets): %s calories",
		s.name, FormatQuantity(s.weight), s.reps, s.sets, FormatQuantity(s.Calories()))
}

func (s *Strength) sealed() {}
