package exercise

import "fmt"

// caloriesPerMile is the flat cardio burn estimate.
const caloriesPerMile = 100.0

// Cardio is a distance-and-time exercise such as running or cycling.
type Cardio struct {
	base
	distance float64
	duration float64
}

// NewCardio creates a cardio exercise. Distance is in miles, duration in minutes.
func NewCardio(name string, distance, duration float64, opts ...Option) (*Cardio, error) {
	b, err := newBase(name, opts)
	if err != nil {
		return nil, err
	}
	if err := checkNonNegative("distance", distance); err != nil {
		return nil, err
	}
	if err := checkNonNegative("duration", duration); err != nil {
		return nil, err
	}
	return &Cardio{base: b, distance: distance, duration: duration}, nil
}

func (c *Cardio) Kind() Kind { return KindCardio }

// Distance returns the distance covered in miles.
func (c *Cardio) Distance() float64 { return c.distance }

// Calories returns distance * 100.
func (c *Cardio) Calories() float64 {
	return c.distance * caloriesPerMile
}

// Duration returns the recorded time in minutes.
func (c *Cardio) Duration() float64 {
	return c.duration
}

// String renders e.g. "Running (3.5 miles, 30.0 min): 350.0 calories".
func (c *Cardio) String() string {
	return fmt.Sprintf("%s (%s miles, %s min): %s calories",
		c.name, FormatQuantity(c.distance), FormatQuantity(c.duration), FormatQuantity(c.Calories()))
}

func (c *Cardio) sealed() {}
