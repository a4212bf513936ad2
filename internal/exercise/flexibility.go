package exercise

import "fmt"

const flexibilityBaseRate = 2.5

// Flexibility is a timed mobility exercise such as yoga or stretching.
type Flexibility struct {
	base
	duration  float64
	intensity Intensity
}

// NewFlexibility creates a flexibility exercise. The intensity is matched
// case-insensitively against low, medium and high.
func NewFlexibility(name string, duration float64, intensity string, opts ...Option) (*Flexibility, error) {
	level, err := ParseIntensity(intensity)
	if err != nil {
		return nil, err
	}
	b, err := newBase(name, opts)
	if err != nil {
		return nil, err
	}
	if err := checkNonNegative("duration", duration); err != nil {
		return nil, err
	}
	return &Flexibility{base: b, duration: duration, intensity: level}, nil
}

func (f *Flexibility) Kind() Kind { return KindFlexibility }

// Intensity returns the normalized (lower-case) intensity.
func (f *Flexibility) Intensity() Intensity { return f.intensity }

// Calories returns duration * 2.5 * the intensity multiplier.
func (f *Flexibility) Calories() float64 {
	return f.duration * flexibilityBaseRate * f.intensity.Multiplier()
}

// Duration returns the recorded time in minutes.
func (f *Flexibility) Duration() float64 {
	return f.duration
}

// String renders e.g. "Yoga (30.0 min, medium intensity): 112.5 calories".
func (f *Flexibility) String() string {
	return fmt.Sprintf("%s (%s min, %s intensity): %s calories",
		f.name, FormatQuantity(f.duration), f.intensity, FormatQuantity(f.Calories()))
}

func (f *Flexibility) sealed() {}
