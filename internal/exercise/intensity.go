package exercise

import (
	"fmt"
	"strings"
)

// Intensity is the effort level of a flexibility exercise.
type Intensity string

const (
	IntensityLow    Intensity = "low"
	IntensityMedium Intensity = "medium"
	IntensityHigh   Intensity = "high"
)

var intensityMultipliers = map[Intensity]float64{
	IntensityLow:    1.0,
	IntensityMedium: 1.5,
	IntensityHigh:   2.0,
}

// Intensities returns the accepted intensities from lowest to highest.
func Intensities() []Intensity {
	return []Intensity{IntensityLow, IntensityMedium, IntensityHigh}
}

// ParseIntensity normalizes raw to a known Intensity. Matching ignores case
// and surrounding whitespace.
func ParseIntensity(raw string) (Intensity, error) {
	level := Intensity(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := intensityMultipliers[level]; !ok {
		return "", fmt.Errorf("intensity must be one of low, medium, high, got %q: %w", raw, ErrInvalidArgument)
	}
	return level, nil
}

// Multiplier returns the calorie multiplier for the intensity, or 0 for an
// unrecognized value.
func (i Intensity) Multiplier() float64 {
	return intensityMultipliers[i]
}

func (i Intensity) String() string { return string(i) }
