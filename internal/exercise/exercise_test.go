package exercise

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"
)

func fixedClock() time.Time {
	return time.Date(2024, 3, 9, 18, 30, 0, 0, time.Local)
}

// TestCardioFormulas verifies calories are distance * 100 and duration is
// passed through unchanged.
func TestCardioFormulas(t *testing.T) {
	cases := []struct {
		distance, duration float64
		wantCalories       float64
	}{
		{3.5, 30, 350},
		{10, 45, 1000},
		{1, 25, 100},
		{0, 15, 0},
	}
	for _, tc := range cases {
		c, err := NewCardio("Running", tc.distance, tc.duration)
		if err != nil {
			t.Fatalf("NewCardio(%v, %v): %v", tc.distance, tc.duration, err)
		}
		if got := c.Calories(); got != tc.wantCalories {
			t.Errorf("Calories() = %v, want %v", got, tc.wantCalories)
		}
		if got := c.Duration(); got != tc.duration {
			t.Errorf("Duration() = %v, want %v", got, tc.duration)
		}
	}
}

// TestCardioFields verifies the constructor stores its parameters.
func TestCardioFields(t *testing.T) {
	c, err := NewCardio("Running", 3.5, 30)
	if err != nil {
		t.Fatal(err)
	}
	if c.Name() != "Running" {
		t.Errorf("Name() = %q, want Running", c.Name())
	}
	if c.Distance() != 3.5 {
		t.Errorf("Distance() = %v, want 3.5", c.Distance())
	}
	if c.Kind() != KindCardio {
		t.Errorf("Kind() = %q, want %q", c.Kind(), KindCardio)
	}
}

// TestCardioString verifies the display string includes name, distance and calories.
func TestCardioString(t *testing.T) {
	c, err := NewCardio("Running", 5.0, 40)
	if err != nil {
		t.Fatal(err)
	}
	want := "Running (5.0 miles, 40.0 min): 500.0 calories"
	if got := c.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

// TestStrengthFormulas verifies calories are weight * reps * sets * 0.05 and
// duration is three minutes per set.
func TestStrengthFormulas(t *testing.T) {
	cases := []struct {
		name         string
		weight       float64
		reps, sets   int
		wantCalories float64
		wantDuration float64
	}{
		{"Squats", 200, 8, 4, 320, 12},
		{"Deadlift", 225, 5, 5, 281.25, 15},
		{"Bench Press", 135, 10, 3, 202.5, 9},
		{"Pull-ups", 0, 12, 3, 0, 9},
		{"Rest", 100, 10, 0, 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := NewStrength(tc.name, tc.weight, tc.reps, tc.sets)
			if err != nil {
				t.Fatal(err)
			}
			if got := s.Calories(); got != tc.wantCalories {
				t.Errorf("Calories() = %v, want %v", got, tc.wantCalories)
			}
			if got := s.Duration(); got != tc.wantDuration {
				t.Errorf("Duration() = %v, want %v", got, tc.wantDuration)
			}
		})
	}
}

// TestStrengthString verifies reps and sets appear in the display string.
func TestStrengthString(t *testing.T) {
	s, err := NewStrength("Pull-ups", 0, 12, 3)
	if err != nil {
		t.Fatal(err)
	}
	got := s.String()
	for _, want := range []string{"Pull-ups", "12 reps", "3 sets", "0.0 calories"} {
		if !strings.Contains(got, want) {
			t.Errorf("String() = %q, missing %q", got, want)
		}
	}
}

// TestFlexibilityFormulas verifies each intensity multiplier.
func TestFlexibilityFormulas(t *testing.T) {
	cases := []struct {
		intensity    string
		duration     float64
		wantCalories float64
	}{
		{"low", 30, 75},
		{"medium", 20, 75},
		{"high", 40, 200},
	}
	for _, tc := range cases {
		f, err := NewFlexibility("Yoga", tc.duration, tc.intensity)
		if err != nil {
			t.Fatalf("NewFlexibility(%q): %v", tc.intensity, err)
		}
		if got := f.Calories(); got != tc.wantCalories {
			t.Errorf("%s: Calories() = %v, want %v", tc.intensity, got, tc.wantCalories)
		}
		if got := f.Duration(); got != tc.duration {
			t.Errorf("%s: Duration() = %v, want %v", tc.intensity, got, tc.duration)
		}
	}
}

// TestFlexibilityInvalidIntensity verifies unknown intensities are rejected
// with ErrInvalidArgument.
func TestFlexibilityInvalidIntensity(t *testing.T) {
	for _, raw := range []string{"extreme", "", "mid", "lowish"} {
		_, err := NewFlexibility("Yoga", 30, raw)
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("NewFlexibility(%q) error = %v, want ErrInvalidArgument", raw, err)
		}
	}
}

// TestFlexibilityCaseInsensitive verifies "HIGH" and "high" produce the same
// stored intensity and calories.
func TestFlexibilityCaseInsensitive(t *testing.T) {
	upper, err := NewFlexibility("Yoga", 30, "HIGH")
	if err != nil {
		t.Fatal(err)
	}
	lower, err := NewFlexibility("Yoga", 30, "high")
	if err != nil {
		t.Fatal(err)
	}
	if upper.Intensity() != lower.Intensity() {
		t.Errorf("intensity %q != %q", upper.Intensity(), lower.Intensity())
	}
	if upper.Intensity() != IntensityHigh {
		t.Errorf("Intensity() = %q, want high", upper.Intensity())
	}
	if upper.Calories() != lower.Calories() {
		t.Errorf("calories %v != %v", upper.Calories(), lower.Calories())
	}
}

// TestFlexibilityString verifies intensity appears in the display string.
func TestFlexibilityString(t *testing.T) {
	f, err := NewFlexibility("Yoga", 30, "Medium")
	if err != nil {
		t.Fatal(err)
	}
	want := "Yoga (30.0 min, medium intensity): 112.5 calories"
	if got := f.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

// TestDefaultDateFromClock verifies the date defaults to the injected
// clock's calendar day in YYYY-MM-DD form.
func TestDefaultDateFromClock(t *testing.T) {
	c, err := NewCardio("Running", 5, 30, WithClock(fixedClock))
	if err != nil {
		t.Fatal(err)
	}
	if c.Date() != "2024-03-09" {
		t.Errorf("Date() = %q, want 2024-03-09", c.Date())
	}
}

// TestDefaultDateToday verifies that without a clock the date is today.
func TestDefaultDateToday(t *testing.T) {
	before := time.Now().Format(DateLayout)
	s, err := NewStrength("Squats", 100, 10, 3)
	if err != nil {
		t.Fatal(err)
	}
	after := time.Now().Format(DateLayout)
	if s.Date() != before && s.Date() != after {
		t.Errorf("Date() = %q, want %q", s.Date(), before)
	}
}

// TestExplicitDate verifies a supplied date is stored verbatim, even when a
// clock is also supplied.
func TestExplicitDate(t *testing.T) {
	f, err := NewFlexibility("Yoga", 30, "low", WithDate("2024-01-15"), WithClock(fixedClock))
	if err != nil {
		t.Fatal(err)
	}
	if f.Date() != "2024-01-15" {
		t.Errorf("Date() = %q, want 2024-01-15", f.Date())
	}

	odd, err := NewCardio("Running", 1, 10, WithDate("last tuesday"))
	if err != nil {
		t.Fatal(err)
	}
	if odd.Date() != "last tuesday" {
		t.Errorf("Date() = %q, want passthrough", odd.Date())
	}
}

// TestConstructorValidation verifies blank names and negative quantities are
// rejected with ErrInvalidArgument.
func TestConstructorValidation(t *testing.T) {
	cases := []struct {
		name string
		fn   func() error
	}{
		{"blank name", func() error { _, err := NewCardio("  ", 1, 1); return err }},
		{"negative distance", func() error { _, err := NewCardio("Run", -1, 1); return err }},
		{"negative cardio duration", func() error { _, err := NewCardio("Run", 1, -1); return err }},
		{"NaN distance", func() error { _, err := NewCardio("Run", math.NaN(), 1); return err }},
		{"negative weight", func() error { _, err := NewStrength("Lift", -5, 1, 1); return err }},
		{"negative reps", func() error { _, err := NewStrength("Lift", 5, -1, 1); return err }},
		{"negative sets", func() error { _, err := NewStrength("Lift", 5, 1, -1); return err }},
		{"negative flex duration", func() error { _, err := NewFlexibility("Yoga", -3, "low"); return err }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.fn(); !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("error = %v, want ErrInvalidArgument", err)
			}
		})
	}
}

// TestAllVariantsAreExercises verifies every variant satisfies Exercise and
// gets a distinct identity.
func TestAllVariantsAreExercises(t *testing.T) {
	cardio, _ := NewCardio("Running", 5, 30)
	strength, _ := NewStrength("Squats", 100, 10, 3)
	flex, _ := NewFlexibility("Yoga", 30, "medium")

	all := []Exercise{cardio, strength, flex}
	seen := map[string]bool{}
	for _, ex := range all {
		if ex.Date() == "" {
			t.Errorf("%s: empty date", ex.Name())
		}
		id := ex.ID().String()
		if seen[id] {
			t.Errorf("duplicate ID %s", id)
		}
		seen[id] = true
	}
}

// TestParseKind verifies kind lookup is case-insensitive and unknown kinds
// are a type mismatch.
func TestParseKind(t *testing.T) {
	for _, raw := range []string{"cardio", "Strength", " FLEXIBILITY "} {
		if _, err := ParseKind(raw); err != nil {
			t.Errorf("ParseKind(%q): %v", raw, err)
		}
	}
	if _, err := ParseKind("swimming"); !errors.Is(err, ErrTypeMismatch) {
		t.Errorf("ParseKind(swimming) error = %v, want ErrTypeMismatch", err)
	}
}

// TestFormatQuantity verifies whole numbers keep a fractional part.
func TestFormatQuantity(t *testing.T) {
	cases := map[float64]string{
		5:     "5.0",
		202.5: "202.5",
		0:     "0.0",
		627.5: "627.5",
		0.25:  "0.25",
	}
	for in, want := range cases {
		if got := FormatQuantity(in); got != want {
			t.Errorf("FormatQuantity(%v) = %q, want %q", in, got, want)
		}
	}
}
