// Package exercise defines the logged exercise variants and their calorie and
// duration formulas.
package exercise

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DateLayout is the calendar date format used for exercise dates.
const DateLayout = "2006-01-02"

var (
	// ErrInvalidArgument is returned when an exercise is constructed with a
	// value outside its accepted domain.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrTypeMismatch is returned when a value that is not an Exercise is
	// offered where one is required.
	ErrTypeMismatch = errors.New("type mismatch")
)

// Exercise is the capability set shared by every exercise variant.
// The set of implementations is closed: Cardio, Strength and Flexibility.
type Exercise interface {
	ID() uuid.UUID
	Kind() Kind
	Name() string
	Date() string
	// Calories returns the estimated calories burned.
	Calories() float64
	// Duration returns the exercise duration in minutes.
	Duration() float64
	String() string

	sealed()
}

// Kind identifies an exercise variant.
type Kind string

const (
	KindCardio      Kind = "cardio"
	KindStrength    Kind = "strength"
	KindFlexibility Kind = "flexibility"
)

// Kinds returns every exercise kind in display order.
func Kinds() []Kind {
	return []Kind{KindCardio, KindStrength, KindFlexibility}
}

// ParseKind maps a case-insensitive kind name to its Kind.
func ParseKind(raw string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(raw)))
	switch k {
	case KindCardio, KindStrength, KindFlexibility:
		return k, nil
	}
	return "", fmt.Errorf("unknown exercise kind %q: %w", raw, ErrTypeMismatch)
}

// Option configures fields shared by all variants.
type Option func(*options)

type options struct {
	date string
	now  func() time.Time
}

// WithDate sets the exercise date. The value is stored verbatim.
func WithDate(date string) Option {
	return func(o *options) { o.date = date }
}

// WithClock sets the time source used to derive the default date.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}

// base holds the fields common to every variant. It is never mutated after
// construction.
type base struct {
	id   uuid.UUID
	name string
	date string
}

func newBase(name string, opts []Option) (base, error) {
	if strings.TrimSpace(name) == "" {
		return base{}, fmt.Errorf("name is required: %w", ErrInvalidArgument)
	}
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	date := o.date
	if date == "" {
		date = o.now().Format(DateLayout)
	}
	return base{id: uuid.New(), name: name, date: date}, nil
}

func (b *base) ID() uuid.UUID { return b.id }
func (b *base) Name() string  { return b.name }
func (b *base) Date() string  { return b.date }

func checkNonNegative(field string, v float64) error {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%s must be a non-negative number, got %v: %w", field, v, ErrInvalidArgument)
	}
	return nil
}

// FormatQuantity renders a float the way display strings expect:
// shortest representation, always with a fractional part ("5.0", "202.5").
func FormatQuantity(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
