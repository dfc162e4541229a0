package gamemath

import (
	"errors"
	"fmt"
	"math"

	"github.com/charmbracelet/harmonica"
)

// ErrInvalidSpring is returned when a spring is built from out-of-range parameters.
var ErrInvalidSpring = errors.New("invalid spring parameters")

// SpringParams describes how a SpringValue approaches its target.
//
// Response is the period in seconds of the undamped oscillation; smaller values
// make the spring stiffer. DampingRatio 1 settles as fast as possible without
// overshoot, values below 1 oscillate and values above 1 creep in slowly.
type SpringParams struct {
	Response     float64 `yaml:"response"`
	DampingRatio float64 `yaml:"dampingRatio"`
}

// Validate reports whether the parameters describe a usable spring.
func (p SpringParams) Validate() error {
	if !isFinite(p.Response) || p.Response <= 0 {
		return fmt.Errorf("%w: response must be > 0, got %v", ErrInvalidSpring, p.Response)
	}
	if !isFinite(p.DampingRatio) || p.DampingRatio < 0 {
		return fmt.Errorf("%w: damping ratio must be >= 0, got %v", ErrInvalidSpring, p.DampingRatio)
	}
	return nil
}

// AngularFrequency converts Response into the spring's natural angular frequency.
func (p SpringParams) AngularFrequency() float64 {
	return 2 * math.Pi / p.Response
}

// SpringValue animates a scalar toward a target with damped spring motion.
// It is advanced by the owner's frame tick and never allocates after construction.
type SpringValue struct {
	current  float64
	velocity float64
	target   float64

	params SpringParams

	// Coefficients depend on the step size, so they are rebuilt only when dt changes.
	spring harmonica.Spring
	step   float64
}

// NewSpringValue creates a spring at rest on initial.
func NewSpringValue(initial float64, params SpringParams) (*SpringValue, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if !isFinite(initial) {
		return nil, fmt.Errorf("%w: initial value must be finite, got %v", ErrInvalidSpring, initial)
	}
	return &SpringValue{
		current: initial,
		target:  initial,
		params:  params,
	}, nil
}

// MustSpringValue is NewSpringValue for parameters known to be valid.
func MustSpringValue(initial float64, params SpringParams) *SpringValue {
	s, err := NewSpringValue(initial, params)
	if err != nil {
		panic(err)
	}
	return s
}

// Advance integrates the spring dt seconds forward and returns the new value.
// The closed-form solution is used, so any positive dt is stable. A zero or
// negative dt leaves the spring untouched.
func (s *SpringValue) Advance(dt float64) float64 {
	if !(dt > 0) || math.IsInf(dt, 0) {
		return s.current
	}
	if dt != s.step {
		s.spring = harmonica.NewSpring(dt, s.params.AngularFrequency(), s.params.DampingRatio)
		s.step = dt
	}
	s.current, s.velocity = s.spring.Update(s.current, s.velocity, s.target)
	return s.current
}

// SetTarget moves the spring's rest point and replaces its velocity.
// Pass Velocity() to keep the current momentum.
func (s *SpringValue) SetTarget(target, velocity float64) {
	s.target = target
	s.velocity = velocity
}

// Snap puts the spring at rest on value.
func (s *SpringValue) Snap(value float64) {
	s.current = value
	s.target = value
	s.velocity = 0
}

func (s *SpringValue) Value() float64 { return s.current }
func (s *SpringValue) Velocity() float64 { return s.velocity }
func (s *SpringValue) Target() float64 { return s.target }
func (s *SpringValue) Params() SpringParams { return s.params }

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
