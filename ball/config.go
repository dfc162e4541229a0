package ball

import (
	"fmt"
	"math"

	"github.com/automoto/ballpit/shared/gamemath"
)

// Config tunes how a ball animates. Sizes are multiples of the ball radius.
type Config struct {
	Squish    gamemath.SpringParams `yaml:"squish"`
	DragScale gamemath.SpringParams `yaml:"dragScale"`

	DragScaleTarget float64 `yaml:"dragScaleTarget"` // body scale while held

	// Collision squish, off by default.
	SquishOnCollision  bool    `yaml:"squishOnCollision"`
	SquishMin          float64 `yaml:"squishMin"`          // squish at full collision strength
	SquishVelocityLow  float64 `yaml:"squishVelocityLow"`  // spring kick at zero strength
	SquishVelocityHigh float64 `yaml:"squishVelocityHigh"` // spring kick at full strength
	SquishRestoreDelay float64 `yaml:"squishRestoreDelay"` // seconds before springing back

	// Logo spin after a collision.
	SpinMax         float64 `yaml:"spinMax"`         // radians at full strength
	SpinDurationMin float64 `yaml:"spinDurationMin"` // seconds at zero strength
	SpinDurationMax float64 `yaml:"spinDurationMax"` // seconds at full strength

	// Contact shadow.
	ShadowFadeDistance float64 `yaml:"shadowFadeDistance"` // pixels above ground where the shadow vanishes
	ShadowLift         float64 `yaml:"shadowLift"`
	ShadowWidth        float64 `yaml:"shadowWidth"`
	ShadowAspect       float64 `yaml:"shadowAspect"` // height / width

	LogoWidth  float64 `yaml:"logoWidth"`
	LogoHeight float64 `yaml:"logoHeight"`
}

// DefaultConfig returns the tuning the ball was designed with.
func DefaultConfig() Config {
	return Config{
		Squish:    gamemath.SpringParams{Response: 0.3, DampingRatio: 0.5},
		DragScale: gamemath.SpringParams{Response: 0.2, DampingRatio: 0.8},

		DragScaleTarget: 1.05,

		SquishOnCollision:  false,
		SquishMin:          0.8,
		SquishVelocityLow:  -5,
		SquishVelocityHigh: -10,
		SquishRestoreDelay: 0.01,

		SpinMax:         2 * math.Pi,
		SpinDurationMin: 1,
		SpinDurationMax: 3,

		ShadowFadeDistance: 200,
		ShadowLift:         0.3,
		ShadowWidth:        4,
		ShadowAspect:       0.564,

		LogoWidth:  1.5,
		LogoHeight: 2,
	}
}

// Validate checks the springs and the values that would otherwise produce
// degenerate geometry.
func (c Config) Validate() error {
	if err := c.Squish.Validate(); err != nil {
		return fmt.Errorf("squish: %w", err)
	}
	if err := c.DragScale.Validate(); err != nil {
		return fmt.Errorf("dragScale: %w", err)
	}
	if c.ShadowFadeDistance <= 0 {
		return fmt.Errorf("shadowFadeDistance must be > 0, got %v", c.ShadowFadeDistance)
	}
	if c.SquishRestoreDelay < 0 || c.SpinDurationMin < 0 || c.SpinDurationMax < 0 {
		return fmt.Errorf("durations must not be negative")
	}
	return nil
}

// BodySize is the size of the ball image for radius.
func (c Config) BodySize(radius float64) (w, h float64) {
	return radius * 2, radius * 2
}

// ShadowSize is the size of the contact shadow for radius.
func (c Config) ShadowSize(radius float64) (w, h float64) {
	w = radius * c.ShadowWidth
	return w, w * c.ShadowAspect
}

// LogoSize is the size of the logo drawn over the ball for radius.
func (c Config) LogoSize(radius float64) (w, h float64) {
	return radius * c.LogoWidth, radius * c.LogoHeight
}
