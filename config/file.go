package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/automoto/ballpit/ball"
)

// ErrInvalidConfig is returned when a config file decodes but holds unusable values.
var ErrInvalidConfig = errors.New("invalid config")

// Overrides is the part of the configuration a YAML file may change.
// Keys left out of the file keep their current values.
type Overrides struct {
	Ball    ball.Config   `yaml:"ball"`
	Physics PhysicsConfig `yaml:"physics"`
	Drag    DragConfig    `yaml:"drag"`
	Spawn   SpawnConfig   `yaml:"spawn"`
}

func current() Overrides {
	return Overrides{Ball: Ball, Physics: Physics, Drag: Drag, Spawn: Spawn}
}

// LoadFile reads a YAML file and applies it over the current configuration.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := Apply(data); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// Apply decodes a YAML document over the current configuration. Unknown keys
// are rejected, and nothing changes unless the merged result validates.
func Apply(data []byte) error {
	o := current()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&o); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode config: %w", err)
	}

	if err := o.Validate(); err != nil {
		return err
	}

	Ball = o.Ball
	Physics = o.Physics
	Drag = o.Drag
	Spawn = o.Spawn
	return nil
}

// Validate checks values that would break the simulation.
func (o Overrides) Validate() error {
	if err := o.Ball.Validate(); err != nil {
		return fmt.Errorf("%w: ball: %w", ErrInvalidConfig, err)
	}
	p := o.Physics
	switch {
	case p.MaxSpeed <= 0:
		return fmt.Errorf("%w: physics.maxSpeed must be > 0", ErrInvalidConfig)
	case p.Restitution < 0 || p.Restitution > 1:
		return fmt.Errorf("%w: physics.restitution must be within [0, 1]", ErrInvalidConfig)
	case p.MaxImpactSpeed <= p.MinImpactSpeed:
		return fmt.Errorf("%w: physics.maxImpactSpeed must exceed minImpactSpeed", ErrInvalidConfig)
	case p.CellSize <= 0:
		return fmt.Errorf("%w: physics.cellSize must be > 0", ErrInvalidConfig)
	}
	if o.Drag.Samples <= 0 {
		return fmt.Errorf("%w: drag.samples must be > 0", ErrInvalidConfig)
	}
	if o.Spawn.DefaultRadius <= 0 {
		return fmt.Errorf("%w: spawn.defaultRadius must be > 0", ErrInvalidConfig)
	}
	if o.Spawn.MaxBalls < o.Spawn.InitialBalls {
		return fmt.Errorf("%w: spawn.maxBalls must be >= initialBalls", ErrInvalidConfig)
	}
	return nil
}
