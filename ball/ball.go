// Package ball animates a single ball: spring-driven squish and drag scaling,
// a collision-aligned body with a spinning logo, and a contact shadow.
//
// The ball never touches a renderer or physics engine directly. It writes
// transforms to Node values and is told about drags and collisions through
// Handle, so it can run against any scene graph.
package ball

import (
	"errors"
	"fmt"
	"math"

	"github.com/automoto/ballpit/shared/gamemath"
)

var (
	ErrInvalidRadius = errors.New("ball radius must be > 0")
	ErrMissingNode   = errors.New("ball node missing")
)

// Node is the part of a scene node the ball animates.
type Node interface {
	SetPosition(x, y float64)
	SetRotation(radians float64)
	SetScale(sx, sy float64)
	SetOpacity(alpha float64)

	// RotateBy spins the node by angle radians over duration seconds.
	RotateBy(angle, duration float64)
	// FadeTo animates the node's opacity over duration seconds.
	FadeTo(alpha, duration float64)
}

// Nodes is the ball's hierarchy:
//
//	Root
//	├── ShadowContainer
//	│   └── Shadow
//	└── Offset
//	    └── Rotation
//	        ├── Body
//	        └── Logo
type Nodes struct {
	Root            Node
	ShadowContainer Node
	Shadow          Node
	Offset          Node
	Rotation        Node
	Body            Node
	Logo            Node
}

func (n Nodes) validate() error {
	named := []struct {
		name string
		node Node
	}{
		{"root", n.Root},
		{"shadow container", n.ShadowContainer},
		{"shadow", n.Shadow},
		{"offset", n.Offset},
		{"rotation", n.Rotation},
		{"body", n.Body},
		{"logo", n.Logo},
	}
	for _, nn := range named {
		if nn.node == nil {
			return fmt.Errorf("%w: %s", ErrMissingNode, nn.name)
		}
	}
	return nil
}

// Rect is an axis-aligned box in world coordinates.
type Rect struct {
	X, Y, W, H float64
}

type Ball struct {
	id     string
	radius float64
	cfg    Config
	nodes  Nodes

	squish    *gamemath.SpringValue
	dragScale *gamemath.SpringValue

	beingDragged bool

	restorePending bool
	restoreIn      float64

	x, y float64
}

// New creates a ball at rest with its shadow hidden. Call AnimateShadow to
// bring the shadow in.
func New(id string, radius float64, nodes Nodes, cfg Config) (*Ball, error) {
	if !(radius > 0) || math.IsInf(radius, 0) {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidRadius, radius)
	}
	if err := nodes.validate(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	squish, err := gamemath.NewSpringValue(1, cfg.Squish)
	if err != nil {
		return nil, fmt.Errorf("squish: %w", err)
	}
	dragScale, err := gamemath.NewSpringValue(1, cfg.DragScale)
	if err != nil {
		return nil, fmt.Errorf("dragScale: %w", err)
	}

	b := &Ball{
		id:        id,
		radius:    radius,
		cfg:       cfg,
		nodes:     nodes,
		squish:    squish,
		dragScale: dragScale,
	}

	nodes.Shadow.SetOpacity(0)
	nodes.ShadowContainer.SetOpacity(0)

	return b, nil
}

func (b *Ball) ID() string { return b.id }
func (b *Ball) Radius() float64 { return b.radius }

// Position is the ball's center as of the last Update.
func (b *Ball) Position() (x, y float64) { return b.x, b.y }

// Rect is the ball's bounding box as of the last Update.
func (b *Ball) Rect() Rect {
	return Rect{X: b.x - b.radius, Y: b.y - b.radius, W: b.radius * 2, H: b.radius * 2}
}

// Contains reports whether the point lies on the ball as currently drawn.
func (b *Ball) Contains(px, py float64) bool {
	r := b.radius * math.Max(b.dragScale.Value(), 1)
	return math.Hypot(px-b.x, py-b.y) <= r
}

func (b *Ball) BeingDragged() bool { return b.beingDragged }

// SetBeingDragged grows the ball while it is held and lets it settle back on
// release, keeping whatever momentum the scale spring already has.
func (b *Ball) SetBeingDragged(dragged bool) {
	if dragged == b.beingDragged {
		return
	}
	b.beingDragged = dragged

	target := 1.0
	if dragged {
		target = b.cfg.DragScaleTarget
	}
	b.dragScale.SetTarget(target, b.dragScale.Velocity())
}

func (b *Ball) SquishOnCollision() bool { return b.cfg.SquishOnCollision }

func (b *Ball) SetSquishOnCollision(enabled bool) {
	b.cfg.SquishOnCollision = enabled
}

// Squish and DragScale expose the current spring values.
func (b *Ball) Squish() float64 { return b.squish.Value() }
func (b *Ball) DragScale() float64 { return b.dragScale.Value() }

// DidCollide orients the body along the contact normal and spins the logo in
// proportion to strength (0..1).
func (b *Ball) DidCollide(strength, normalX, normalY float64) {
	angle := math.Atan2(normalY, normalX)
	b.nodes.Rotation.SetRotation(angle)
	b.nodes.Body.SetRotation(-angle)

	b.nodes.Logo.SetRotation(-angle * 0.5)
	spin := gamemath.Remap(strength, 0, 1, 0, b.cfg.SpinMax)
	duration := gamemath.Remap(strength, 0, 1, b.cfg.SpinDurationMin, b.cfg.SpinDurationMax)
	b.nodes.Logo.RotateBy(spin, duration)

	if !b.cfg.SquishOnCollision {
		return
	}
	target := gamemath.Remap(strength, 0, 1, 1, b.cfg.SquishMin)
	velocity := gamemath.Remap(strength, 0, 1, b.cfg.SquishVelocityLow, b.cfg.SquishVelocityHigh)
	b.squish.SetTarget(target, velocity)
	b.restorePending = true
	b.restoreIn = b.cfg.SquishRestoreDelay
}

// AnimateShadow fades the contact shadow in or out over duration seconds.
func (b *Ball) AnimateShadow(visible bool, duration float64) {
	alpha := 0.0
	if visible {
		alpha = 1
	}
	b.nodes.ShadowContainer.FadeTo(alpha, duration)
}

// Handle applies a drag or collision event.
func (b *Ball) Handle(ev Event) {
	switch ev.Kind {
	case EventDragStart:
		b.SetBeingDragged(true)
	case EventDragEnd:
		b.SetBeingDragged(false)
	case EventCollision:
		b.DidCollide(ev.Strength, ev.NormalX, ev.NormalY)
	}
}

// Update advances the springs by dt seconds and writes the ball's transforms.
// (x, y) is the ball's center and groundY the surface its shadow falls on.
func (b *Ball) Update(dt, x, y, groundY float64) {
	b.x, b.y = x, y
	b.nodes.Root.SetPosition(x, y)

	if b.restorePending && dt > 0 {
		b.restoreIn -= dt
		if b.restoreIn <= 0 {
			b.restorePending = false
			b.squish.SetTarget(1, b.squish.Velocity())
		}
	}

	squish := b.squish.Advance(dt)
	drag := b.dragScale.Advance(dt)

	b.nodes.Shadow.SetPosition(0, groundY-b.radius*b.cfg.ShadowLift-y)
	distFromGround := groundY - (y + b.radius)
	b.nodes.Shadow.SetOpacity(gamemath.Remap(distFromGround, 0, b.cfg.ShadowFadeDistance, 1, 0))

	b.nodes.Rotation.SetScale(squish, 1)
	b.nodes.Offset.SetPosition(0, (1-squish)*b.radius/2)
	b.nodes.Body.SetScale(drag, drag)
}
