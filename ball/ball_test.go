package ball

import (
	"errors"
	"math"
	"testing"
)

type rotateCall struct {
	angle, duration float64
}

type fakeNode struct {
	x, y      float64
	rotation  float64
	sx, sy    float64
	opacity   float64
	rotations []rotateCall
	fades     []float64
}

func newFakeNode() *fakeNode {
	return &fakeNode{sx: 1, sy: 1, opacity: 1}
}

func (f *fakeNode) SetPosition(x, y float64) { f.x, f.y = x, y }
func (f *fakeNode) SetRotation(r float64) { f.rotation = r }
func (f *fakeNode) SetScale(sx, sy float64) { f.sx, f.sy = sx, sy }
func (f *fakeNode) SetOpacity(a float64) { f.opacity = a }

func (f *fakeNode) RotateBy(angle, duration float64) {
	f.rotations = append(f.rotations, rotateCall{angle, duration})
}

func (f *fakeNode) FadeTo(alpha, duration float64) {
	f.fades = append(f.fades, alpha)
}

type fakeNodes struct {
	root, shadowContainer, shadow, offset, rotation, body, logo *fakeNode
}

func (f fakeNodes) nodes() Nodes {
	return Nodes{
		Root:            f.root,
		ShadowContainer: f.shadowContainer,
		Shadow:          f.shadow,
		Offset:          f.offset,
		Rotation:        f.rotation,
		Body:            f.body,
		Logo:            f.logo,
	}
}

func newTestBall(t *testing.T, cfg Config) (*Ball, fakeNodes) {
	t.Helper()
	f := fakeNodes{
		root:            newFakeNode(),
		shadowContainer: newFakeNode(),
		shadow:          newFakeNode(),
		offset:          newFakeNode(),
		rotation:        newFakeNode(),
		body:            newFakeNode(),
		logo:            newFakeNode(),
	}
	b, err := New("ball-1", 20, f.nodes(), cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return b, f
}

const dt = 1.0 / 60.0

func near(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestNewStartsWithHiddenShadow(t *testing.T) {
	b, f := newTestBall(t, DefaultConfig())
	if f.shadow.opacity != 0 || f.shadowContainer.opacity != 0 {
		t.Errorf("expected shadow hidden, got %v / %v", f.shadow.opacity, f.shadowContainer.opacity)
	}
	if b.ID() != "ball-1" || b.Radius() != 20 {
		t.Errorf("unexpected identity %q r=%v", b.ID(), b.Radius())
	}
	if b.Squish() != 1 || b.DragScale() != 1 {
		t.Errorf("expected springs at rest on 1, got %v / %v", b.Squish(), b.DragScale())
	}
}

func TestNewRejectsBadInput(t *testing.T) {
	good := fakeNodes{
		root: newFakeNode(), shadowContainer: newFakeNode(), shadow: newFakeNode(),
		offset: newFakeNode(), rotation: newFakeNode(), body: newFakeNode(), logo: newFakeNode(),
	}
	missing := good.nodes()
	missing.Logo = nil

	badSpring := DefaultConfig()
	badSpring.Squish.Response = 0

	tests := []struct {
		name   string
		radius float64
		nodes  Nodes
		cfg    Config
		target error
	}{
		{"zero radius", 0, good.nodes(), DefaultConfig(), ErrInvalidRadius},
		{"negative radius", -3, good.nodes(), DefaultConfig(), ErrInvalidRadius},
		{"nan radius", math.NaN(), good.nodes(), DefaultConfig(), ErrInvalidRadius},
		{"missing node", 10, missing, DefaultConfig(), ErrMissingNode},
		{"bad spring", 10, good.nodes(), badSpring, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New("x", tt.radius, tt.nodes, tt.cfg)
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.target != nil && !errors.Is(err, tt.target) {
				t.Errorf("expected %v, got %v", tt.target, err)
			}
		})
	}
}

func TestDragScaleGrowsAndSettles(t *testing.T) {
	cfg := DefaultConfig()
	b, f := newTestBall(t, cfg)

	b.Handle(DragStart())
	if !b.BeingDragged() {
		t.Fatal("expected ball to be dragged")
	}
	for i := 0; i < 120; i++ {
		b.Update(dt, 100, 100, 300)
	}
	if !near(f.body.sx, cfg.DragScaleTarget, 1e-3) || f.body.sx != f.body.sy {
		t.Fatalf("expected body scaled to %v uniformly, got %v x %v", cfg.DragScaleTarget, f.body.sx, f.body.sy)
	}

	b.Handle(DragEnd())
	for i := 0; i < 120; i++ {
		b.Update(dt, 100, 100, 300)
	}
	if !near(f.body.sx, 1, 1e-3) {
		t.Errorf("expected body back to 1, got %v", f.body.sx)
	}
}

func TestSetBeingDraggedIgnoresRepeats(t *testing.T) {
	b, _ := newTestBall(t, DefaultConfig())
	b.SetBeingDragged(true)
	for i := 0; i < 5; i++ {
		b.Update(dt, 0, 0, 100)
	}
	v := b.dragScale.Velocity()

	b.SetBeingDragged(true)
	if b.dragScale.Velocity() != v {
		t.Errorf("repeat call should not touch the spring")
	}
}

func TestDidCollideOrientsNodes(t *testing.T) {
	tests := []struct {
		name     string
		strength float64
		nx, ny   float64
		angle    float64
		spin     float64
		duration float64
	}{
		{"floor full strength", 1, 0, -1, -math.Pi / 2, 2 * math.Pi, 3},
		{"wall half strength", 0.5, 1, 0, 0, math.Pi, 2},
		{"ceiling no strength", 0, 0, 1, math.Pi / 2, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, f := newTestBall(t, DefaultConfig())
			b.Handle(Collision(tt.strength, tt.nx, tt.ny))

			if !near(f.rotation.rotation, tt.angle, 1e-9) {
				t.Errorf("rotation container: expected %v, got %v", tt.angle, f.rotation.rotation)
			}
			if !near(f.body.rotation, -tt.angle, 1e-9) {
				t.Errorf("body: expected %v, got %v", -tt.angle, f.body.rotation)
			}
			if !near(f.logo.rotation, -tt.angle*0.5, 1e-9) {
				t.Errorf("logo: expected %v, got %v", -tt.angle*0.5, f.logo.rotation)
			}
			if len(f.logo.rotations) != 1 {
				t.Fatalf("expected one spin, got %d", len(f.logo.rotations))
			}
			got := f.logo.rotations[0]
			if !near(got.angle, tt.spin, 1e-9) || !near(got.duration, tt.duration, 1e-9) {
				t.Errorf("spin: expected %v over %v, got %v over %v", tt.spin, tt.duration, got.angle, got.duration)
			}
		})
	}
}

func TestSquishIsOffByDefault(t *testing.T) {
	b, f := newTestBall(t, DefaultConfig())
	b.Handle(Collision(1, 0, -1))
	for i := 0; i < 10; i++ {
		b.Update(dt, 0, 0, 100)
	}
	if b.Squish() != 1 || f.rotation.sx != 1 || f.offset.y != 0 {
		t.Errorf("expected no squish, got squish=%v sx=%v offset=%v", b.Squish(), f.rotation.sx, f.offset.y)
	}
}

func TestSquishOnCollision(t *testing.T) {
	b, f := newTestBall(t, DefaultConfig())
	b.SetSquishOnCollision(true)
	if !b.SquishOnCollision() {
		t.Fatal("expected toggle on")
	}

	b.Handle(Collision(1, 0, -1))
	if !near(b.squish.Target(), 0.8, 1e-12) {
		t.Fatalf("expected squish target 0.8, got %v", b.squish.Target())
	}
	if !near(b.squish.Velocity(), -10, 1e-12) {
		t.Fatalf("expected kick -10, got %v", b.squish.Velocity())
	}

	b.Update(dt, 0, 0, 100)
	if b.squish.Target() != 1 {
		t.Errorf("expected restore to 1 after the delay, got %v", b.squish.Target())
	}
	if b.Squish() >= 1 {
		t.Errorf("expected ball compressed, got %v", b.Squish())
	}
	if !near(f.rotation.sx, b.Squish(), 1e-12) || f.rotation.sy != 1 {
		t.Errorf("expected x-scale to follow squish, got %v x %v", f.rotation.sx, f.rotation.sy)
	}
	want := (1 - b.Squish()) * b.Radius() / 2
	if !near(f.offset.y, want, 1e-12) || want <= 0 {
		t.Errorf("expected offset %v, got %v", want, f.offset.y)
	}

	for i := 0; i < 300; i++ {
		b.Update(dt, 0, 0, 100)
	}
	if !near(b.Squish(), 1, 1e-3) {
		t.Errorf("expected squish to settle on 1, got %v", b.Squish())
	}
}

func TestShadowFollowsGround(t *testing.T) {
	cfg := DefaultConfig()
	b, f := newTestBall(t, cfg)

	tests := []struct {
		name    string
		y       float64
		groundY float64
		alpha   float64
	}{
		{"resting", 280, 300, 1},
		{"halfway", 180, 300, 0.5},
		{"at fade distance", 80, 300, 0},
		{"beyond fade distance", 0, 300, -0.4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b.Update(dt, 50, tt.y, tt.groundY)
			if f.root.x != 50 || f.root.y != tt.y {
				t.Errorf("root at %v,%v", f.root.x, f.root.y)
			}
			wantY := tt.groundY - b.Radius()*cfg.ShadowLift - tt.y
			if !near(f.shadow.y, wantY, 1e-9) {
				t.Errorf("shadow y: expected %v, got %v", wantY, f.shadow.y)
			}
			if !near(f.shadow.opacity, tt.alpha, 1e-9) {
				t.Errorf("shadow alpha: expected %v, got %v", tt.alpha, f.shadow.opacity)
			}
		})
	}
}

func TestAnimateShadow(t *testing.T) {
	b, f := newTestBall(t, DefaultConfig())
	b.AnimateShadow(true, 0.3)
	b.AnimateShadow(false, 0.3)
	if len(f.shadowContainer.fades) != 2 || f.shadowContainer.fades[0] != 1 || f.shadowContainer.fades[1] != 0 {
		t.Errorf("unexpected fades %v", f.shadowContainer.fades)
	}
}

func TestContainsAndRect(t *testing.T) {
	b, _ := newTestBall(t, DefaultConfig())
	b.Update(dt, 100, 50, 200)

	r := b.Rect()
	if r != (Rect{X: 80, Y: 30, W: 40, H: 40}) {
		t.Errorf("unexpected rect %+v", r)
	}
	if !b.Contains(110, 60) {
		t.Error("expected point inside")
	}
	if b.Contains(119, 69) {
		t.Error("expected corner outside the circle")
	}
}

func TestZeroDtKeepsSprings(t *testing.T) {
	b, _ := newTestBall(t, DefaultConfig())
	b.SetBeingDragged(true)
	b.Update(0, 0, 0, 100)
	if b.DragScale() != 1 {
		t.Errorf("expected no progress at dt 0, got %v", b.DragScale())
	}
}
