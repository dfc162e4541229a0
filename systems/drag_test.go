package systems

import (
	"testing"

	"github.com/automoto/ballpit/ball"
	"github.com/automoto/ballpit/components"
	cfg "github.com/automoto/ballpit/config"
	"github.com/automoto/ballpit/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// pointerTo feeds one tick of pointer state without polling ebiten.
func pointerTo(e *ecs.ECS, x, y float64, pressed bool) {
	input := getOrCreateInput(e)
	input.Pointer.Previous = input.Pointer.Pressed
	input.Pointer.X, input.Pointer.Y = x, y
	input.Pointer.Pressed = pressed
	UpdateDrag(e)
}

func eventKinds(events []ball.Event) []ball.EventKind {
	kinds := make([]ball.EventKind, len(events))
	for i, ev := range events {
		kinds[i] = ev.Kind
	}
	return kinds
}

func TestDragLifecycle(t *testing.T) {
	e := newTestECS(t)
	entry := addBall(t, e, "a", 200, 200, 20)
	b := components.Ball.Get(entry)

	pointerTo(e, 205, 200, true)
	if !entry.HasComponent(components.Drag) {
		t.Fatal("expected ball to be picked up")
	}
	UpdateBalls(e)
	if !b.BeingDragged() {
		t.Fatal("expected the ball to know it is held")
	}

	pointerTo(e, 215, 200, true)
	pointerTo(e, 225, 200, true)
	if x, y := ballCenter(entry); !near(x, 220, 1e-9) || y != 200 {
		t.Fatalf("expected the grab offset kept, center at (%v, %v)", x, y)
	}

	pointerTo(e, 225, 200, false)
	if entry.HasComponent(components.Drag) {
		t.Fatal("expected ball released")
	}
	physics := components.Physics.Get(entry)
	if !near(physics.SpeedX, 10, 1e-9) || physics.SpeedY != 0 {
		t.Errorf("expected throw of (10, 0), got (%v, %v)", physics.SpeedX, physics.SpeedY)
	}

	got := eventKinds(components.BallEvents.Get(entry).Pending)
	if len(got) != 1 || got[0] != ball.EventDragEnd {
		t.Errorf("expected a pending DragEnd, got %v", got)
	}
	UpdateBalls(e)
	if b.BeingDragged() {
		t.Error("expected the ball to know it was released")
	}
}

func TestThrowIsClamped(t *testing.T) {
	e := newTestECS(t)
	entry := addBall(t, e, "a", 100, 200, 20)

	pointerTo(e, 100, 200, true)
	pointerTo(e, 300, 100, true)
	pointerTo(e, 300, 100, false)

	physics := components.Physics.Get(entry)
	if physics.SpeedX != cfg.Drag.MaxThrowSpeed || physics.SpeedY != -cfg.Drag.MaxThrowSpeed {
		t.Errorf("expected throw clamped to %v, got (%v, %v)", cfg.Drag.MaxThrowSpeed, physics.SpeedX, physics.SpeedY)
	}
}

func TestDragStopsAtWalls(t *testing.T) {
	e := newTestECS(t)
	factory.CreateWall(e, 300, 0, 20, 360)
	entry := addBall(t, e, "a", 200, 200, 20)

	pointerTo(e, 200, 200, true)
	pointerTo(e, 500, 200, true)

	if x, _ := ballCenter(entry); x+20 > 300+contactEpsilon {
		t.Errorf("expected the wall to stop the ball, right edge at %v", x+20)
	}
}

func TestGrabRules(t *testing.T) {
	tests := []struct {
		name     string
		x, y     float64
		captured bool
		want     bool
	}{
		{"on the ball", 210, 200, false, true},
		{"beside the ball", 230, 200, false, false},
		{"over the panel", 210, 200, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestECS(t)
			entry := addBall(t, e, "a", 200, 200, 20)
			getOrCreateInput(e).PointerCaptured = tt.captured

			pointerTo(e, tt.x, tt.y, true)
			if got := entry.HasComponent(components.Drag); got != tt.want {
				t.Errorf("held = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGrabPicksNearestBall(t *testing.T) {
	e := newTestECS(t)
	left := addBall(t, e, "left", 200, 200, 20)
	right := addBall(t, e, "right", 230, 200, 20)

	pointerTo(e, 218, 200, true)

	if left.HasComponent(components.Drag) || !right.HasComponent(components.Drag) {
		t.Error("expected the ball whose center is nearest to be picked up")
	}
}

func TestCapturePointer(t *testing.T) {
	e := newTestECS(t)
	entry := addBall(t, e, "a", 600, 30, 20)
	overPanel := func(x, y float64) bool { return x > 560 && y < 100 }

	input := getOrCreateInput(e)
	input.Pointer.X, input.Pointer.Y = 600, 30
	NewCapturePointer(overPanel)(e)
	if !input.PointerCaptured {
		t.Fatal("expected the pointer captured over the panel")
	}

	pointerTo(e, 600, 30, true)
	if entry.HasComponent(components.Drag) {
		t.Error("expected no grab through the panel")
	}
}
