package systems

import (
	"math"

	"github.com/automoto/ballpit/ball"
	"github.com/automoto/ballpit/components"
	cfg "github.com/automoto/ballpit/config"
	"github.com/automoto/ballpit/shared/gamemath"
	"github.com/automoto/ballpit/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDrag lets the pointer pick up, carry and throw balls. A ball is held
// while it has a Drag component.
func UpdateDrag(e *ecs.ECS) {
	input := getOrCreateInput(e)
	settings := GetOrCreateSettings(e)
	p := input.Pointer

	held := heldBalls(e)

	if !p.Pressed {
		for _, entry := range held {
			releaseBall(entry, settings.ShowShadow)
		}
		return
	}

	for _, entry := range held {
		carryBall(entry, p.X, p.Y)
	}

	if p.JustPressed() && !input.PointerCaptured && len(held) == 0 {
		if entry := ballAt(e, p.X, p.Y); entry != nil {
			grabBall(entry, p.X, p.Y)
		}
	}
}

func heldBalls(e *ecs.ECS) []*donburi.Entry {
	var held []*donburi.Entry
	components.Drag.Each(e.World, func(entry *donburi.Entry) {
		held = append(held, entry)
	})
	return held
}

// ballAt returns the ball under the point, preferring the one whose center is nearest.
func ballAt(e *ecs.ECS, x, y float64) *donburi.Entry {
	var best *donburi.Entry
	bestDist := math.Inf(1)
	tags.Ball.Each(e.World, func(entry *donburi.Entry) {
		b := components.Ball.Get(entry)
		if !b.Contains(x, y) {
			return
		}
		bx, by := components.Object.Get(entry).Center()
		if d := math.Hypot(x-bx, y-by); d < bestDist {
			best, bestDist = entry, d
		}
	})
	return best
}

func grabBall(entry *donburi.Entry, px, py float64) {
	obj := components.Object.Get(entry)
	cx, cy := obj.Center()

	entry.AddComponent(components.Drag)
	components.Drag.SetValue(entry, components.DragData{
		OffsetX: cx - px,
		OffsetY: cy - py,
	})

	physics := components.Physics.Get(entry)
	physics.SpeedX, physics.SpeedY = 0, 0
	physics.OnGround = nil

	b := components.Ball.Get(entry)
	b.AnimateShadow(false, cfg.Drag.ShadowDuration)
	components.BallEvents.Get(entry).Push(ball.DragStart())
}

// carryBall moves the ball toward the pointer, stopping at walls.
func carryBall(entry *donburi.Entry, px, py float64) {
	drag := components.Drag.Get(entry)
	obj := components.Object.Get(entry)
	cx, cy := obj.Center()

	dx := px + drag.OffsetX - cx
	dy := py + drag.OffsetY - cy

	// Move in steps no longer than a wall is thick so fast drags cannot skip one
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy)) / cfg.Physics.MaxSpeed))
	var movedX, movedY float64
	for i := 0; i < steps; i++ {
		mx, _ := sweep(obj.Object, dx/float64(steps), 0)
		obj.X += mx
		my, _ := sweep(obj.Object, 0, dy/float64(steps))
		obj.Y += my
		movedX += mx
		movedY += my
	}
	obj.Update()

	drag.Record(movedX, movedY, cfg.Drag.Samples)
}

func releaseBall(entry *donburi.Entry, showShadow bool) {
	drag := components.Drag.Get(entry)
	vx, vy := drag.Velocity()

	physics := components.Physics.Get(entry)
	physics.SpeedX = gamemath.ClampSpeed(vx, cfg.Drag.MaxThrowSpeed)
	physics.SpeedY = gamemath.ClampSpeed(vy, cfg.Drag.MaxThrowSpeed)

	entry.RemoveComponent(components.Drag)

	b := components.Ball.Get(entry)
	if showShadow {
		b.AnimateShadow(true, cfg.Drag.ShadowDuration)
	}
	components.BallEvents.Get(entry).Push(ball.DragEnd())
}
