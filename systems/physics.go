package systems

import (
	"github.com/automoto/ballpit/components"
	"github.com/automoto/ballpit/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics applies gravity and rolling friction to every free ball.
// Held balls are moved by UpdateDrag instead.
func UpdatePhysics(ecs *ecs.ECS) {
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Drag) {
			return
		}

		physics := components.Physics.Get(e)

		// Friction only while rolling on a surface
		if physics.OnGround != nil {
			physics.SpeedX = gamemath.ApplyFriction(physics.SpeedX, physics.Friction)
		}

		// Apply gravity
		physics.SpeedY += physics.Gravity

		physics.SpeedX = gamemath.ClampSpeed(physics.SpeedX, physics.MaxSpeed)
		physics.SpeedY = gamemath.ClampSpeed(physics.SpeedY, physics.MaxSpeed)
	})
}
