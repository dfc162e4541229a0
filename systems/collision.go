package systems

import (
	"math"

	"github.com/automoto/ballpit/ball"
	"github.com/automoto/ballpit/components"
	cfg "github.com/automoto/ballpit/config"
	"github.com/automoto/ballpit/shared/gamemath"
	"github.com/automoto/ballpit/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// contactEpsilon keeps touching surfaces from counting as overlapping.
const contactEpsilon = 0.01

type ballBody struct {
	entry   *donburi.Entry
	obj     *resolv.Object
	physics *components.PhysicsData
	held    bool
}

// UpdateCollisions moves every free ball against the walls, then separates
// and bounces balls that touch each other. Impacts fast enough to matter
// become a collision event on the ball.
func UpdateCollisions(ecs *ecs.ECS) {
	var bodies []*ballBody
	tags.Ball.Each(ecs.World, func(e *donburi.Entry) {
		bodies = append(bodies, &ballBody{
			entry:   e,
			obj:     components.Object.Get(e).Object,
			physics: components.Physics.Get(e),
			held:    e.HasComponent(components.Drag),
		})
	})

	for _, b := range bodies {
		b.physics.Impacts = b.physics.Impacts[:0]
		if b.held {
			continue
		}
		moveBall(b.physics, b.obj)
		b.obj.Update()
	}

	resolveBallContacts(bodies)

	for _, b := range bodies {
		raiseCollisionEvent(b.entry, b.physics)
	}
}

// moveBall applies the ball's speed one axis at a time, bouncing off solids.
func moveBall(physics *components.PhysicsData, obj *resolv.Object) {
	physics.OnGround = nil

	moved, hit := sweep(obj, physics.SpeedX, 0)
	obj.X += moved
	if hit != nil {
		nx := -1.0
		if physics.SpeedX < 0 {
			nx = 1
		}
		recordImpact(physics, math.Abs(physics.SpeedX), nx, 0)
		physics.SpeedX = gamemath.Bounce(physics.SpeedX, physics.Restitution, cfg.Physics.RestSpeed)
	}

	moved, hit = sweep(obj, 0, physics.SpeedY)
	obj.Y += moved
	if hit != nil {
		ny := 1.0
		if physics.SpeedY > 0 {
			ny = -1
			physics.OnGround = hit
		}
		recordImpact(physics, math.Abs(physics.SpeedY), 0, ny)
		physics.SpeedY = gamemath.Bounce(physics.SpeedY, physics.Restitution, cfg.Physics.RestSpeed)
	}
}

// sweep returns how far obj can travel along one axis (dx or dy, the other
// being zero) before touching a solid, and the solid it touches.
func sweep(obj *resolv.Object, dx, dy float64) (float64, *resolv.Object) {
	d := dx + dy
	if d == 0 {
		return 0, nil
	}

	check := obj.Check(dx, dy, tags.ResolvSolid)
	if check == nil {
		return d, nil
	}

	dist := math.Abs(d)
	var hit *resolv.Object
	for _, s := range check.ObjectsByTags(tags.ResolvSolid) {
		gap, ok := gapTo(obj, s, dx, dy)
		if !ok || gap > dist {
			continue
		}
		dist, hit = gap, s
	}
	if hit == nil {
		return d, nil
	}
	return math.Copysign(dist, d), hit
}

// gapTo measures the free space between obj's leading edge and s in the
// direction of travel. Solids that are behind the leading edge or beside the
// path are not in the way.
func gapTo(obj, s *resolv.Object, dx, dy float64) (float64, bool) {
	switch {
	case dx > 0:
		if !overlaps(obj.Y, obj.H, s.Y, s.H) || s.X+s.W <= obj.X+obj.W {
			return 0, false
		}
		return math.Max(0, s.X-(obj.X+obj.W)), true
	case dx < 0:
		if !overlaps(obj.Y, obj.H, s.Y, s.H) || s.X >= obj.X {
			return 0, false
		}
		return math.Max(0, obj.X-(s.X+s.W)), true
	case dy > 0:
		if !overlaps(obj.X, obj.W, s.X, s.W) || s.Y+s.H <= obj.Y+obj.H {
			return 0, false
		}
		return math.Max(0, s.Y-(obj.Y+obj.H)), true
	case dy < 0:
		if !overlaps(obj.X, obj.W, s.X, s.W) || s.Y >= obj.Y {
			return 0, false
		}
		return math.Max(0, obj.Y-(s.Y+s.H)), true
	}
	return 0, false
}

func overlaps(a, aLen, b, bLen float64) bool {
	return a+aLen > b+contactEpsilon && b+bLen > a+contactEpsilon
}

// resolveBallContacts uses the space as a broad phase and treats balls as
// circles of equal mass. Held balls act as immovable.
func resolveBallContacts(bodies []*ballBody) {
	index := make(map[*resolv.Object]int, len(bodies))
	for i, b := range bodies {
		index[b.obj] = i
	}

	for i, a := range bodies {
		check := a.obj.Check(0, 0, tags.ResolvBall)
		if check == nil {
			continue
		}
		for _, o := range check.ObjectsByTags(tags.ResolvBall) {
			// Each pair once
			if j, ok := index[o]; ok && j > i {
				collideBalls(a, bodies[j])
			}
		}
	}
}

func collideBalls(a, b *ballBody) {
	if a.held && b.held {
		return
	}
	ax, ay := a.obj.X+a.obj.W/2, a.obj.Y+a.obj.H/2
	bx, by := b.obj.X+b.obj.W/2, b.obj.Y+b.obj.H/2
	nx, ny, depth, ok := gamemath.CircleContact(ax, ay, a.obj.W/2, bx, by, b.obj.W/2)
	if !ok {
		return
	}

	switch {
	case a.held:
		pushBall(b, nx*depth, ny*depth)
	case b.held:
		pushBall(a, -nx*depth, -ny*depth)
	default:
		pushBall(a, -nx*depth/2, -ny*depth/2)
		pushBall(b, nx*depth/2, ny*depth/2)
	}

	restitution := (a.physics.Restitution + b.physics.Restitution) / 2
	va := gamemath.Velocity{X: a.physics.SpeedX, Y: a.physics.SpeedY}
	vb := gamemath.Velocity{X: b.physics.SpeedX, Y: b.physics.SpeedY}

	var closing float64
	switch {
	case a.held:
		vb, closing = reflectOff(vb, nx, ny, restitution)
	case b.held:
		va, closing = reflectOff(va, -nx, -ny, restitution)
	default:
		va, vb, closing = gamemath.CollideEqualMass(va, vb, nx, ny, restitution)
	}

	if !a.held {
		a.physics.SpeedX, a.physics.SpeedY = va.X, va.Y
	}
	if !b.held {
		b.physics.SpeedX, b.physics.SpeedY = vb.X, vb.Y
	}

	recordImpact(a.physics, closing, -nx, -ny)
	recordImpact(b.physics, closing, nx, ny)
}

// reflectOff bounces v off a static surface whose normal n points toward the
// moving body.
func reflectOff(v gamemath.Velocity, nx, ny, restitution float64) (gamemath.Velocity, float64) {
	rel := v.X*nx + v.Y*ny
	if rel >= 0 {
		return v, 0
	}
	v.X -= (1 + restitution) * rel * nx
	v.Y -= (1 + restitution) * rel * ny
	return v, -rel
}

// pushBall moves a ball out of an overlap without pushing it into a wall.
func pushBall(b *ballBody, dx, dy float64) {
	moved, _ := sweep(b.obj, dx, 0)
	b.obj.X += moved
	moved, _ = sweep(b.obj, 0, dy)
	b.obj.Y += moved
	b.obj.Update()
}

func recordImpact(physics *components.PhysicsData, speed, nx, ny float64) {
	if speed < cfg.Physics.MinImpactSpeed {
		return
	}
	physics.Impacts = append(physics.Impacts, components.Impact{Speed: speed, NormalX: nx, NormalY: ny})
}

// impactStrength maps an impact speed onto 0..1.
func impactStrength(speed float64) float64 {
	return gamemath.Clamp(math.Abs(speed)/cfg.Physics.MaxImpactSpeed, 0, 1)
}

// raiseCollisionEvent queues the strongest impact of the tick on the ball.
func raiseCollisionEvent(entry *donburi.Entry, physics *components.PhysicsData) {
	if len(physics.Impacts) == 0 {
		return
	}
	strongest := physics.Impacts[0]
	for _, im := range physics.Impacts[1:] {
		if im.Speed > strongest.Speed {
			strongest = im
		}
	}
	components.BallEvents.Get(entry).Push(ball.Collision(impactStrength(strongest.Speed), strongest.NormalX, strongest.NormalY))
}
