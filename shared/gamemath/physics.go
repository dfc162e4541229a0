package gamemath

import "math"

// ApplyFriction reduces speed toward zero by friction amount.
func ApplyFriction(speed, friction float64) float64 {
	if speed > friction {
		return speed - friction
	}
	if speed < -friction {
		return speed + friction
	}
	return 0
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}

// Bounce reflects speed off a surface, scaled by restitution.
// Rebounds slower than rest are zeroed so bodies settle instead of buzzing.
func Bounce(speed, restitution, rest float64) float64 {
	out := -speed * restitution
	if math.Abs(out) < rest {
		return 0
	}
	return out
}

// CircleContact reports whether two circles overlap. The normal points from
// a toward b and depth is how far they interpenetrate.
func CircleContact(ax, ay, ar, bx, by, br float64) (nx, ny, depth float64, ok bool) {
	dx, dy := bx-ax, by-ay
	dist := math.Hypot(dx, dy)
	if dist >= ar+br {
		return 0, 0, 0, false
	}
	if dist == 0 {
		// Coincident centers: push b straight down.
		return 0, 1, ar + br, true
	}
	return dx / dist, dy / dist, ar + br - dist, true
}

// Velocity is a 2D velocity in pixels per tick.
type Velocity struct {
	X, Y float64
}

// CollideEqualMass exchanges momentum along the contact normal (pointing from
// a to b) between two bodies of equal mass. It returns the new velocities and
// the closing speed along the normal; separating bodies are left untouched and
// report a closing speed of zero.
func CollideEqualMass(a, b Velocity, nx, ny, restitution float64) (Velocity, Velocity, float64) {
	rel := (b.X-a.X)*nx + (b.Y-a.Y)*ny
	if rel >= 0 {
		return a, b, 0
	}
	j := -(1 + restitution) * rel / 2
	a.X -= j * nx
	a.Y -= j * ny
	b.X += j * nx
	b.Y += j * ny
	return a, b, -rel
}
