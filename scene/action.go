package scene

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Action is a timed change applied to a node, advanced by the node's Update.
type Action interface {
	// Step advances the action by dt seconds and reports whether it finished.
	Step(n *Node, dt float64) bool
}

// tweenAction drives one node property with a gween tween. The tween is built
// on the first step so relative actions start from the node's state at that time.
type tweenAction struct {
	duration float64
	easing   ease.TweenFunc
	begin    func(n *Node) (from, to float64)
	apply    func(n *Node, v float64)
	fade     bool

	tween *gween.Tween
}

func (a *tweenAction) Step(n *Node, dt float64) bool {
	if a.tween == nil {
		from, to := a.begin(n)
		if a.duration <= 0 {
			a.apply(n, to)
			return true
		}
		a.tween = gween.New(float32(from), float32(to), float32(a.duration), a.easing)
	}
	v, done := a.tween.Update(float32(dt))
	a.apply(n, float64(v))
	return done
}

// RotateBy spins the node by angle radians over duration seconds, on top of
// whatever else changes its rotation meanwhile.
func RotateBy(angle, duration float64) Action {
	var applied float64
	return &tweenAction{
		duration: duration,
		easing:   ease.Linear,
		begin: func(*Node) (float64, float64) {
			return 0, angle
		},
		apply: func(n *Node, v float64) {
			n.Rotation += v - applied
			applied = v
		},
	}
}

// FadeTo animates the node's opacity to alpha over duration seconds.
func FadeTo(alpha, duration float64) Action {
	return &tweenAction{
		duration: duration,
		easing:   ease.Linear,
		begin: func(n *Node) (float64, float64) {
			return n.Opacity(), alpha
		},
		apply: func(n *Node, v float64) {
			n.SetOpacity(v)
		},
		fade: true,
	}
}

// FadeIn animates the node to fully opaque.
func FadeIn(duration float64) Action {
	return FadeTo(1, duration)
}

// FadeOut animates the node to fully transparent.
func FadeOut(duration float64) Action {
	return FadeTo(0, duration)
}

func isFade(a Action) bool {
	t, ok := a.(*tweenAction)
	return ok && t.fade
}
