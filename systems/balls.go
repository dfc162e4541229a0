package systems

import (
	"github.com/automoto/ballpit/components"
	cfg "github.com/automoto/ballpit/config"
	"github.com/automoto/ballpit/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBalls hands each ball the events raised this tick, then advances its
// springs and node actions.
func UpdateBalls(e *ecs.ECS) {
	dt := 1.0 / float64(cfg.C.TPS)

	var space *resolv.Space
	if spaceEntry, ok := components.Space.First(e.World); ok {
		space = components.Space.Get(spaceEntry)
	}

	tags.Ball.Each(e.World, func(entry *donburi.Entry) {
		b := components.Ball.Get(entry)

		events := components.BallEvents.Get(entry)
		for _, ev := range events.Pending {
			b.Handle(ev)
		}
		events.Pending = events.Pending[:0]

		x, y := components.Object.Get(entry).Center()
		b.Update(dt, x, y, groundBelow(space, x, y+b.Radius(), cfg.Ball.ShadowFadeDistance))
		b.Root.Update(dt)
	})
}

// groundBelow returns the top of the nearest solid under x whose top is at or
// below bottom. With nothing underneath it returns a ground far enough away
// that the shadow is fully faded.
func groundBelow(space *resolv.Space, x, bottom, fade float64) float64 {
	ground := bottom + fade
	if space == nil {
		return ground
	}
	for _, o := range space.Objects() {
		if !o.HasTags(tags.ResolvSolid) || x < o.X || x > o.X+o.W {
			continue
		}
		if o.Y >= bottom-contactEpsilon && o.Y < ground {
			ground = o.Y
		}
	}
	return ground
}
