package systems

import (
	"github.com/automoto/ballpit/components"
	cfg "github.com/automoto/ballpit/config"
	"github.com/automoto/ballpit/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawArena fills the background and draws every wall with a lighter top edge.
func DrawArena(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Colors.Background)

	tags.Wall.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		vector.FillRect(screen, float32(o.X), float32(o.Y), float32(o.W), float32(o.H), cfg.Colors.Wall, false)
		vector.FillRect(screen, float32(o.X), float32(o.Y), float32(o.W), 2, cfg.Colors.WallEdge, false)
	})
}

// DrawBalls renders each ball's node tree. Held balls are drawn last so they
// stay on top of the ones they are dragged over.
func DrawBalls(ecs *ecs.ECS, screen *ebiten.Image) {
	var held []*components.BallData
	tags.Ball.Each(ecs.World, func(e *donburi.Entry) {
		b := components.Ball.Get(e)
		if b.BeingDragged() {
			held = append(held, b)
			return
		}
		b.Root.Render(screen, ebiten.GeoM{}, 1)
	})
	for _, b := range held {
		b.Root.Render(screen, ebiten.GeoM{}, 1)
	}
}
