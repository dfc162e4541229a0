package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/ballpit/components"
	"github.com/automoto/ballpit/fonts"
	"github.com/automoto/ballpit/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	debugSolid  = color.RGBA{100, 100, 100, 255}
	debugBall   = color.RGBA{0, 255, 255, 255}
	debugHeld   = color.RGBA{255, 255, 0, 255}
	debugNormal = color.RGBA{255, 0, 0, 255}
)

// DrawDebug outlines every collision object, shows this tick's impact normals
// and prints each ball's spring values.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			c := debugBall
			if obj.HasTags(tags.ResolvSolid) {
				c = debugSolid
			}
			vector.StrokeRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), 1, c, false)
		}
	}

	showText := fonts.Loaded(fonts.Small)

	tags.Ball.Each(ecs.World, func(e *donburi.Entry) {
		b := components.Ball.Get(e)
		x, y := components.Object.Get(e).Center()

		c := debugBall
		if b.BeingDragged() {
			c = debugHeld
		}
		vector.StrokeCircle(screen, float32(x), float32(y), float32(b.Radius()), 1, c, true)

		for _, im := range components.Physics.Get(e).Impacts {
			ex := x + im.NormalX*b.Radius()
			ey := y + im.NormalY*b.Radius()
			vector.StrokeLine(screen, float32(x), float32(y), float32(ex), float32(ey), 1, debugNormal, true)
		}

		if showText {
			label := fmt.Sprintf("%s squish %.2f drag %.2f", b.ID(), b.Squish(), b.DragScale())
			text.Draw(screen, label, fonts.Small.Get(), int(x-b.Radius()), int(y-b.Radius())-2, c)
		}
	})
}
