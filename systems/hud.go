package systems

import (
	"fmt"

	cfg "github.com/automoto/ballpit/config"
	"github.com/automoto/ballpit/fonts"
	"github.com/automoto/ballpit/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD shows the ball count and the current toggles in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	if !fonts.Loaded(fonts.Regular) {
		return
	}
	settings := GetOrCreateSettings(ecs)
	face := fonts.Regular.Get()

	lineHeight := face.Metrics().Height.Ceil()
	x := int(cfg.UI.HUDMargin)
	y := int(cfg.UI.HUDMargin) + face.Metrics().Ascent.Ceil()

	for _, line := range hudLines(factory.CountBalls(ecs), settings.SquishOnCollision, settings.ShowShadow) {
		text.Draw(screen, line, face, x, y, cfg.UI.HUDText)
		y += lineHeight
	}
}

func hudLines(balls int, squish, shadow bool) []string {
	return []string{
		fmt.Sprintf("Balls: %d/%d", balls, cfg.Spawn.MaxBalls),
		"Squish: " + onOff(squish),
		"Shadow: " + onOff(shadow),
	}
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
