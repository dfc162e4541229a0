package components

import (
	"github.com/automoto/ballpit/assets"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Arena *assets.Arena

	NextBall  int // counter for ball ids and colors
	NextSpawn int // spawn point used by the next ball without a position
}

var Level = donburi.NewComponentType[LevelData]()
