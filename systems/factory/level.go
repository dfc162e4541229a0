package factory

import (
	"github.com/automoto/ballpit/archetypes"
	"github.com/automoto/ballpit/assets"
	"github.com/automoto/ballpit/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel loads the named arena and stores it on a new level entity.
// Walls are created separately, once the collision space exists.
func CreateLevel(ecs *ecs.ECS, name string) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{
		Arena: assets.MustLoadArena(name),
	})
	return level
}

// CreateArenaWalls adds a wall entity for every wall in the arena.
func CreateArenaWalls(ecs *ecs.ECS, arena *assets.Arena) {
	for _, w := range arena.Walls {
		CreateWall(ecs, w.X, w.Y, w.Width, w.Height)
	}
}
