package archetypes

import (
	"github.com/automoto/ballpit/components"
	cfg "github.com/automoto/ballpit/config"
	"github.com/automoto/ballpit/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Ball = newArchetype(
		tags.Ball,
		components.Ball,
		components.BallEvents,
		components.Object,
		components.Physics,
	)
	Space = newArchetype(
		components.Space,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Level = newArchetype(
		tags.Arena,
		components.Level,
	)
	Settings = newArchetype(
		components.Settings,
	)
	Input = newArchetype(
		components.Input,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		all...,
	))
	return e
}
