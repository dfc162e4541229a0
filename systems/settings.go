package systems

import (
	"errors"
	"log"

	"github.com/automoto/ballpit/archetypes"
	"github.com/automoto/ballpit/components"
	cfg "github.com/automoto/ballpit/config"
	"github.com/automoto/ballpit/systems/factory"
	"github.com/automoto/ballpit/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateSettings returns the singleton Settings component, seeding a new
// one from DefaultSettings.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = archetypes.Settings.Spawn(e)
		ApplySavedSettings(e, DefaultSettings())
	}
	return components.Settings.Get(entry)
}

// ApplySavedSettings copies persisted toggles into the Settings component.
func ApplySavedSettings(e *ecs.ECS, saved SavedSettings) {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = archetypes.Settings.Spawn(e)
	}
	s := components.Settings.Get(entry)
	s.SquishOnCollision = saved.SquishOnCollision
	s.ShowShadow = saved.ShowShadow
	s.Debug = saved.Debug
}

// UpdateSettings turns key presses and panel clicks into toggles, spawns
// and resets, and saves the toggles when they change.
func UpdateSettings(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)
	input := getOrCreateInput(e)

	if GetAction(input, cfg.ActionToggleSquish).JustPressed {
		settings.ToggleSquish = true
	}
	if GetAction(input, cfg.ActionToggleShadow).JustPressed {
		settings.ToggleShadow = true
	}
	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		settings.ToggleDebug = true
	}
	if GetAction(input, cfg.ActionSpawnBall).JustPressed {
		settings.SpawnBall = true
	}
	if GetAction(input, cfg.ActionReset).JustPressed {
		settings.Reset = true
	}

	if settings.ToggleSquish {
		settings.ToggleSquish = false
		settings.SquishOnCollision = !settings.SquishOnCollision
		settings.Dirty = true
		forEachBall(e, func(_ *donburi.Entry, b *components.BallData) {
			b.SetSquishOnCollision(settings.SquishOnCollision)
		})
	}

	if settings.ToggleShadow {
		settings.ToggleShadow = false
		settings.ShowShadow = !settings.ShowShadow
		settings.Dirty = true
		forEachBall(e, func(entry *donburi.Entry, b *components.BallData) {
			// Held balls bring their shadow back on release
			if entry.HasComponent(components.Drag) {
				return
			}
			b.AnimateShadow(settings.ShowShadow, cfg.Drag.ShadowDuration)
		})
	}

	if settings.ToggleDebug {
		settings.ToggleDebug = false
		settings.Debug = !settings.Debug
		settings.Dirty = true
	}

	if settings.Reset {
		settings.Reset = false
		settings.SpawnBall = false
		ResetBalls(e)
	}

	if settings.SpawnBall {
		settings.SpawnBall = false
		if _, err := factory.SpawnBall(e); err != nil && !errors.Is(err, factory.ErrBallLimit) {
			log.Printf("Warning: Could not spawn ball: %v", err)
		}
	}

	if settings.Dirty {
		settings.Dirty = false
		SaveCurrentSettings(settings)
	}
}

// ResetBalls removes every ball and spawns the initial set again.
func ResetBalls(e *ecs.ECS) {
	factory.RemoveAllBalls(e)
	if levelEntry, ok := components.Level.First(e.World); ok {
		components.Level.Get(levelEntry).NextSpawn = 0
	}
	SpawnInitialBalls(e, cfg.Spawn.InitialBalls)
}

// SpawnInitialBalls places up to n balls at the arena's spawn points.
func SpawnInitialBalls(e *ecs.ECS, n int) {
	for i := 0; i < n; i++ {
		if _, err := factory.SpawnBall(e); err != nil {
			if !errors.Is(err, factory.ErrBallLimit) {
				log.Printf("Warning: Could not spawn ball: %v", err)
			}
			return
		}
	}
}

func forEachBall(e *ecs.ECS, fn func(entry *donburi.Entry, b *components.BallData)) {
	tags.Ball.Each(e.World, func(entry *donburi.Entry) {
		fn(entry, components.Ball.Get(entry))
	})
}
