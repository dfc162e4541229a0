package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/ballpit/components"
	cfg "github.com/automoto/ballpit/config"
	"github.com/automoto/ballpit/systems"
	"github.com/automoto/ballpit/systems/factory"
	"github.com/automoto/ballpit/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlaygroundOptions choose what the playground starts with.
type PlaygroundOptions struct {
	Arena        string
	InitialBalls int
	Saved        *systems.SavedSettings // nil uses the defaults
}

// PlaygroundScene is the arena with its balls and the controls panel.
type PlaygroundScene struct {
	ecs      *ecs.ECS
	controls *ui.ControlsUI
	opts     PlaygroundOptions
	once     sync.Once
}

func NewPlaygroundScene(opts PlaygroundOptions) *PlaygroundScene {
	return &PlaygroundScene{opts: opts}
}

func (ps *PlaygroundScene) Update() {
	ps.once.Do(ps.configure)

	// Panel clicks raise requests that UpdateSettings handles this frame
	if ps.controls != nil {
		ps.controls.Update()
	}
	ps.ecs.Update()
}

func (ps *PlaygroundScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
	if ps.controls != nil {
		ps.controls.UI.Draw(screen)
	}
}

func (ps *PlaygroundScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())
	ps.ecs = ecs

	// Create the level entity and load the arena FIRST.
	level := factory.CreateLevel(ecs, ps.opts.Arena)
	arena := components.Level.Get(level).Arena

	// Now create the space for collision detection using the arena's dimensions.
	factory.CreateSpace(ecs, arena.Width, arena.Height, cfg.Physics.CellSize, cfg.Physics.CellSize)
	factory.CreateArenaWalls(ecs, arena)

	saved := systems.DefaultSettings()
	if ps.opts.Saved != nil {
		saved = *ps.opts.Saved
	}
	if cfg.Debug.Enabled {
		saved.Debug = true
	}
	systems.ApplySavedSettings(ecs, saved)
	settings := systems.GetOrCreateSettings(ecs)

	controls, err := ui.NewControlsUI(settings)
	if err != nil {
		log.Printf("Warning: Could not build controls panel: %v", err)
	} else {
		ps.controls = controls
	}

	ecs.AddSystem(systems.UpdateInput)
	if ps.controls != nil {
		ecs.AddSystem(systems.NewCapturePointer(ps.controls.Contains))
	}
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdateDrag)
	ecs.AddSystem(systems.UpdatePhysics)
	ecs.AddSystem(systems.UpdateCollisions)
	ecs.AddSystem(systems.UpdateBalls)
	ecs.AddSystem(systems.UpdateObjects)

	ecs.AddRenderer(cfg.Default, systems.DrawArena)
	ecs.AddRenderer(cfg.Default, systems.DrawBalls)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	systems.SpawnInitialBalls(ecs, ps.opts.InitialBalls)
}
