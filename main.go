package main

import (
	"flag"
	"log"

	"github.com/automoto/ballpit/assets"
	"github.com/automoto/ballpit/config"
	"github.com/automoto/ballpit/fonts"
	"github.com/automoto/ballpit/scenes"
	"github.com/automoto/ballpit/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func NewGame(opts scenes.PlaygroundOptions) *Game {
	return &Game{
		scene: scenes.NewPlaygroundScene(opts),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "YAML file with tuning overrides")
	debug := flag.Bool("debug", false, "Draw colliders, impact normals and spring values")
	balls := flag.Int("balls", -1, "Balls to spawn at startup (default from config)")
	arena := flag.String("arena", "arena", "Arena to load from the embedded levels")
	flag.Parse()

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			log.Printf("Warning: Could not load config, using defaults: %v", err)
		}
	}
	if *debug {
		config.Debug.Enabled = true
	}
	if _, err := assets.LoadArena(*arena); err != nil {
		log.Fatalf("Failed to load arena: %v", err)
	}
	initialBalls := config.Spawn.InitialBalls
	if *balls >= 0 {
		initialBalls = *balls
	}

	if err := fonts.LoadDefaults(config.UI.HUDFontSize, config.UI.DebugFontSize); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	// Failures are logged; nil falls back to the defaults
	saved, _ := systems.LoadSettings()

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.C.TPS)

	game := NewGame(scenes.PlaygroundOptions{
		Arena:        *arena,
		InitialBalls: initialBalls,
		Saved:        saved,
	})
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
