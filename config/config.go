package config

import (
	"image/color"

	"github.com/automoto/ballpit/ball"
	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer; renderers run in the order they are added.
const Default ecs.LayerID = 0

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
	Title  string
}

// PhysicsConfig contains physics-related configuration values.
// Speeds are in pixels per tick.
type PhysicsConfig struct {
	Gravity     float64 `yaml:"gravity"`
	MaxSpeed    float64 `yaml:"maxSpeed"`    // clamp on each axis, kept below wall thickness
	Restitution float64 `yaml:"restitution"` // fraction of normal speed kept on a bounce
	Friction    float64 `yaml:"friction"`    // horizontal slowdown while rolling on a floor
	RestSpeed   float64 `yaml:"restSpeed"`   // bounces slower than this stop dead

	// Collision strength
	MinImpactSpeed float64 `yaml:"minImpactSpeed"` // quieter impacts send no event
	MaxImpactSpeed float64 `yaml:"maxImpactSpeed"` // impacts at or above this have strength 1

	CellSize int `yaml:"cellSize"` // resolv space cell size
}

// DragConfig contains pointer drag and throw configuration
type DragConfig struct {
	Samples        int     `yaml:"samples"`        // pointer deltas averaged for the throw
	MaxThrowSpeed  float64 `yaml:"maxThrowSpeed"`  // pixels per tick
	ShadowDuration float64 `yaml:"shadowDuration"` // seconds for the shadow fade on grab/release
}

// SpawnConfig contains ball spawning configuration
type SpawnConfig struct {
	InitialBalls  int     `yaml:"initialBalls"`
	MaxBalls      int     `yaml:"maxBalls"`
	DefaultRadius float64 `yaml:"defaultRadius"`
	ShadowFadeIn  float64 `yaml:"shadowFadeIn"` // seconds for the shadow to appear after spawning
}

// UIConfig contains UI-related configuration values
type UIConfig struct {
	HUDFontSize   float64
	DebugFontSize float64
	HUDMargin     float64

	ButtonWidth   int
	ButtonHeight  int
	ButtonSpacing int
	PanelPadding  int

	ButtonIdle    color.RGBA
	ButtonHover   color.RGBA
	ButtonPressed color.RGBA
	ButtonOn      color.RGBA
	ButtonText    color.RGBA
	HUDText       color.RGBA
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Enabled bool // draw colliders, normals and spring values
}

// ColorConfig contains the arena and ball palette
type ColorConfig struct {
	Background color.RGBA
	Wall       color.RGBA
	WallEdge   color.RGBA
	Shadow     color.RGBA
	Seam       color.RGBA
	Logo       color.RGBA
	Balls      []color.RGBA
}

// Global configuration instances
var C *Config
var Ball ball.Config
var Physics PhysicsConfig
var Drag DragConfig
var Spawn SpawnConfig
var UI UIConfig
var Debug DebugConfig
var Colors ColorConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
)

func init() {
	Reset()
}

// Reset restores every global to its built-in default.
func Reset() {
	C = &Config{
		Width:  640,
		Height: 360,
		TPS:    60,
		Title:  "ballpit",
	}

	Ball = ball.DefaultConfig()

	// Physics Config
	Physics = PhysicsConfig{
		Gravity:     0.5,
		MaxSpeed:    16.0, // walls are 20px thick
		Restitution: 0.6,
		Friction:    0.02,
		RestSpeed:   1.0,

		MinImpactSpeed: 1.5,
		MaxImpactSpeed: 14.0,

		CellSize: 16,
	}

	// Drag Config
	Drag = DragConfig{
		Samples:        4,
		MaxThrowSpeed:  18.0,
		ShadowDuration: 0.3,
	}

	// Spawn Config
	Spawn = SpawnConfig{
		InitialBalls:  3,
		MaxBalls:      12,
		DefaultRadius: 24,
		ShadowFadeIn:  0.3,
	}

	// UI Config
	UI = UIConfig{
		HUDFontSize:   10,
		DebugFontSize: 8,
		HUDMargin:     8,

		ButtonWidth:   72,
		ButtonHeight:  20,
		ButtonSpacing: 4,
		PanelPadding:  6,

		ButtonIdle:    DarkBlue,
		ButtonHover:   LightBlue,
		ButtonPressed: color.RGBA{R: 40, G: 70, B: 120, A: 255},
		ButtonOn:      Orange,
		ButtonText:    White,
		HUDText:       White,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		Enabled: false,
	}

	Colors = ColorConfig{
		Background: color.RGBA{R: 15, G: 25, B: 50, A: 255},
		Wall:       color.RGBA{R: 50, G: 60, B: 90, A: 255},
		WallEdge:   color.RGBA{R: 90, G: 110, B: 160, A: 255},
		Shadow:     color.RGBA{R: 0, G: 0, B: 0, A: 110},
		Seam:       color.RGBA{R: 255, G: 255, B: 255, A: 160},
		Logo:       White,
		Balls: []color.RGBA{
			{R: 230, G: 80, B: 60, A: 255},
			{R: 250, G: 190, B: 40, A: 255},
			{R: 70, G: 170, B: 230, A: 255},
			{R: 120, G: 200, B: 90, A: 255},
			{R: 200, G: 100, B: 220, A: 255},
		},
	}
}

// BallColor picks a palette color for the n-th spawned ball.
func BallColor(n int) color.RGBA {
	if len(Colors.Balls) == 0 {
		return White
	}
	if n < 0 {
		n = -n
	}
	return Colors.Balls[n%len(Colors.Balls)]
}
