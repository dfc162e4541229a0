package systems

import (
	"github.com/automoto/ballpit/archetypes"
	"github.com/automoto/ballpit/components"
	cfg "github.com/automoto/ballpit/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slices to avoid allocations
var (
	gamepadIDs []ebiten.GamepadID
	touchIDs   []ebiten.TouchID
)

// UpdateInput polls raw input and updates the InputComponent.
// Must run before every system that reads actions or the pointer.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
				}
			}
		}
	}

	pollPointer(&input.Pointer)
}

// pollPointer reads the mouse, falling back to the first touch.
func pollPointer(p *components.PointerData) {
	p.Previous = p.Pressed

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		setPointer(p, float64(x), float64(y), true, -1)
		return
	}

	touchIDs = ebiten.AppendTouchIDs(touchIDs[:0])
	if len(touchIDs) > 0 {
		id := touchIDs[0]
		// Stay on the touch that started the drag
		for _, t := range touchIDs {
			if int(t) == p.TouchID {
				id = t
			}
		}
		x, y := ebiten.TouchPosition(id)
		setPointer(p, float64(x), float64(y), true, int(id))
		return
	}

	// Keep the last position on release so the throw ends where the pointer was
	if p.TouchID < 0 {
		x, y := ebiten.CursorPosition()
		p.X, p.Y = float64(x), float64(y)
	}
	p.Pressed = false
}

func setPointer(p *components.PointerData, x, y float64, pressed bool, touchID int) {
	p.X, p.Y = x, y
	p.Pressed = pressed
	p.TouchID = touchID
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = archetypes.Input.Spawn(ecs)
		components.Input.Get(entry).Pointer.TouchID = -1
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}

// NewCapturePointer creates a system that marks the pointer as captured while
// it is over an on-screen control, so presses there never grab a ball.
func NewCapturePointer(over func(x, y float64) bool) ecs.System {
	return func(e *ecs.ECS) {
		input := getOrCreateInput(e)
		input.PointerCaptured = over(input.Pointer.X, input.Pointer.Y)
	}
}
