package components

import (
	cfg "github.com/automoto/ballpit/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// PointerData is the mouse, or the first touch when no mouse button is held.
type PointerData struct {
	X, Y     float64
	Pressed  bool
	Previous bool
	TouchID  int // -1 when the pointer is the mouse
}

func (p PointerData) JustPressed() bool { return p.Pressed && !p.Previous }

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool // Current frame's Pressed state
	Previous [cfg.ActionCount]bool // Previous frame's Pressed state
	Pointer  PointerData

	// PointerCaptured is set when the controls panel is under the pointer,
	// so a press there does not also grab a ball.
	PointerCaptured bool
}

var Input = donburi.NewComponentType[InputData]()
