package components

import "github.com/yohamta/donburi"

// SettingsData holds the user toggles shown in the controls panel.
type SettingsData struct {
	SquishOnCollision bool
	ShowShadow        bool
	Debug             bool

	// Requests raised by the panel or keys, consumed by UpdateSettings.
	ToggleSquish bool
	ToggleShadow bool
	ToggleDebug  bool
	SpawnBall    bool
	Reset        bool

	Dirty bool // changed since the last save
}

var Settings = donburi.NewComponentType[SettingsData]()
