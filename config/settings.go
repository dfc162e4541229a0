package config

// SettingsConfig describes where user toggles are persisted
type SettingsConfig struct {
	AppName string
	SaveKey string
}

// Settings is the global persistence configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		AppName: "ballpit",
		SaveKey: "settings.json",
	}
}
