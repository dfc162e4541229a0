package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/ballpit/components"
	cfg "github.com/automoto/ballpit/config"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	SquishOnCollision bool `json:"squishOnCollision"`
	ShowShadow        bool `json:"showShadow"`
	Debug             bool `json:"debug"`
}

// settingsStore is the part of gdata.Manager used for settings.
type settingsStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var store settingsStore

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Settings.AppName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	store = m
	return nil
}

// LoadSettings loads settings from disk. It returns nil when persistence is
// unavailable or nothing has been saved yet.
func LoadSettings() (*SavedSettings, error) {
	if store == nil {
		return nil, nil
	}

	data, err := store.LoadItem(cfg.Settings.SaveKey)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if store == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := store.SaveItem(cfg.Settings.SaveKey, data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveCurrentSettings saves the toggles from the Settings component
func SaveCurrentSettings(s *components.SettingsData) {
	_ = SaveSettings(&SavedSettings{
		SquishOnCollision: s.SquishOnCollision,
		ShowShadow:        s.ShowShadow,
		Debug:             s.Debug,
	})
}

// DefaultSettings are the toggles used when nothing has been saved.
func DefaultSettings() SavedSettings {
	return SavedSettings{
		SquishOnCollision: cfg.Ball.SquishOnCollision,
		ShowShadow:        true,
		Debug:             cfg.Debug.Enabled,
	}
}
