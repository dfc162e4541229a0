package systems

import (
	"testing"

	cfg "github.com/automoto/ballpit/config"
)

func TestSettingsRoundTrip(t *testing.T) {
	mem := &memStore{}
	useStore(t, mem)

	want := SavedSettings{SquishOnCollision: true, ShowShadow: false, Debug: true}
	if err := SaveSettings(&want); err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}
	got, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if got == nil || *got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}

func TestLoadSettingsWithoutData(t *testing.T) {
	tests := []struct {
		name    string
		store   settingsStore
		data    []byte
		wantErr bool
	}{
		{"no store", nil, nil, false},
		{"nothing saved", &memStore{}, nil, false},
		{"corrupt", &memStore{}, []byte("{not json"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useStore(t, tt.store)
			if tt.data != nil {
				_ = tt.store.SaveItem(cfg.Settings.SaveKey, tt.data)
			}

			got, err := LoadSettings()
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != nil {
				t.Errorf("expected no settings, got %+v", got)
			}
		})
	}
}

func TestSaveWithoutStore(t *testing.T) {
	useStore(t, nil)
	if err := SaveSettings(&SavedSettings{}); err != nil {
		t.Errorf("expected saving without a store to be a no-op, got %v", err)
	}
}

func TestDefaultSettings(t *testing.T) {
	cfg.Reset()
	t.Cleanup(cfg.Reset)
	cfg.Debug.Enabled = true

	got := DefaultSettings()
	want := SavedSettings{SquishOnCollision: false, ShowShadow: true, Debug: true}
	if got != want {
		t.Errorf("expected %+v, got %+v", want, got)
	}
}
