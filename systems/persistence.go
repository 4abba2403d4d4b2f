package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/automoto/thirdperson/config"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi/ecs"
)

const settingsKey = "settings"

// itemStore is the part of gdata.Manager persistence needs.
type itemStore interface {
	SaveItem(itemKey string, data []byte) error
	LoadItem(itemKey string) ([]byte, error)
}

var settingsStore itemStore

// InitPersistence opens the gdata store for settings. Without it settings
// still work for the session but are not saved.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.C.SettingsApp,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	settingsStore = m
	return nil
}

// LoadSettings loads settings from disk. It returns nil when nothing has been
// saved yet or the store is unavailable.
func LoadSettings() (*cfg.SavedSettings, error) {
	if settingsStore == nil {
		return nil, nil
	}

	data, err := settingsStore.LoadItem(settingsKey)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings cfg.SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s cfg.SavedSettings) error {
	if settingsStore == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}
	if err := settingsStore.SaveItem(settingsKey, data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// ApplySavedSettings loads persisted settings into the live configuration.
func ApplySavedSettings() {
	saved, err := LoadSettings()
	if err != nil || saved == nil {
		return
	}
	cfg.ApplySettings(*saved)
}

// UpdateSettings handles the runtime toggles and persists each change.
// A camera mode switch takes effect from the next tick, so only one mode
// advances the camera on any given frame.
func UpdateSettings(e *ecs.ECS) {
	input := GetInput(e)
	changed := false

	if input.ToggleCameraModePressed {
		ToggleCameraMode()
		changed = true
	}
	if input.ToggleLookAtPressed {
		ToggleLookAt()
		changed = true
	}
	if input.ToggleDebugPressed {
		cfg.Debug.Enabled = !cfg.Debug.Enabled
	}

	if changed {
		_ = SaveSettings(cfg.CurrentSettings())
	}
}

// ToggleCameraMode flips between fixed-tick and per-frame camera updates.
func ToggleCameraMode() {
	if cfg.Camera.UpdateMode == cfg.CameraUpdateFixed {
		cfg.Camera.UpdateMode = cfg.CameraUpdateRender
	} else {
		cfg.Camera.UpdateMode = cfg.CameraUpdateFixed
	}
	log.Printf("Camera update mode: %s", cfg.Camera.UpdateMode)
}

// ToggleLookAt flips whether cameras turn toward their target.
func ToggleLookAt() {
	cfg.Camera.LookAt = !cfg.Camera.LookAt
	log.Printf("Camera look-at: %v", cfg.Camera.LookAt)
}
