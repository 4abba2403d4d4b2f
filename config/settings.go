package config

// SavedSettings is the part of the configuration the player can change at
// runtime and that outlives a session.
type SavedSettings struct {
	CameraUpdateMode string `json:"camera_update_mode"`
	LookAtEnabled    bool   `json:"look_at_enabled"`
}

// CurrentSettings snapshots the persisted fields from the live configuration.
func CurrentSettings() SavedSettings {
	return SavedSettings{
		CameraUpdateMode: Camera.UpdateMode.String(),
		LookAtEnabled:    Camera.LookAt,
	}
}

// ApplySettings writes persisted fields back into the live configuration.
// An unrecognized update mode leaves the current mode in place.
func ApplySettings(s SavedSettings) {
	if mode, ok := ParseCameraUpdateMode(s.CameraUpdateMode); ok {
		Camera.UpdateMode = mode
	}
	Camera.LookAt = s.LookAtEnabled
}
