package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

func restoreConfig(t *testing.T) {
	t.Helper()
	character, camera, probe, action := Character, Camera, Probe, Action
	t.Cleanup(func() {
		Character, Camera, Probe, Action = character, camera, probe, action
	})
}

func TestApplyTuningOverlaysOnlyPresentFields(t *testing.T) {
	restoreConfig(t)

	doc := []byte(`
character:
  run_speed: 7.5
camera:
  base_offset: [0, 12, -9]
  look_at: false
  update_mode: render
probe:
  ground_mask: [ground, ramp]
`)
	tuning, err := ParseTuning(doc)
	if err != nil {
		t.Fatalf("ParseTuning: %v", err)
	}
	walk := Character.WalkSpeed
	smooth := Camera.SmoothTime

	if err := ApplyTuning(tuning); err != nil {
		t.Fatalf("ApplyTuning: %v", err)
	}

	if Character.RunSpeed != 7.5 {
		t.Fatalf("expected run speed 7.5, got %v", Character.RunSpeed)
	}
	if Character.WalkSpeed != walk {
		t.Fatalf("expected walk speed untouched, got %v", Character.WalkSpeed)
	}
	if Camera.BaseOffset != (mgl64.Vec3{0, 12, -9}) {
		t.Fatalf("unexpected base offset %v", Camera.BaseOffset)
	}
	if Camera.SmoothTime != smooth {
		t.Fatalf("expected smooth time untouched, got %v", Camera.SmoothTime)
	}
	if Camera.LookAt {
		t.Fatalf("expected look-at disabled")
	}
	if Camera.UpdateMode != CameraUpdateRender {
		t.Fatalf("expected render update mode, got %v", Camera.UpdateMode)
	}
	if len(Probe.GroundMask) != 2 || Probe.GroundMask[1] != "ramp" {
		t.Fatalf("unexpected ground mask %v", Probe.GroundMask)
	}
}

func TestApplyTuningRejects(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		is   error
	}{
		{"inverted_bounds", "character:\n  min_x: 5\n  max_x: -5\n", ErrBoundsInverted},
		{"negative_transition", "camera:\n  zoom_transition_time: -1\n", ErrNegativeTime},
		{"short_offset", "camera:\n  base_offset: [1, 2]\n", nil},
		{"unknown_mode", "camera:\n  update_mode: sometimes\n", nil},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			restoreConfig(t)
			before := Character
			beforeCamera := Camera

			tuning, err := ParseTuning([]byte(c.doc))
			if err != nil {
				t.Fatalf("ParseTuning: %v", err)
			}
			err = ApplyTuning(tuning)
			if err == nil {
				t.Fatalf("expected an error")
			}
			if c.is != nil && !errors.Is(err, c.is) {
				t.Fatalf("expected %v, got %v", c.is, err)
			}
			if Character != before {
				t.Fatalf("expected character config restored")
			}
			if Camera.BaseOffset != beforeCamera.BaseOffset || Camera.ZoomTransitionTime != beforeCamera.ZoomTransitionTime || Camera.UpdateMode != beforeCamera.UpdateMode {
				t.Fatalf("expected camera config restored")
			}
		})
	}
}

func TestValidateEmptyGroundMaskFallsBack(t *testing.T) {
	restoreConfig(t)
	Probe.GroundMask = nil

	if err := Validate(); err != nil {
		t.Fatalf("expected empty mask to be a warning, got %v", err)
	}
	if len(Probe.GroundMask) != 1 || Probe.GroundMask[0] != DefaultGroundLayer {
		t.Fatalf("expected default layer, got %v", Probe.GroundMask)
	}
}

func TestLoadTuningMissingFile(t *testing.T) {
	_, err := LoadTuning(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	restoreConfig(t)

	ApplySettings(SavedSettings{CameraUpdateMode: "render", LookAtEnabled: false})
	got := CurrentSettings()
	if got.CameraUpdateMode != "render" || got.LookAtEnabled {
		t.Fatalf("unexpected settings %+v", got)
	}

	ApplySettings(SavedSettings{CameraUpdateMode: "bogus", LookAtEnabled: true})
	if Camera.UpdateMode != CameraUpdateRender {
		t.Fatalf("expected unknown mode to keep render, got %v", Camera.UpdateMode)
	}
	if !Camera.LookAt {
		t.Fatalf("expected look-at enabled")
	}
}

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	if err := os.WriteFile(path, []byte("character: {}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("character:\n  run_speed: 6\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case name := <-w.Events:
		if name != path {
			t.Fatalf("expected event for %s, got %s", path, name)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for a change notification")
	}
}
