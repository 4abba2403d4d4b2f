package config

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/automoto/thirdperson/shared/gamemath"
	"gopkg.in/yaml.v3"
)

// Tuning is a partial override of the live configuration. Only fields present
// in the yaml document are applied.
type Tuning struct {
	Character *CharacterTuning `yaml:"character"`
	Camera    *CameraTuning    `yaml:"camera"`
	Probe     *ProbeTuning     `yaml:"probe"`
	Action    *ActionTuning    `yaml:"action"`
}

type CharacterTuning struct {
	WalkSpeed                *float64 `yaml:"walk_speed"`
	RunSpeed                 *float64 `yaml:"run_speed"`
	RotationSpeed            *float64 `yaml:"rotation_speed"`
	Gravity                  *float64 `yaml:"gravity"`
	GroundedVerticalVelocity *float64 `yaml:"grounded_vertical_velocity"`
	AnimationSmoothTime      *float64 `yaml:"animation_smooth_time"`
	MinX                     *float64 `yaml:"min_x"`
	MaxX                     *float64 `yaml:"max_x"`
}

type CameraTuning struct {
	BaseOffset           []float64 `yaml:"base_offset"`
	SmoothTime           *float64  `yaml:"smooth_time"`
	ZoomInMultiplier     *float64  `yaml:"zoom_in_multiplier"`
	RunZoomOutMultiplier *float64  `yaml:"run_zoom_out_multiplier"`
	ZoomTransitionTime   *float64  `yaml:"zoom_transition_time"`
	RunZoomSmoothSpeed   *float64  `yaml:"run_zoom_smooth_speed"`
	ZoomEasing           *string   `yaml:"zoom_easing"`
	LookAt               *bool     `yaml:"look_at"`
	LookHeightOffset     *float64  `yaml:"look_height_offset"`
	UpdateMode           *string   `yaml:"update_mode"`
}

type ProbeTuning struct {
	MaxDistance *float64 `yaml:"max_distance"`
	GroundMask  []string `yaml:"ground_mask"`
}

type ActionTuning struct {
	RaiseHandZoomHold *float64 `yaml:"raise_hand_zoom_hold"`
}

// ParseTuning decodes a yaml tuning document.
func ParseTuning(data []byte) (*Tuning, error) {
	var t Tuning
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse tuning: %w", err)
	}
	return &t, nil
}

// LoadTuning reads and decodes a yaml tuning file.
func LoadTuning(path string) (*Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tuning %s: %w", path, err)
	}
	t, err := ParseTuning(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// ApplyTuning overlays the fields present in t onto the live configuration and
// validates the result. On a validation error the previous values are restored.
func ApplyTuning(t *Tuning) error {
	if t == nil {
		return nil
	}
	prevCharacter, prevCamera, prevProbe, prevAction := Character, Camera, Probe, Action

	if c := t.Character; c != nil {
		setFloat(&Character.WalkSpeed, c.WalkSpeed)
		setFloat(&Character.RunSpeed, c.RunSpeed)
		setFloat(&Character.RotationSpeed, c.RotationSpeed)
		setFloat(&Character.Gravity, c.Gravity)
		setFloat(&Character.GroundedVerticalVelocity, c.GroundedVerticalVelocity)
		setFloat(&Character.AnimationSmoothTime, c.AnimationSmoothTime)
		setFloat(&Character.MinX, c.MinX)
		setFloat(&Character.MaxX, c.MaxX)
	}

	if c := t.Camera; c != nil {
		if c.BaseOffset != nil {
			if len(c.BaseOffset) != 3 {
				Character, Camera, Probe, Action = prevCharacter, prevCamera, prevProbe, prevAction
				return fmt.Errorf("camera.base_offset: want 3 components, got %d", len(c.BaseOffset))
			}
			copy(Camera.BaseOffset[:], c.BaseOffset)
		}
		setFloat(&Camera.SmoothTime, c.SmoothTime)
		setFloat(&Camera.ZoomInMultiplier, c.ZoomInMultiplier)
		setFloat(&Camera.RunZoomOutMultiplier, c.RunZoomOutMultiplier)
		setFloat(&Camera.ZoomTransitionTime, c.ZoomTransitionTime)
		setFloat(&Camera.RunZoomSmoothSpeed, c.RunZoomSmoothSpeed)
		setFloat(&Camera.LookHeightOffset, c.LookHeightOffset)
		if c.ZoomEasing != nil {
			Camera.ZoomEasing = *c.ZoomEasing
		}
		if c.LookAt != nil {
			Camera.LookAt = *c.LookAt
		}
		if c.UpdateMode != nil {
			mode, ok := ParseCameraUpdateMode(*c.UpdateMode)
			if !ok {
				Character, Camera, Probe, Action = prevCharacter, prevCamera, prevProbe, prevAction
				return fmt.Errorf("camera.update_mode: unknown mode %q", *c.UpdateMode)
			}
			Camera.UpdateMode = mode
		}
	}

	if p := t.Probe; p != nil {
		setFloat(&Probe.MaxDistance, p.MaxDistance)
		if p.GroundMask != nil {
			Probe.GroundMask = append([]string(nil), p.GroundMask...)
		}
	}

	if a := t.Action; a != nil {
		setFloat(&Action.RaiseHandZoomHold, a.RaiseHandZoomHold)
	}

	if err := Validate(); err != nil {
		Character, Camera, Probe, Action = prevCharacter, prevCamera, prevProbe, prevAction
		return err
	}
	return nil
}

func setFloat(dst *float64, src *float64) {
	if src != nil {
		*dst = *src
	}
}

var (
	ErrBoundsInverted = errors.New("character min_x is greater than max_x")
	ErrNegativeTime   = errors.New("smoothing and transition times must not be negative")
)

// Validate checks the live configuration. An empty ground mask is repaired
// with the default layer and logged rather than rejected.
func Validate() error {
	if Character.MinX > Character.MaxX {
		return fmt.Errorf("%w: %v > %v", ErrBoundsInverted, Character.MinX, Character.MaxX)
	}
	if Character.AnimationSmoothTime < 0 || Camera.SmoothTime < 0 || Camera.ZoomTransitionTime < 0 || Action.RaiseHandZoomHold < 0 {
		return ErrNegativeTime
	}
	if len(Probe.GroundMask) == 0 {
		log.Printf("Warning: no ground mask configured, falling back to layer %q", DefaultGroundLayer)
		Probe.GroundMask = []string{DefaultGroundLayer}
	}
	if _, ok := gamemath.Easing(Camera.ZoomEasing); !ok {
		log.Printf("Warning: unknown zoom easing %q, using smoothstep", Camera.ZoomEasing)
	}
	return nil
}
