// Package platform connects the headless systems to ebitengine: it reads
// keyboard, gamepad and mouse state, and applies cursor visibility.
package platform

import (
	cfg "github.com/automoto/thirdperson/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[cfg.ActionID]InputBinding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
		Bindings: map[cfg.ActionID]InputBinding{
			cfg.ActionMoveForward: {
				Keys: []ebiten.Key{ebiten.KeyW, ebiten.KeyUp},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftTop,
				},
			},
			cfg.ActionMoveBack: {
				Keys: []ebiten.Key{ebiten.KeyS, ebiten.KeyDown},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftBottom,
				},
			},
			cfg.ActionMoveLeft: {
				Keys: []ebiten.Key{ebiten.KeyA, ebiten.KeyLeft},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftLeft,
				},
			},
			cfg.ActionMoveRight: {
				Keys: []ebiten.Key{ebiten.KeyD, ebiten.KeyRight},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftRight,
				},
			},
			cfg.ActionWalk: {
				Keys: []ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeyShiftRight},
				// Left bumper
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontTopLeft,
				},
			},
			cfg.ActionRaiseHand: {
				Keys: []ebiten.Key{ebiten.KeySpace, ebiten.KeyE},
				// Y / Triangle button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightTop,
				},
			},
			cfg.ActionToggleCameraMode: {
				Keys: []ebiten.Key{ebiten.KeyF2},
			},
			cfg.ActionToggleLookAt: {
				Keys: []ebiten.Key{ebiten.KeyF3},
			},
			cfg.ActionRespawn: {
				Keys: []ebiten.Key{ebiten.KeyR},
				// Back / Share button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterLeft,
				},
			},
			cfg.ActionToggleSettings: {
				Keys: []ebiten.Key{ebiten.KeyTab, ebiten.KeyEscape},
				// Start / Options button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterRight,
				},
			},
			cfg.ActionToggleDebug: {
				Keys: []ebiten.Key{ebiten.KeyF1},
			},
		},
	}
}
