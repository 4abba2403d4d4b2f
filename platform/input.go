package platform

import (
	cfg "github.com/automoto/thirdperson/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

// Poller reads device state for the input system. It samples once per call
// to Refresh so every action sees the same gamepad list within a tick.
type Poller struct {
	gamepadIDs []ebiten.GamepadID
	stick      [cfg.ActionCount]bool
}

func NewPoller() *Poller {
	return &Poller{}
}

// Refresh re-reads connected gamepads and the left analog stick.
func (p *Poller) Refresh() {
	p.gamepadIDs = ebiten.AppendGamepadIDs(p.gamepadIDs[:0])
	p.stick = [cfg.ActionCount]bool{}

	deadzone := Input.AnalogDeadzone
	for _, gpID := range p.gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

		if horizontal < -deadzone {
			p.stick[cfg.ActionMoveLeft] = true
		}
		if horizontal > deadzone {
			p.stick[cfg.ActionMoveRight] = true
		}
		// Stick up is negative
		if vertical < -deadzone {
			p.stick[cfg.ActionMoveForward] = true
		}
		if vertical > deadzone {
			p.stick[cfg.ActionMoveBack] = true
		}
	}
}

// Pressed reports whether any key, button or stick direction bound to action is held.
func (p *Poller) Pressed(action cfg.ActionID) bool {
	if p.stick[action] {
		return true
	}
	binding, ok := Input.Bindings[action]
	if !ok {
		return false
	}
	for _, key := range binding.Keys {
		if ebiten.IsKeyPressed(key) {
			return true
		}
	}
	for _, gpID := range p.gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		for _, btn := range binding.StandardGamepadButtons {
			if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
				return true
			}
		}
	}
	return false
}

// CursorPosition returns the pointer in screen pixels.
func (p *Poller) CursorPosition() mgl64.Vec2 {
	x, y := ebiten.CursorPosition()
	return mgl64.Vec2{float64(x), float64(y)}
}
