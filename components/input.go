package components

import (
	cfg "github.com/automoto/thirdperson/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// InputSnapshot is the per-tick view of the player's intent. It is rebuilt
// once per tick and never modified afterwards.
type InputSnapshot struct {
	Move             mgl64.Vec2 // (right, forward), length at most 1
	Walk             bool
	RaiseHandPressed bool // rising edge this tick only
	Pointer          mgl64.Vec2

	ToggleCameraModePressed bool
	ToggleLookAtPressed     bool
	RespawnPressed          bool
	ToggleSettingsPressed   bool
	ToggleDebugPressed      bool
}

// InputData stores the current and previous tick's pressed state for all actions.
// Rising edges are computed by comparing the two.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
	Pointer  mgl64.Vec2
	Snapshot InputSnapshot
}

// JustPressed reports a rising edge for action on the current tick.
func (d *InputData) JustPressed(action cfg.ActionID) bool {
	return d.Current[action] && !d.Previous[action]
}

var Input = donburi.NewComponentType[InputData]()
