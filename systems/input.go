package systems

import (
	"github.com/automoto/thirdperson/components"
	cfg "github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi/ecs"
)

// InputSource reports raw device state for the current tick.
type InputSource interface {
	Pressed(action cfg.ActionID) bool
	CursorPosition() mgl64.Vec2
}

// NewInputSystem returns a system that polls src once per tick.
// Must run BEFORE UpdateLocomotion in the system order.
func NewInputSystem(src InputSource) ecs.System {
	return func(e *ecs.ECS) {
		PollInput(e, src)
	}
}

// PollInput swaps the action buffers, reads src and publishes a new snapshot.
func PollInput(e *ecs.ECS, src InputSource) {
	input := getOrCreateInput(e)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	for action := cfg.ActionNone + 1; action < cfg.ActionCount; action++ {
		input.Current[action] = src.Pressed(action)
	}
	input.Pointer = src.CursorPosition()
	input.Snapshot = buildSnapshot(input)
}

func buildSnapshot(input *components.InputData) components.InputSnapshot {
	var move mgl64.Vec2
	if input.Current[cfg.ActionMoveRight] {
		move[0]++
	}
	if input.Current[cfg.ActionMoveLeft] {
		move[0]--
	}
	if input.Current[cfg.ActionMoveForward] {
		move[1]++
	}
	if input.Current[cfg.ActionMoveBack] {
		move[1]--
	}

	return components.InputSnapshot{
		Move:                    gamemath.ClampMagnitude(move, 1),
		Walk:                    input.Current[cfg.ActionWalk],
		RaiseHandPressed:        input.JustPressed(cfg.ActionRaiseHand),
		Pointer:                 input.Pointer,
		ToggleCameraModePressed: input.JustPressed(cfg.ActionToggleCameraMode),
		ToggleLookAtPressed:     input.JustPressed(cfg.ActionToggleLookAt),
		RespawnPressed:          input.JustPressed(cfg.ActionRespawn),
		ToggleSettingsPressed:   input.JustPressed(cfg.ActionToggleSettings),
		ToggleDebugPressed:      input.JustPressed(cfg.ActionToggleDebug),
	}
}

// GetInput returns this tick's snapshot.
func GetInput(e *ecs.ECS) components.InputSnapshot {
	return getOrCreateInput(e).Snapshot
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(e *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}
