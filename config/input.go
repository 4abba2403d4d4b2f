package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveForward
	ActionMoveBack
	ActionMoveLeft
	ActionMoveRight
	ActionWalk
	ActionRaiseHand
	ActionToggleCameraMode
	ActionToggleLookAt
	ActionRespawn
	ActionToggleSettings
	ActionToggleDebug
	ActionCount // Must be last - used for array sizing
)

func (a ActionID) String() string {
	switch a {
	case ActionMoveForward:
		return "move_forward"
	case ActionMoveBack:
		return "move_back"
	case ActionMoveLeft:
		return "move_left"
	case ActionMoveRight:
		return "move_right"
	case ActionWalk:
		return "walk"
	case ActionRaiseHand:
		return "raise_hand"
	case ActionToggleCameraMode:
		return "toggle_camera_mode"
	case ActionToggleLookAt:
		return "toggle_look_at"
	case ActionRespawn:
		return "respawn"
	case ActionToggleSettings:
		return "toggle_settings"
	case ActionToggleDebug:
		return "toggle_debug"
	}
	return "none"
}
