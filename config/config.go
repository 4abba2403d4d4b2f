package config

import (
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"golang.org/x/image/colornames"
)

// CharacterConfig contains all character locomotion configuration values
type CharacterConfig struct {
	// Movement
	WalkSpeed     float64 // units per second with the walk modifier held
	RunSpeed      float64 // units per second otherwise
	RotationSpeed float64 // fraction of the remaining turn covered per second

	// Physics
	Gravity                  float64 // signed, negative pulls down
	GroundedVerticalVelocity float64 // pinned vertical velocity while grounded
	GroundSnapDistance       float64 // feet within this height above ground count as grounded

	// Animation
	AnimationSmoothTime float64
	WalkBlendMultiplier float64 // blend scale with the walk modifier held

	// Play area, clamped along world X
	MinX float64
	MaxX float64

	// Minimum world direction length that counts as movement
	MoveThreshold float64
	// Minimum planar aim distance squared before facing turns
	FacingThresholdSqr float64
}

// CameraUpdateMode selects where the follow camera is advanced
type CameraUpdateMode int

const (
	// CameraUpdateFixed advances the camera inside the fixed-timestep simulation tick
	CameraUpdateFixed CameraUpdateMode = iota
	// CameraUpdateRender advances the camera once per rendered frame
	CameraUpdateRender
)

func (m CameraUpdateMode) String() string {
	switch m {
	case CameraUpdateRender:
		return "render"
	default:
		return "fixed"
	}
}

// ParseCameraUpdateMode maps a tuning string to a mode. Unknown values report false.
func ParseCameraUpdateMode(s string) (CameraUpdateMode, bool) {
	switch s {
	case "fixed":
		return CameraUpdateFixed, true
	case "render":
		return CameraUpdateRender, true
	}
	return CameraUpdateFixed, false
}

// CameraConfig contains follow camera configuration values
type CameraConfig struct {
	BaseOffset mgl64.Vec3
	SmoothTime float64 // critically damped position smoothing time

	// Zoom
	ZoomInMultiplier     float64
	RunZoomOutMultiplier float64
	ZoomTransitionTime   float64 // seconds per ease in or ease out
	RunZoomSmoothSpeed   float64 // fraction of the remaining offset covered per second
	ZoomEasing           string  // gween easing name, "smoothstep" by default

	// Orientation
	LookAt           bool
	LookHeightOffset float64

	UpdateMode CameraUpdateMode

	// Lens
	FovY float64 // radians
	Near float64
	Far  float64
}

// ProbeConfig contains ground probe configuration values
type ProbeConfig struct {
	MaxDistance float64
	GroundMask  []string
}

// ActionConfig contains discrete action configuration values
type ActionConfig struct {
	RaiseHandZoomHold float64 // seconds the camera holds the zoom after raising a hand
}

// AnimatorParams names the parameters written to the animator sink
type AnimatorParams struct {
	BlendX    string
	BlendY    string
	Speed     string
	RaiseHand string
}

// DebugConfig contains debug renderer configuration values
type DebugConfig struct {
	Enabled         bool
	PixelsPerUnit   float64
	BackgroundColor color.RGBA
	GroundColor     color.RGBA
	RampColor       color.RGBA
	DecorColor      color.RGBA
	LiftColor       color.RGBA
	BoundsColor     color.RGBA
	PlayerColor     color.RGBA
	CameraColor     color.RGBA
	ProbeColor      color.RGBA
	TextColor       color.RGBA
}

type Config struct {
	Width         int
	Height        int
	TPS           int     // fixed simulation ticks per second
	MaxFrameDelta float64 // render-mode delta clamp in seconds
	SettingsApp   string  // gdata application name
}

var C *Config
var Character CharacterConfig
var Camera CameraConfig
var Probe ProbeConfig
var Action ActionConfig
var Animator AnimatorParams
var Debug DebugConfig

// DefaultGroundLayer is queried when no ground mask is configured.
const DefaultGroundLayer = "ground"

func init() {
	C = &Config{
		Width:         640,
		Height:        360,
		TPS:           60,
		MaxFrameDelta: 0.1,
		SettingsApp:   "thirdperson",
	}

	// Character Config
	Character = CharacterConfig{
		// Movement
		WalkSpeed:     2.0,
		RunSpeed:      5.0,
		RotationSpeed: 10.0,

		// Physics
		Gravity:                  -9.81,
		GroundedVerticalVelocity: -2.0,
		GroundSnapDistance:       0.05,

		// Animation
		AnimationSmoothTime: 0.1,
		WalkBlendMultiplier: 0.5,

		MinX: -10,
		MaxX: 10,

		MoveThreshold:      0.1,
		FacingThresholdSqr: 1e-3,
	}

	// Camera Config
	Camera = CameraConfig{
		BaseOffset: mgl64.Vec3{0, 10, -8},
		SmoothTime: 0.125,

		ZoomInMultiplier:     0.6,
		RunZoomOutMultiplier: 1.2,
		ZoomTransitionTime:   0.5,
		RunZoomSmoothSpeed:   2.0,
		ZoomEasing:           "smoothstep",

		LookAt:           true,
		LookHeightOffset: 1.0,

		UpdateMode: CameraUpdateFixed,

		FovY: mgl64.DegToRad(60),
		Near: 0.3,
		Far:  1000,
	}

	Probe = ProbeConfig{
		MaxDistance: 100,
		GroundMask:  []string{DefaultGroundLayer},
	}

	Action = ActionConfig{
		RaiseHandZoomHold: 3.0,
	}

	Animator = AnimatorParams{
		BlendX:    "x",
		BlendY:    "y",
		Speed:     "Speed",
		RaiseHand: "RaiseHand",
	}

	Debug = DebugConfig{
		Enabled:         true,
		PixelsPerUnit:   14,
		BackgroundColor: color.RGBA{R: 20, G: 22, B: 30, A: 255},
		GroundColor:     colornames.Darkslategray,
		RampColor:       colornames.Slategray,
		DecorColor:      colornames.Steelblue,
		LiftColor:       colornames.Darkorange,
		BoundsColor:     colornames.Indianred,
		PlayerColor:     colornames.Gold,
		CameraColor:     colornames.Cornflowerblue,
		ProbeColor:      colornames.White,
		TextColor:       colornames.Lightgrey,
	}
}
