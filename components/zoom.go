package components

import "github.com/go-gl/mathgl/mgl64"

// ZoomMode decides which process advances the camera offset on a tick.
type ZoomMode int

const (
	ZoomIdle ZoomMode = iota
	ZoomRunAdjusting
	ZoomTemporary
)

func (m ZoomMode) String() string {
	switch m {
	case ZoomRunAdjusting:
		return "run-adjusting"
	case ZoomTemporary:
		return "temporary"
	}
	return "idle"
}

// ZoomPhase is the step of a temporary zoom.
type ZoomPhase int

const (
	ZoomIn ZoomPhase = iota
	ZoomHold
	ZoomOut
)

func (p ZoomPhase) String() string {
	switch p {
	case ZoomHold:
		return "hold"
	case ZoomOut:
		return "out"
	}
	return "in"
}

// ZoomState is the camera offset and the single timeline that moves it.
// Phase, Elapsed, Hold and From only mean something while Mode is ZoomTemporary.
type ZoomState struct {
	Base    mgl64.Vec3
	Current mgl64.Vec3
	Target  mgl64.Vec3

	Mode    ZoomMode
	Phase   ZoomPhase
	Elapsed float64    // seconds into the current phase
	Hold    float64    // seconds to stay zoomed
	From    mgl64.Vec3 // offset at the start of the current ease
}

// Begin starts a temporary zoom from the current offset. Any timeline in
// flight is replaced.
func (z *ZoomState) Begin(hold float64) {
	z.Mode = ZoomTemporary
	z.Phase = ZoomIn
	z.Elapsed = 0
	z.Hold = hold
	z.From = z.Current
}
