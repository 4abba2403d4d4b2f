package systems

import (
	"math"

	"github.com/automoto/thirdperson/components"
	cfg "github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/shared/gamemath"
)

const (
	// phaseEpsilon absorbs float drift when elapsed time is summed from ticks.
	phaseEpsilon = 1e-6
	// settleEpsilon is how close the run-adjusted offset must get before it snaps and idles.
	settleEpsilon = 1e-6
)

// stepZoom advances the camera offset by dt. Exactly one process writes
// Current per call: the temporary zoom timeline while one is active,
// otherwise the run adjustment.
func stepZoom(z *components.ZoomState, running bool, dt float64) {
	z.Base = cfg.Camera.BaseOffset
	if z.Mode == components.ZoomTemporary {
		stepTemporaryZoom(z, dt)
		return
	}

	z.Target = z.Base
	if running {
		z.Target = z.Base.Mul(cfg.Camera.RunZoomOutMultiplier)
	}
	z.Current = gamemath.ExpApproach(z.Current, z.Target, cfg.Camera.RunZoomSmoothSpeed, dt)
	if z.Target.Sub(z.Current).Len() < settleEpsilon {
		z.Current = z.Target
		z.Mode = components.ZoomIdle
	} else {
		z.Mode = components.ZoomRunAdjusting
	}
}

// stepTemporaryZoom runs the in, hold, out timeline. Time left over when a
// phase completes carries into the next one, so the whole cycle takes
// 2*ZoomTransitionTime + Hold regardless of tick size.
func stepTemporaryZoom(z *components.ZoomState, dt float64) {
	transition := cfg.Camera.ZoomTransitionTime
	zoomed := z.Base.Mul(cfg.Camera.ZoomInMultiplier)
	ease, _ := gamemath.Easing(cfg.Camera.ZoomEasing)

	z.Elapsed += dt
	for {
		switch z.Phase {
		case components.ZoomIn:
			z.Target = zoomed
			if z.Elapsed < transition-phaseEpsilon {
				z.Current = gamemath.Lerp3(z.From, zoomed, ease(z.Elapsed/transition))
				return
			}
			z.Current = zoomed
			z.Elapsed = math.Max(0, z.Elapsed-transition)
			z.Phase = components.ZoomHold

		case components.ZoomHold:
			z.Current = zoomed
			if z.Elapsed < z.Hold-phaseEpsilon {
				return
			}
			z.Elapsed = math.Max(0, z.Elapsed-z.Hold)
			z.From = zoomed
			z.Phase = components.ZoomOut

		case components.ZoomOut:
			z.Target = z.Base
			if z.Elapsed < transition-phaseEpsilon {
				z.Current = gamemath.Lerp3(z.From, z.Base, ease(z.Elapsed/transition))
				return
			}
			// Run adjustment takes over on the next step.
			z.Current = z.Base
			z.Mode = components.ZoomIdle
			z.Phase = components.ZoomIn
			z.Elapsed = 0
			return

		default:
			z.Mode = components.ZoomIdle
			return
		}
	}
}
