package gamemath

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/tanema/gween/ease"
)

// Smoothstep eases a normalized progress with zero slope at both ends (3t²-2t³).
func Smoothstep(t float64) float64 {
	t = mgl64.Clamp(t, 0, 1)
	return t * t * (3 - 2*t)
}

// SmoothstepTween is Smoothstep in the gween easing signature:
// t elapsed, b begin, c change, d duration.
func SmoothstepTween(t, b, c, d float32) float32 {
	if d <= 0 {
		return b + c
	}
	return b + c*float32(Smoothstep(float64(t/d)))
}

var easings = map[string]ease.TweenFunc{
	"smoothstep": SmoothstepTween,
	"linear":     ease.Linear,
	"inOutQuad":  ease.InOutQuad,
	"inOutCubic": ease.InOutCubic,
	"inOutSine":  ease.InOutSine,
	"outCubic":   ease.OutCubic,
}

// EasingCurve maps normalized progress in [0, 1] to eased progress.
type EasingCurve func(p float64) float64

// Easing returns the named curve. Unknown names fall back to Smoothstep and report false.
func Easing(name string) (EasingCurve, bool) {
	if name == "" || name == "smoothstep" {
		return Smoothstep, true
	}
	fn, ok := easings[name]
	if !ok {
		return Smoothstep, false
	}
	return func(p float64) float64 {
		p = mgl64.Clamp(p, 0, 1)
		if p >= 1 {
			return 1
		}
		return float64(fn(float32(p), 0, 1, 1))
	}, true
}
