package systems

import (
	"github.com/automoto/thirdperson/components"
	cfg "github.com/automoto/thirdperson/config"
)

// AnimatorReadout is one frame of animator parameters as the debug view
// plays them.
type AnimatorReadout struct {
	X, Y, Speed float64
	RaiseHand   bool // a pulse was pending
}

// DrainAnimator reads the float parameters and consumes every pending
// RaiseHand pulse, standing in for an external animator.
func DrainAnimator(anim *components.AnimatorData) AnimatorReadout {
	r := AnimatorReadout{
		X:     anim.Float(cfg.Animator.BlendX),
		Y:     anim.Float(cfg.Animator.BlendY),
		Speed: anim.Float(cfg.Animator.Speed),
	}
	for anim.ConsumeTrigger(cfg.Animator.RaiseHand) {
		r.RaiseHand = true
	}
	return r
}
