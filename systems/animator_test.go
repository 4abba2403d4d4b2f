package systems

import (
	"testing"

	"github.com/automoto/thirdperson/components"
	cfg "github.com/automoto/thirdperson/config"
	"github.com/go-gl/mathgl/mgl64"
)

func TestDrainAnimatorConsumesPulses(t *testing.T) {
	e := newTestWorld(t)
	player := spawnPlayer(e, mgl64.Vec3{})
	spawnCamera(e, player)
	input := newFakeInput(cfg.ActionMoveForward)
	poll := NewInputSystem(input)

	runTicks(e, 30, poll, UpdateLocomotion)
	input.held[cfg.ActionRaiseHand] = true
	runTicks(e, 1, poll, UpdateLocomotion, UpdateActions)

	anim := components.Animator.Get(player)
	got := DrainAnimator(anim)
	if !got.RaiseHand {
		t.Fatalf("expected the raise-hand pulse on the first drain")
	}
	if anim.Triggers[cfg.Animator.RaiseHand] != 0 {
		t.Fatalf("expected no pending pulses, got %d", anim.Triggers[cfg.Animator.RaiseHand])
	}
	if got.Y <= 0 || got.Speed <= 0 {
		t.Fatalf("expected forward blend and speed, got %+v", got)
	}
	if got.X != anim.Float(cfg.Animator.BlendX) || got.Speed != anim.Float(cfg.Animator.Speed) {
		t.Fatalf("expected readout to match the sink, got %+v", got)
	}

	if DrainAnimator(anim).RaiseHand {
		t.Fatalf("expected the pulse to be consumed")
	}
}

func TestDrainAnimatorEmptySink(t *testing.T) {
	var anim components.AnimatorData
	if got := DrainAnimator(&anim); got != (AnimatorReadout{}) {
		t.Fatalf("expected zero readout, got %+v", got)
	}
}
