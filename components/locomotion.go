package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

type LocomotionData struct {
	FacingVelocity   float64    // Radians per second turned on the last tick
	PlanarVelocity   mgl64.Vec2 // World (x, z) velocity applied on the last tick
	VerticalVelocity float64

	AnimBlend     mgl64.Vec2 // Smoothed (x, y) blend sent to the animator
	BlendVelocity mgl64.Vec2 // Spring state for AnimBlend
	AnimSpeed     float64

	IsRunning  bool
	IsGrounded bool

	// Last ground point under the pointer, kept for aiming and debug display
	Aim    mgl64.Vec3
	HasAim bool
}

var Locomotion = donburi.NewComponentType[LocomotionData]()
