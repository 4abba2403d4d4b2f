package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

type CameraData struct {
	Target    donburi.Entity // Follow target, not owned
	HasTarget bool
	Lost      bool // Target was resolved once and then went missing

	Velocity mgl64.Vec3 // Position spring state
	Running  bool       // Written by locomotion, read once per camera update
	Zoom     ZoomState
}

var Camera = donburi.NewComponentType[CameraData]()
