package systems

import (
	"log"

	"github.com/automoto/thirdperson/components"
	cfg "github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/shared/gamemath"
	"github.com/automoto/thirdperson/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera advances follow cameras by one fixed tick. It does nothing
// while cameras are configured to update per rendered frame.
// Must run AFTER UpdateLocomotion in the system order.
func UpdateCamera(e *ecs.ECS) {
	if cfg.Camera.UpdateMode != cfg.CameraUpdateFixed {
		return
	}
	AdvanceCameras(e, FixedDelta(e))
}

// UpdateCameraFrame advances follow cameras from the draw loop with the
// wall-clock frame delta, clamped to MaxFrameDelta. It does nothing in fixed mode.
func UpdateCameraFrame(e *ecs.ECS, frameDelta float64) {
	if cfg.Camera.UpdateMode != cfg.CameraUpdateRender {
		return
	}
	dt := mgl64.Clamp(frameDelta, 0, cfg.C.MaxFrameDelta)
	getOrCreateClock(e).FrameDelta = dt
	AdvanceCameras(e, dt)
}

// AdvanceCameras moves every follow camera by dt.
func AdvanceCameras(e *ecs.ECS, dt float64) {
	tags.Camera.Each(e.World, func(entry *donburi.Entry) {
		advanceCamera(e, entry, dt)
	})
}

func advanceCamera(e *ecs.ECS, entry *donburi.Entry, dt float64) {
	cam := components.Camera.Get(entry)
	target, ok := resolveTarget(e, cam)
	if !ok {
		return
	}

	stepZoom(&cam.Zoom, cam.Running, dt)

	pose := components.Transform.Get(entry)
	focus := components.Transform.Get(target).Position
	desired := focus.Add(cam.Zoom.Current)
	pose.Position = gamemath.SmoothDampVec3(pose.Position, desired, &cam.Velocity, cfg.Camera.SmoothTime, dt)

	if cfg.Camera.LookAt {
		lookAt(pose, focus)
	}
}

func lookAt(pose *components.TransformData, focus mgl64.Vec3) {
	point := focus.Add(gamemath.Up.Mul(cfg.Camera.LookHeightOffset))
	if rot, ok := gamemath.LookRotation(point.Sub(pose.Position), gamemath.Up); ok {
		pose.Rotation = rot
	}
}

// resolveTarget returns the camera's follow target, re-resolving it by tag
// when it was never set or has been destroyed.
func resolveTarget(e *ecs.ECS, cam *components.CameraData) (*donburi.Entry, bool) {
	if cam.HasTarget {
		if e.World.Valid(cam.Target) {
			entry := e.World.Entry(cam.Target)
			if entry.HasComponent(components.Transform) {
				return entry, true
			}
		}
		cam.HasTarget = false
	}

	if entry, ok := tags.Player.First(e.World); ok {
		cam.Target = entry.Entity()
		cam.HasTarget = true
		if cam.Lost {
			log.Printf("Camera: follow target re-acquired")
			cam.Lost = false
		}
		return entry, true
	}

	if !cam.Lost {
		log.Printf("Warning: camera has no follow target, holding position until one appears")
		cam.Lost = true
	}
	return nil, false
}

// SetFollowTarget points camera at target.
func SetFollowTarget(camera, target *donburi.Entry) {
	cam := components.Camera.Get(camera)
	cam.Target = target.Entity()
	cam.HasTarget = true
}

// SetRunning records whether the followed character is running. The camera
// reads it on its next update.
func SetRunning(camera *donburi.Entry, running bool) {
	components.Camera.Get(camera).Running = running
}

// ZoomInTemporary zooms camera in, holds for hold seconds and zooms back out.
// A zoom already in flight is replaced, starting from the current offset.
func ZoomInTemporary(camera *donburi.Entry, hold float64) {
	components.Camera.Get(camera).Zoom.Begin(hold)
}

// SnapToTarget discards all smoothing and places camera at its desired pose.
// It reports false when the camera has no target.
func SnapToTarget(e *ecs.ECS, camera *donburi.Entry) bool {
	cam := components.Camera.Get(camera)
	target, ok := resolveTarget(e, cam)
	if !ok {
		return false
	}

	z := &cam.Zoom
	z.Base = cfg.Camera.BaseOffset
	if z.Mode != components.ZoomTemporary {
		z.Target = z.Base
		if cam.Running {
			z.Target = z.Base.Mul(cfg.Camera.RunZoomOutMultiplier)
		}
		z.Current = z.Target
		z.Mode = components.ZoomIdle
	}

	pose := components.Transform.Get(camera)
	focus := components.Transform.Get(target).Position
	pose.Position = focus.Add(z.Current)
	cam.Velocity = mgl64.Vec3{}
	if cfg.Camera.LookAt {
		lookAt(pose, focus)
	}
	return true
}
