package factory

import (
	"github.com/automoto/thirdperson/archetypes"
	"github.com/automoto/thirdperson/components"
	cfg "github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/shared/gamemath"
	"github.com/automoto/thirdperson/systems"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCamera spawns a follow camera. With a target it starts snapped to
// its desired pose; without one it resolves a target on its first update.
func CreateCamera(ecs *ecs.ECS, target *donburi.Entry) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)

	components.Camera.SetValue(camera, components.CameraData{
		Zoom: components.ZoomState{
			Base:    cfg.Camera.BaseOffset,
			Current: cfg.Camera.BaseOffset,
			Target:  cfg.Camera.BaseOffset,
		},
	})
	components.Transform.SetValue(camera, components.TransformData{
		Position: cfg.Camera.BaseOffset,
		Rotation: mgl64.QuatIdent(),
	})
	components.Projection.SetValue(camera, components.ProjectionData{
		Projection: gamemath.Projection{
			FovY:   cfg.Camera.FovY,
			Near:   cfg.Camera.Near,
			Far:    cfg.Camera.Far,
			Width:  cfg.C.Width,
			Height: cfg.C.Height,
		},
	})

	if target != nil {
		systems.SetFollowTarget(camera, target)
		systems.SnapToTarget(ecs, camera)
	}
	return camera
}
