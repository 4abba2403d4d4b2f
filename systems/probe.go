package systems

import (
	"github.com/automoto/thirdperson/components"
	"github.com/automoto/thirdperson/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ProbeGround casts screen through camera and returns the nearest ground
// point within maxDistance whose layer is in mask. It never mutates the world.
func ProbeGround(e *ecs.ECS, screen mgl64.Vec2, camera *donburi.Entry, maxDistance float64, mask []string) (mgl64.Vec3, bool) {
	ground, ok := getGround(e)
	if !ok || camera == nil || !camera.Valid() {
		return mgl64.Vec3{}, false
	}
	if !camera.HasComponent(components.Transform) || !camera.HasComponent(components.Projection) {
		return mgl64.Vec3{}, false
	}

	pose := components.Transform.Get(camera)
	lens := components.Projection.Get(camera)
	ray, err := gamemath.ScreenRay(screen, pose.Position, pose.Rotation, lens.Projection)
	if err != nil {
		return mgl64.Vec3{}, false
	}
	return RaycastGround(ground, ray.Origin, ray.Dir, maxDistance, mask)
}
