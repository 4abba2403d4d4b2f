package factory

import (
	"github.com/automoto/thirdperson/archetypes"
	"github.com/automoto/thirdperson/components"
	"github.com/automoto/thirdperson/shared/leveldata"
	"github.com/automoto/thirdperson/systems"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// groundScale is resolv space units per world unit; one grid cell spans one world unit.
const groundScale = 16

// CreateGround indexes every patch of arena in a resolv space.
func CreateGround(ecs *ecs.ECS, arena *leveldata.Arena) *donburi.Entry {
	ground := archetypes.Ground.Spawn(ecs)

	ext := arena.Extent
	data := systems.NewGroundData(ext.MinX, ext.MinZ, ext.MaxX, ext.MaxZ, groundScale)
	for _, p := range arena.Patches {
		obj := systems.AddGroundPatch(data, p.X, p.Z, p.Width, p.Depth, p.Height, p.Layer)
		if p.Moves() {
			CreateLift(ecs, obj, p)
		}
	}
	components.Ground.Set(ground, data)

	return ground
}

// CreateLift bobs a ground patch up and down using a *gween.Sequence.
func CreateLift(ecs *ecs.ECS, obj *resolv.Object, p leveldata.Patch) *donburi.Entry {
	lift := archetypes.Mover.Spawn(ecs)
	components.Mover.SetValue(lift, components.MoverData{
		Object: obj,
		Tween:  systems.NewLiftTween(p.Height, p.Travel, p.Period),
	})
	return lift
}
