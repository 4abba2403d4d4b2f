package factory

import (
	"github.com/automoto/thirdperson/archetypes"
	"github.com/automoto/thirdperson/components"
	cfg "github.com/automoto/thirdperson/config"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlayer(ecs *ecs.ECS, spawn mgl64.Vec3) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	components.Player.SetValue(player, components.PlayerData{Spawn: spawn})
	components.Transform.SetValue(player, components.TransformData{
		Position: spawn,
		Rotation: mgl64.QuatIdent(),
	})
	components.Locomotion.SetValue(player, components.LocomotionData{
		VerticalVelocity: cfg.Character.GroundedVerticalVelocity,
	})
	components.Animator.SetValue(player, components.AnimatorData{
		Floats: map[string]float64{
			cfg.Animator.BlendX: 0,
			cfg.Animator.BlendY: 0,
			cfg.Animator.Speed:  0,
		},
		Triggers: map[string]int{},
	})

	return player
}
