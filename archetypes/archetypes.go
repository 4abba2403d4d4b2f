package archetypes

import (
	"github.com/automoto/thirdperson/components"
	cfg "github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Transform,
		components.Locomotion,
		components.Animator,
	)
	Camera = newArchetype(
		tags.Camera,
		components.Camera,
		components.Transform,
		components.Projection,
	)
	Ground = newArchetype(
		tags.Ground,
		components.Ground,
	)
	Mover = newArchetype(
		components.Mover,
	)
	Level = newArchetype(
		components.Level,
	)
	// Session holds the process-wide singletons read by every system.
	Session = newArchetype(
		components.Input,
		components.Clock,
		components.Cursor,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
