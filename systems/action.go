package systems

import (
	"github.com/automoto/thirdperson/components"
	cfg "github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateActions fires discrete actions on the rising edge of their key, so a
// held key fires once.
func UpdateActions(e *ecs.ECS) {
	input := GetInput(e)

	if input.RaiseHandPressed {
		raiseHand(e)
	}
	if input.RespawnPressed {
		tags.Player.Each(e.World, func(entry *donburi.Entry) {
			Teleport(e, entry, components.Player.Get(entry).Spawn)
		})
	}
}

func raiseHand(e *ecs.ECS) {
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		if entry.HasComponent(components.Animator) {
			components.Animator.Get(entry).SetTrigger(cfg.Animator.RaiseHand)
		}
	})
	if camera, ok := tags.Camera.First(e.World); ok {
		ZoomInTemporary(camera, cfg.Action.RaiseHandZoomHold)
	}
}
