package systems

import (
	"github.com/automoto/thirdperson/components"
	"github.com/automoto/thirdperson/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// NewLiftTween returns an endless up-and-down sequence between base and
// base+travel. One round trip takes period seconds.
func NewLiftTween(base, travel, period float64) *gween.Sequence {
	half := float32(period / 2)
	seq := gween.NewSequence(
		gween.New(float32(base), float32(base+travel), half, ease.InOutSine),
		gween.New(float32(base+travel), float32(base), half, ease.InOutSine),
	)
	seq.SetLoop(-1)
	return seq
}

// UpdateMovers advances every lift by one fixed step. It runs before
// locomotion so characters snap to this tick's surface.
func UpdateMovers(e *ecs.ECS) {
	dt := float32(FixedDelta(e))
	for entry := range components.Mover.Iter(e.World) {
		m := components.Mover.Get(entry)
		if m.Tween == nil || m.Object == nil {
			continue
		}
		h, _, _ := m.Tween.Update(dt)
		if patch, ok := m.Object.Data.(*gamemath.GroundPatch); ok && patch != nil {
			patch.Height = float64(h)
		}
	}
}
