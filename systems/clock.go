package systems

import (
	"github.com/automoto/thirdperson/components"
	cfg "github.com/automoto/thirdperson/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock advances simulated time by one fixed tick.
// Must run FIRST in the system order.
func UpdateClock(e *ecs.ECS) {
	clock := getOrCreateClock(e)
	clock.Tick++
	clock.Elapsed += clock.FixedDelta
}

// FixedDelta returns the seconds covered by one simulation tick.
func FixedDelta(e *ecs.ECS) float64 {
	return getOrCreateClock(e).FixedDelta
}

func getOrCreateClock(e *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Clock))
	}
	clock := components.Clock.Get(entry)
	if clock.FixedDelta <= 0 {
		clock.FixedDelta = 1 / float64(cfg.C.TPS)
	}
	return clock
}
