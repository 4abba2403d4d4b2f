package factory

import (
	"github.com/automoto/thirdperson/archetypes"
	"github.com/automoto/thirdperson/components"
	cfg "github.com/automoto/thirdperson/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSession spawns the input, clock and cursor singletons.
func CreateSession(ecs *ecs.ECS) *donburi.Entry {
	session := archetypes.Session.Spawn(ecs)
	components.Clock.SetValue(session, components.ClockData{
		FixedDelta: 1 / float64(cfg.C.TPS),
	})
	components.Cursor.SetValue(session, components.CursorData{Visible: true})
	return session
}
