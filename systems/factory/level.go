package factory

import (
	"github.com/automoto/thirdperson/archetypes"
	"github.com/automoto/thirdperson/assets"
	"github.com/automoto/thirdperson/components"
	cfg "github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/shared/leveldata"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel loads the named embedded arena and builds it.
func CreateLevel(ecs *ecs.ECS, name string) *donburi.Entry {
	loader := assets.NewArenaLoader()
	return CreateArena(ecs, loader.MustLoadArena(name))
}

// CreateArena spawns the level entity, its ground, the player at the arena
// spawn, and a camera following the player. Arena bounds, when present,
// replace the configured play area.
func CreateArena(ecs *ecs.ECS, arena *leveldata.Arena) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{Arena: arena})

	if arena.HasBounds {
		cfg.Character.MinX = arena.MinX
		cfg.Character.MaxX = arena.MaxX
	}

	CreateGround(ecs, arena)
	player := CreatePlayer(ecs, mgl64.Vec3{arena.Spawn.X, arena.Spawn.Y, arena.Spawn.Z})
	CreateCamera(ecs, player)

	return level
}
