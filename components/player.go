package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Spawn mgl64.Vec3 // Respawn position
}

var Player = donburi.NewComponentType[PlayerData]()
