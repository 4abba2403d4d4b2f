package config

import "github.com/yohamta/donburi/ecs"

// Draw layers
const (
	Default ecs.LayerID = iota
	HUD
)
