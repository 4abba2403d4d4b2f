package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Camera = donburi.NewTag().SetName("Camera")
	Ground = donburi.NewTag().SetName("Ground")
)

// Resolv tags for ground patches. A ground mask is a list of these.
const (
	ResolvGround = "ground"
	ResolvRamp   = "ramp"
	ResolvDecor  = "decor" // drawn, never stood on by default
)
