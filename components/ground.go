package components

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// GroundData indexes ground patches in a resolv space. Space coordinates are
// world (x, z) shifted by Origin and multiplied by Scale, so patches at
// negative world coordinates still land on the grid.
type GroundData struct {
	Space  *resolv.Space
	Origin mgl64.Vec2 // world (x, z) of space (0, 0)
	Scale  float64    // space units per world unit
}

func (g *GroundData) ToSpace(x, z float64) (float64, float64) {
	return (x - g.Origin[0]) * g.Scale, (z - g.Origin[1]) * g.Scale
}

func (g *GroundData) ToWorld(sx, sy float64) (float64, float64) {
	return sx/g.Scale + g.Origin[0], sy/g.Scale + g.Origin[1]
}

var Ground = donburi.NewComponentType[GroundData]()
