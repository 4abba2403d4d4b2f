package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
)

// GroundPatch is the payload carried by a ground object in a resolv space.
// The object's X/Y/W/H are the patch footprint on the XZ plane in space units.
type GroundPatch struct {
	Height float64
}

// PatchHeight returns the surface height of a ground object. Objects without a
// GroundPatch payload sit at height zero.
func PatchHeight(obj *resolv.Object) float64 {
	if patch, ok := obj.Data.(*GroundPatch); ok && patch != nil {
		return patch.Height
	}
	return 0
}

// FootprintContains reports whether the space point (sx, sy) lies on the object's footprint.
func FootprintContains(obj *resolv.Object, sx, sy float64) bool {
	return sx >= obj.X && sx <= obj.X+obj.W && sy >= obj.Y && sy <= obj.Y+obj.H
}

// IntersectHorizontalPlane returns the distance along a unit ray at which it
// crosses the plane y = height. Rays parallel to the plane or pointing away from it miss.
func IntersectHorizontalPlane(origin, dir mgl64.Vec3, height float64) (float64, bool) {
	if math.Abs(dir[1]) < 1e-9 {
		return 0, false
	}
	t := (height - origin[1]) / dir[1]
	if t < 0 {
		return 0, false
	}
	return t, true
}
