package systems

import (
	"math"

	"github.com/automoto/thirdperson/components"
	cfg "github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
)

// NewGroundData builds an empty ground index covering the world rectangle
// [minX, maxX] x [minZ, maxZ] with one grid cell per world unit.
func NewGroundData(minX, minZ, maxX, maxZ, scale float64) *components.GroundData {
	cell := int(math.Max(1, math.Round(scale)))
	w := int(math.Ceil((maxX-minX)*scale)) + cell
	h := int(math.Ceil((maxZ-minZ)*scale)) + cell
	return &components.GroundData{
		Space:  resolv.NewSpace(w, h, cell, cell),
		Origin: mgl64.Vec2{minX, minZ},
		Scale:  scale,
	}
}

// AddGroundPatch registers a flat patch with its corner at world (x, z), the
// given world size and surface height. tags are the patch's ground layers.
func AddGroundPatch(g *components.GroundData, x, z, width, depth, height float64, tags ...string) *resolv.Object {
	sx, sy := g.ToSpace(x, z)
	obj := resolv.NewObject(sx, sy, width*g.Scale, depth*g.Scale, tags...)
	obj.Data = &gamemath.GroundPatch{Height: height}
	g.Space.Add(obj)
	return obj
}

// RaycastGround returns the nearest point where the ray meets a ground patch
// whose tags intersect mask. Hits behind origin or past maxDistance are ignored.
func RaycastGround(g *components.GroundData, origin, dir mgl64.Vec3, maxDistance float64, mask []string) (mgl64.Vec3, bool) {
	if g == nil || g.Space == nil || len(mask) == 0 {
		return mgl64.Vec3{}, false
	}
	dir = gamemath.SafeNormalize(dir)
	if dir.LenSqr() == 0 {
		return mgl64.Vec3{}, false
	}

	best := math.Inf(1)
	for _, obj := range g.Space.Objects() {
		if !obj.HasTags(mask...) {
			continue
		}
		t, ok := gamemath.IntersectHorizontalPlane(origin, dir, gamemath.PatchHeight(obj))
		if !ok || t > maxDistance || t >= best {
			continue
		}
		p := origin.Add(dir.Mul(t))
		sx, sy := g.ToSpace(p[0], p[2])
		if !gamemath.FootprintContains(obj, sx, sy) {
			continue
		}
		best = t
	}
	if math.IsInf(best, 1) {
		return mgl64.Vec3{}, false
	}
	return origin.Add(dir.Mul(best)), true
}

// GroundHeightAt returns the highest ground surface under world (x, z).
func GroundHeightAt(g *components.GroundData, x, z float64, mask []string) (float64, bool) {
	if g == nil || g.Space == nil || len(mask) == 0 {
		return 0, false
	}
	sx, sy := g.ToSpace(x, z)
	cell := g.Space.Cell(g.Space.WorldToSpace(sx, sy))
	if cell == nil {
		return 0, false
	}

	height, found := math.Inf(-1), false
	for _, obj := range cell.Objects {
		if !obj.HasTags(mask...) || !gamemath.FootprintContains(obj, sx, sy) {
			continue
		}
		height = math.Max(height, gamemath.PatchHeight(obj))
		found = true
	}
	return height, found
}

// GroundMask returns the configured ground layers, or the default layer when
// none are configured.
func GroundMask() []string {
	if len(cfg.Probe.GroundMask) == 0 {
		return []string{cfg.DefaultGroundLayer}
	}
	return cfg.Probe.GroundMask
}

func getGround(e *ecs.ECS) (*components.GroundData, bool) {
	entry, ok := components.Ground.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Ground.Get(entry), true
}
