// Package render draws the simulation with ebitengine: a wireframe view
// through the follow camera, a top-down minimap and a text HUD.
package render

import (
	"image/color"
	"math"
	"sort"

	"github.com/automoto/thirdperson/components"
	cfg "github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/shared/gamemath"
	"github.com/automoto/thirdperson/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Character marker size in world units
const (
	bodyHeight = 1.8
	bodyRadius = 0.35
	facingLen  = 1.2
)

// view is the camera a frame is drawn through.
type view struct {
	eye         mgl64.Vec3
	orientation mgl64.Quat
	proj        gamemath.Projection
}

func cameraView(e *ecs.ECS) (view, bool) {
	camera, ok := tags.Camera.First(e.World)
	if !ok {
		return view{}, false
	}
	pose := components.Transform.Get(camera)
	return view{
		eye:         pose.Position,
		orientation: pose.Rotation,
		proj:        components.Projection.Get(camera).Projection,
	}, true
}

func (v view) segment(a, b mgl64.Vec3) (mgl64.Vec2, mgl64.Vec2, bool) {
	return gamemath.ProjectSegment(a, b, v.eye, v.orientation, v.proj)
}

// patch is a ground object resolved to world space for drawing.
type patch struct {
	min, max mgl64.Vec2 // world (x, z)
	height   float64
	clr      color.RGBA
}

func groundPatches(e *ecs.ECS) []patch {
	entry, ok := components.Ground.First(e.World)
	if !ok {
		return nil
	}
	g := components.Ground.Get(entry)
	lifts := liftObjects(e)

	objs := g.Space.Objects()
	out := make([]patch, 0, len(objs))
	for _, obj := range objs {
		x0, z0 := g.ToWorld(obj.X, obj.Y)
		x1, z1 := g.ToWorld(obj.X+obj.W, obj.Y+obj.H)
		out = append(out, patch{
			min:    mgl64.Vec2{x0, z0},
			max:    mgl64.Vec2{x1, z1},
			height: gamemath.PatchHeight(obj),
			clr:    patchColor(obj, lifts[obj]),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].height < out[j].height })
	return out
}

func liftObjects(e *ecs.ECS) map[*resolv.Object]bool {
	lifts := map[*resolv.Object]bool{}
	components.Mover.Each(e.World, func(entry *donburi.Entry) {
		lifts[components.Mover.Get(entry).Object] = true
	})
	return lifts
}

func patchColor(obj *resolv.Object, lift bool) color.RGBA {
	switch {
	case lift:
		return cfg.Debug.LiftColor
	case obj.HasTags(tags.ResolvDecor):
		return cfg.Debug.DecorColor
	case obj.HasTags(tags.ResolvRamp):
		return cfg.Debug.RampColor
	default:
		return cfg.Debug.GroundColor
	}
}

// DrawWorld draws ground, play-area bounds, characters and the aim point as
// seen through the follow camera.
func DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Debug.BackgroundColor)

	v, ok := cameraView(e)
	if !ok {
		return
	}

	for _, p := range groundPatches(e) {
		drawPatch(screen, v, p)
	}
	drawBounds(e, screen, v)

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		drawCharacter(screen, v, entry)
	})
}

func drawPatch(screen *ebiten.Image, v view, p patch) {
	h := p.height
	corners := []mgl64.Vec3{
		{p.min[0], h, p.min[1]},
		{p.max[0], h, p.min[1]},
		{p.max[0], h, p.max[1]},
		{p.min[0], h, p.max[1]},
	}
	fillPolygon(screen, gamemath.ProjectPolygon(corners, v.eye, v.orientation, v.proj), shade(p.clr, 0.6))

	for i := range corners {
		if a, b, ok := v.segment(corners[i], corners[(i+1)%len(corners)]); ok {
			strokeLine(screen, a, b, 1, p.clr)
		}
	}
}

func drawBounds(e *ecs.ECS, screen *ebiten.Image, v view) {
	entry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	arena := components.Level.Get(entry).Arena
	if arena == nil {
		return
	}
	ext := arena.Extent
	for _, x := range []float64{cfg.Character.MinX, cfg.Character.MaxX} {
		a := mgl64.Vec3{x, 0, ext.MinZ}
		b := mgl64.Vec3{x, 0, ext.MaxZ}
		if sa, sb, ok := v.segment(a, b); ok {
			strokeLine(screen, sa, sb, 2, cfg.Debug.BoundsColor)
		}
	}
}

func drawCharacter(screen *ebiten.Image, v view, entry *donburi.Entry) {
	pose := components.Transform.Get(entry)
	loco := components.Locomotion.Get(entry)
	feet := pose.Position
	head := feet.Add(gamemath.Up.Mul(bodyHeight))

	// Body as a vertical post with a ring at the feet
	if a, b, ok := v.segment(feet, head); ok {
		strokeLine(screen, a, b, 3, cfg.Debug.PlayerColor)
	}
	const ringSegments = 12
	for i := 0; i < ringSegments; i++ {
		a := feet.Add(ringPoint(i, ringSegments))
		b := feet.Add(ringPoint(i+1, ringSegments))
		if sa, sb, ok := v.segment(a, b); ok {
			strokeLine(screen, sa, sb, 1, cfg.Debug.PlayerColor)
		}
	}

	chest := feet.Add(gamemath.Up.Mul(bodyHeight * 0.6))
	facing := chest.Add(gamemath.ForwardOf(pose.Rotation).Mul(facingLen))
	if a, b, ok := v.segment(chest, facing); ok {
		strokeLine(screen, a, b, 2, cfg.Debug.CameraColor)
	}

	if loco.HasAim {
		drawAim(screen, v, loco.Aim)
	}
}

func ringPoint(i, n int) mgl64.Vec3 {
	q := mgl64.QuatRotate(2*math.Pi*float64(i)/float64(n), gamemath.Up)
	return q.Rotate(gamemath.Forward.Mul(bodyRadius))
}

func drawAim(screen *ebiten.Image, v view, aim mgl64.Vec3) {
	const arm = 0.25
	for _, d := range []mgl64.Vec3{{arm, 0, 0}, {0, 0, arm}} {
		if a, b, ok := v.segment(aim.Sub(d), aim.Add(d)); ok {
			strokeLine(screen, a, b, 2, cfg.Debug.ProbeColor)
		}
	}
}
