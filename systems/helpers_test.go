package systems

import (
	"math"
	"testing"

	"github.com/automoto/thirdperson/archetypes"
	"github.com/automoto/thirdperson/components"
	cfg "github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const testDT = 1.0 / 60

// fakeInput is an InputSource driven by the test.
type fakeInput struct {
	held    map[cfg.ActionID]bool
	pointer mgl64.Vec2
}

func newFakeInput(held ...cfg.ActionID) *fakeInput {
	f := &fakeInput{held: make(map[cfg.ActionID]bool)}
	for _, a := range held {
		f.held[a] = true
	}
	return f
}

func (f *fakeInput) Pressed(action cfg.ActionID) bool { return f.held[action] }

func (f *fakeInput) CursorPosition() mgl64.Vec2 { return f.pointer }

// newTestWorld returns an empty world with a session whose clock ticks at
// testDT. Config globals are restored when the test ends.
func newTestWorld(t *testing.T) *ecs.ECS {
	t.Helper()
	character, camera, probe, action, c := cfg.Character, cfg.Camera, cfg.Probe, cfg.Action, *cfg.C
	store := settingsStore
	t.Cleanup(func() {
		cfg.Character, cfg.Camera, cfg.Probe, cfg.Action, *cfg.C = character, camera, probe, action, c
		settingsStore = store
	})

	e := ecs.NewECS(donburi.NewWorld())
	session := archetypes.Session.Spawn(e)
	components.Clock.Get(session).FixedDelta = testDT
	return e
}

func spawnPlayer(e *ecs.ECS, pos mgl64.Vec3) *donburi.Entry {
	player := archetypes.Player.Spawn(e)
	components.Transform.Get(player).Position = pos
	components.Player.Get(player).Spawn = pos
	return player
}

// spawnCamera creates a camera snapped to target, or an unattached one when
// target is nil.
func spawnCamera(e *ecs.ECS, target *donburi.Entry) *donburi.Entry {
	camera := archetypes.Camera.Spawn(e)
	cam := components.Camera.Get(camera)
	cam.Zoom.Base = cfg.Camera.BaseOffset
	cam.Zoom.Current = cfg.Camera.BaseOffset
	cam.Zoom.Target = cfg.Camera.BaseOffset
	components.Projection.SetValue(camera, components.ProjectionData{
		Projection: gamemath.Projection{
			FovY:   cfg.Camera.FovY,
			Near:   cfg.Camera.Near,
			Far:    cfg.Camera.Far,
			Width:  cfg.C.Width,
			Height: cfg.C.Height,
		},
	})
	if target != nil {
		SetFollowTarget(camera, target)
		SnapToTarget(e, camera)
	}
	return camera
}

func spawnGround(e *ecs.ECS, data *components.GroundData) *donburi.Entry {
	ground := archetypes.Ground.Spawn(e)
	components.Ground.Set(ground, data)
	return ground
}

func runTicks(e *ecs.ECS, n int, steps ...ecs.System) {
	for i := 0; i < n; i++ {
		for _, step := range steps {
			step(e)
		}
	}
}

func vecNear(a, b mgl64.Vec3, tol float64) bool {
	return a.Sub(b).Len() <= tol
}

func quatNear(a, b mgl64.Quat, tol float64) bool {
	return math.Abs(a.Dot(b)) >= 1-tol
}
