package gamemath

import (
	"errors"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func testProjection() Projection {
	return Projection{FovY: mgl64.DegToRad(60), Near: 0.3, Far: 1000, Width: 640, Height: 360}
}

func TestScreenRayRoundTrip(t *testing.T) {
	eye := mgl64.Vec3{0, 10, -8}
	orientation, ok := LookRotation(mgl64.Vec3{0, 0, 0}.Sub(eye), Up)
	if !ok {
		t.Fatalf("expected a valid camera orientation")
	}
	proj := testProjection()

	points := []mgl64.Vec3{
		{0, 0, 0},
		{2, 0, 1},
		{-3, 0, 4},
	}
	for _, p := range points {
		screen, ok := WorldToScreen(p, eye, orientation, proj)
		if !ok {
			t.Fatalf("expected %v to be in front of the camera", p)
		}
		ray, err := ScreenRay(screen, eye, orientation, proj)
		if err != nil {
			t.Fatalf("ScreenRay: %v", err)
		}
		dist, ok := IntersectHorizontalPlane(ray.Origin, ray.Dir, 0)
		if !ok {
			t.Fatalf("expected the ray to reach the ground")
		}
		if hit := ray.At(dist); !vecNear(hit, p, 1e-6) {
			t.Fatalf("expected round trip to %v, got %v", p, hit)
		}
	}
}

func TestScreenRayCenterLooksForward(t *testing.T) {
	eye := mgl64.Vec3{1, 2, 3}
	orientation, _ := LookRotation(mgl64.Vec3{0, 0, 1}, Up)
	proj := testProjection()
	ray, err := ScreenRay(mgl64.Vec2{320, 180}, eye, orientation, proj)
	if err != nil {
		t.Fatalf("ScreenRay: %v", err)
	}
	if !vecNear(ray.Dir, mgl64.Vec3{0, 0, 1}, 1e-7) {
		t.Fatalf("expected center ray along forward, got %v", ray.Dir)
	}
	if math.Abs(ray.Origin[2]-(3+proj.Near)) > 1e-6 {
		t.Fatalf("expected origin on the near plane, got %v", ray.Origin)
	}
}

func TestScreenRayEmptyViewport(t *testing.T) {
	_, err := ScreenRay(mgl64.Vec2{}, mgl64.Vec3{}, mgl64.QuatIdent(), Projection{FovY: 1, Near: 0.1, Far: 10})
	if !errors.Is(err, ErrNoProjection) {
		t.Fatalf("expected ErrNoProjection, got %v", err)
	}
}

func TestIntersectHorizontalPlane(t *testing.T) {
	cases := []struct {
		name   string
		origin mgl64.Vec3
		dir    mgl64.Vec3
		height float64
		want   float64
		hit    bool
	}{
		{"down", mgl64.Vec3{0, 10, 0}, mgl64.Vec3{0, -1, 0}, 0, 10, true},
		{"raised_plane", mgl64.Vec3{0, 10, 0}, mgl64.Vec3{0, -1, 0}, 4, 6, true},
		{"parallel", mgl64.Vec3{0, 10, 0}, mgl64.Vec3{1, 0, 0}, 0, 0, false},
		{"away", mgl64.Vec3{0, 10, 0}, mgl64.Vec3{0, 1, 0}, 0, 0, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := IntersectHorizontalPlane(c.origin, c.dir, c.height)
			if ok != c.hit {
				t.Fatalf("expected hit=%v, got %v", c.hit, ok)
			}
			if ok && math.Abs(got-c.want) > 1e-12 {
				t.Fatalf("expected distance %v, got %v", c.want, got)
			}
		})
	}
}

func TestProjectPolygon(t *testing.T) {
	eye := mgl64.Vec3{0, 10, -8}
	orientation, _ := LookRotation(mgl64.Vec3{0, 0, 0}.Sub(eye), Up)
	proj := testProjection()

	t.Run("visible quad matches point projection", func(t *testing.T) {
		quad := []mgl64.Vec3{{-1, 0, -1}, {1, 0, -1}, {1, 0, 1}, {-1, 0, 1}}
		got := ProjectPolygon(quad, eye, orientation, proj)
		if len(got) != len(quad) {
			t.Fatalf("expected %d vertices, got %d", len(quad), len(got))
		}
		for i, p := range quad {
			want, _ := WorldToScreen(p, eye, orientation, proj)
			if got[i].Sub(want).Len() > 1e-6 {
				t.Fatalf("vertex %d: expected %v, got %v", i, want, got[i])
			}
		}
	})

	t.Run("straddling the near plane is clipped", func(t *testing.T) {
		// Extends far behind the camera
		quad := []mgl64.Vec3{{-5, 0, -40}, {5, 0, -40}, {5, 0, 5}, {-5, 0, 5}}
		got := ProjectPolygon(quad, eye, orientation, proj)
		if len(got) < 3 {
			t.Fatalf("expected a clipped polygon, got %v", got)
		}
		for _, p := range got {
			if math.IsNaN(p[0]) || math.IsInf(p[0], 0) || math.IsNaN(p[1]) || math.IsInf(p[1], 0) {
				t.Fatalf("expected finite vertices, got %v", got)
			}
		}
	})

	t.Run("behind the camera", func(t *testing.T) {
		quad := []mgl64.Vec3{{-1, 10, -20}, {1, 10, -20}, {1, 12, -20}, {-1, 12, -20}}
		if got := ProjectPolygon(quad, eye, orientation, proj); got != nil {
			t.Fatalf("expected nil, got %v", got)
		}
	})
}

func TestProjectSegment(t *testing.T) {
	eye := mgl64.Vec3{0, 10, -8}
	orientation, _ := LookRotation(mgl64.Vec3{0, 0, 0}.Sub(eye), Up)
	proj := testProjection()

	a, b := mgl64.Vec3{0, 0, 0}, mgl64.Vec3{2, 0, 3}
	sa, sb, ok := ProjectSegment(a, b, eye, orientation, proj)
	if !ok {
		t.Fatalf("expected a visible segment")
	}
	wa, _ := WorldToScreen(a, eye, orientation, proj)
	wb, _ := WorldToScreen(b, eye, orientation, proj)
	if sa.Sub(wa).Len() > 1e-6 || sb.Sub(wb).Len() > 1e-6 {
		t.Fatalf("expected %v-%v, got %v-%v", wa, wb, sa, sb)
	}

	if _, _, ok := ProjectSegment(mgl64.Vec3{0, 10, -20}, mgl64.Vec3{1, 10, -30}, eye, orientation, proj); ok {
		t.Fatalf("expected a segment behind the camera to be dropped")
	}
}
