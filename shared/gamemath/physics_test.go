package gamemath

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestSmoothDamp(t *testing.T) {
	cases := []struct {
		name    string
		current float64
		target  float64
		dt      float64
		steps   int
	}{
		{"rising", 0, 1, 1.0 / 60, 120},
		{"falling", 5, -2, 1.0 / 30, 90},
		{"large_step", 0, 10, 0.5, 20},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			v := 0.0
			x := c.current
			for i := 0; i < c.steps; i++ {
				prev := x
				x = SmoothDamp(x, c.target, &v, 0.1, c.dt)
				if math.Abs(c.target-x) > math.Abs(c.target-prev)+1e-12 {
					t.Fatalf("step %d moved away from target: %v -> %v", i, prev, x)
				}
				if (c.target-c.current > 0 && x > c.target) || (c.target-c.current < 0 && x < c.target) {
					t.Fatalf("step %d overshot target %v: %v", i, c.target, x)
				}
			}
			if math.Abs(x-c.target) > 1e-3 {
				t.Fatalf("expected to settle near %v, got %v", c.target, x)
			}
		})
	}
}

func TestSmoothDampZeroDelta(t *testing.T) {
	v := 3.0
	got := SmoothDamp(2, 7, &v, 0.2, 0)
	if got != 2 {
		t.Fatalf("expected zero dt to keep current, got %v", got)
	}
	if v != 3 {
		t.Fatalf("expected zero dt to keep velocity, got %v", v)
	}

	vel := mgl64.Vec3{1, 2, 3}
	pos := SmoothDampVec3(mgl64.Vec3{1, 1, 1}, mgl64.Vec3{4, 4, 4}, &vel, 0.2, 0)
	if pos != (mgl64.Vec3{1, 1, 1}) {
		t.Fatalf("expected zero dt to keep position, got %v", pos)
	}
}

func TestSmoothDampVec3NoOvershoot(t *testing.T) {
	target := mgl64.Vec3{10, 0, -4}
	pos := mgl64.Vec3{}
	vel := mgl64.Vec3{}
	start := target.Sub(pos).Len()
	for i := 0; i < 600; i++ {
		pos = SmoothDampVec3(pos, target, &vel, 0.125, 1.0/60)
		if target.Sub(pos).Len() > start+1e-9 {
			t.Fatalf("step %d left the approach path: %v", i, pos)
		}
	}
	if !vecNear(pos, target, 1e-6) {
		t.Fatalf("expected to settle on %v, got %v", target, pos)
	}
}

func TestExpApproach(t *testing.T) {
	cases := []struct {
		name string
		rate float64
		dt   float64
		want mgl64.Vec3
	}{
		{"half", 5, 0.1, mgl64.Vec3{5, 0, 0}},
		{"clamped_full", 50, 0.1, mgl64.Vec3{10, 0, 0}},
		{"zero_dt", 5, 0, mgl64.Vec3{0, 0, 0}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := ExpApproach(mgl64.Vec3{}, mgl64.Vec3{10, 0, 0}, c.rate, c.dt)
			if !vecNear(got, c.want, 1e-9) {
				t.Fatalf("expected %v, got %v", c.want, got)
			}
		})
	}
}

func TestClampMagnitude(t *testing.T) {
	got := ClampMagnitude(mgl64.Vec2{1, 1}, 1)
	if math.Abs(got.Len()-1) > 1e-12 {
		t.Fatalf("expected unit length, got %v", got.Len())
	}
	if math.Abs(got[0]-got[1]) > 1e-12 {
		t.Fatalf("expected direction preserved, got %v", got)
	}
	short := mgl64.Vec2{0.3, 0.4}
	if ClampMagnitude(short, 1) != short {
		t.Fatalf("expected short vector untouched")
	}
}
