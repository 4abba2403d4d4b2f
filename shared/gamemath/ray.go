package gamemath

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	ErrNoProjection  = errors.New("gamemath: projection has an empty viewport")
	ErrDegenerateRay = errors.New("gamemath: unprojected ray has no direction")
)

// Projection describes a perspective camera lens and the viewport it renders to.
type Projection struct {
	FovY   float64 // radians
	Near   float64
	Far    float64
	Width  int
	Height int
}

// Matrix returns the perspective projection matrix.
func (p Projection) Matrix() mgl64.Mat4 {
	return mgl64.Perspective(p.FovY, float64(p.Width)/float64(p.Height), p.Near, p.Far)
}

// ViewMatrix returns the view matrix of a camera at eye with the given orientation.
func ViewMatrix(eye mgl64.Vec3, orientation mgl64.Quat) mgl64.Mat4 {
	forward := orientation.Rotate(Forward)
	up := orientation.Rotate(Up)
	return mgl64.LookAtV(eye, eye.Add(forward), up)
}

// Ray is a half-line with a unit direction.
type Ray struct {
	Origin mgl64.Vec3
	Dir    mgl64.Vec3
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float64) mgl64.Vec3 {
	return r.Origin.Add(r.Dir.Mul(t))
}

// ScreenRay converts a screen point (origin top-left, y down) seen by a camera
// at eye with the given orientation into a world-space ray starting on the near plane.
func ScreenRay(screen mgl64.Vec2, eye mgl64.Vec3, orientation mgl64.Quat, proj Projection) (Ray, error) {
	if proj.Width <= 0 || proj.Height <= 0 {
		return Ray{}, ErrNoProjection
	}
	view := ViewMatrix(eye, orientation)
	persp := proj.Matrix()
	winY := float64(proj.Height) - screen[1]

	near, err := mgl64.UnProject(mgl64.Vec3{screen[0], winY, 0}, view, persp, 0, 0, proj.Width, proj.Height)
	if err != nil {
		return Ray{}, fmt.Errorf("unproject near plane: %w", err)
	}
	far, err := mgl64.UnProject(mgl64.Vec3{screen[0], winY, 1}, view, persp, 0, 0, proj.Width, proj.Height)
	if err != nil {
		return Ray{}, fmt.Errorf("unproject far plane: %w", err)
	}

	dir := SafeNormalize(far.Sub(near))
	if dir.LenSqr() == 0 {
		return Ray{}, ErrDegenerateRay
	}
	return Ray{Origin: near, Dir: dir}, nil
}

// WorldToScreen projects a world point into screen coordinates (origin top-left).
// ok is false for points behind the camera.
func WorldToScreen(point, eye mgl64.Vec3, orientation mgl64.Quat, proj Projection) (mgl64.Vec2, bool) {
	if proj.Width <= 0 || proj.Height <= 0 {
		return mgl64.Vec2{}, false
	}
	if orientation.Rotate(Forward).Dot(point.Sub(eye)) <= 0 {
		return mgl64.Vec2{}, false
	}
	win := mgl64.Project(point, ViewMatrix(eye, orientation), proj.Matrix(), 0, 0, proj.Width, proj.Height)
	return mgl64.Vec2{win[0], float64(proj.Height) - win[1]}, true
}

// ProjectPolygon clips a convex world polygon against the near plane and
// returns its outline in screen coordinates. A polygon entirely behind the
// near plane returns nil.
func ProjectPolygon(poly []mgl64.Vec3, eye mgl64.Vec3, orientation mgl64.Quat, proj Projection) []mgl64.Vec2 {
	if proj.Width <= 0 || proj.Height <= 0 || len(poly) < 3 {
		return nil
	}
	view := ViewMatrix(eye, orientation)
	inView := make([]mgl64.Vec3, len(poly))
	for i, p := range poly {
		inView[i] = mgl64.TransformCoordinate(p, view)
	}
	clipped := clipNear(inView, proj.Near, true)
	if len(clipped) < 3 {
		return nil
	}
	return toScreen(clipped, proj)
}

// ProjectSegment clips the segment a-b against the near plane and returns its
// screen endpoints.
func ProjectSegment(a, b, eye mgl64.Vec3, orientation mgl64.Quat, proj Projection) (mgl64.Vec2, mgl64.Vec2, bool) {
	if proj.Width <= 0 || proj.Height <= 0 {
		return mgl64.Vec2{}, mgl64.Vec2{}, false
	}
	view := ViewMatrix(eye, orientation)
	seg := []mgl64.Vec3{mgl64.TransformCoordinate(a, view), mgl64.TransformCoordinate(b, view)}
	clipped := clipNear(seg, proj.Near, false)
	if len(clipped) != 2 {
		return mgl64.Vec2{}, mgl64.Vec2{}, false
	}
	pts := toScreen(clipped, proj)
	return pts[0], pts[1], true
}

// clipNear keeps the part of a view-space polyline in front of the near
// plane. View space looks down -Z.
func clipNear(pts []mgl64.Vec3, near float64, closed bool) []mgl64.Vec3 {
	inside := func(v mgl64.Vec3) bool { return -v[2] >= near }
	edges := len(pts)
	if !closed {
		edges--
	}

	out := make([]mgl64.Vec3, 0, len(pts)+1)
	for i := 0; i < edges; i++ {
		a, b := pts[i], pts[(i+1)%len(pts)]
		aIn, bIn := inside(a), inside(b)
		if aIn {
			out = append(out, a)
		}
		if aIn != bIn {
			t := (-near - a[2]) / (b[2] - a[2])
			out = append(out, a.Add(b.Sub(a).Mul(t)))
		}
		if !closed && i == edges-1 && bIn {
			out = append(out, b)
		}
	}
	return out
}

func toScreen(pts []mgl64.Vec3, proj Projection) []mgl64.Vec2 {
	persp := proj.Matrix()
	w, h := float64(proj.Width), float64(proj.Height)
	out := make([]mgl64.Vec2, len(pts))
	for i, v := range pts {
		c := persp.Mul4x1(v.Vec4(1))
		out[i] = mgl64.Vec2{
			(c[0]/c[3] + 1) / 2 * w,
			(1 - c[1]/c[3]) / 2 * h,
		}
	}
	return out
}
