package gamemath

import (
	"github.com/go-gl/mathgl/mgl64"
)

var (
	// Up is the world up axis.
	Up = mgl64.Vec3{0, 1, 0}
	// Forward is the world forward axis; an identity orientation faces it.
	Forward = mgl64.Vec3{0, 0, 1}
	// Right is screen right for a view looking along Forward with Up up.
	// The view is right-handed, so this is -X.
	Right = Forward.Cross(Up)
)

// normalizeEpsilon matches the length below which a vector has no usable direction.
const normalizeEpsilon = 1e-5

// SafeNormalize returns v scaled to unit length, or the zero vector when v is too short.
func SafeNormalize(v mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l < normalizeEpsilon {
		return mgl64.Vec3{}
	}
	return v.Mul(1 / l)
}

// Planar drops the vertical component.
func Planar(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v[0], 0, v[2]}
}

// LookRotation returns the orientation whose forward (+Z) axis points along
// forward with up as close to up as possible. ok is false for a degenerate forward.
func LookRotation(forward, up mgl64.Vec3) (mgl64.Quat, bool) {
	f := SafeNormalize(forward)
	if f.LenSqr() == 0 {
		return mgl64.QuatIdent(), false
	}
	r := SafeNormalize(up.Cross(f))
	if r.LenSqr() == 0 {
		// forward is parallel to up; any perpendicular right axis will do.
		r = SafeNormalize(Forward.Cross(f))
		if r.LenSqr() == 0 {
			r = Right
		}
	}
	u := f.Cross(r)
	m := mgl64.Mat3FromCols(r, u, f)
	return mgl64.Mat4ToQuat(m.Mat4()).Normalize(), true
}

// ForwardOf returns the world direction of an orientation's forward axis.
func ForwardOf(q mgl64.Quat) mgl64.Vec3 {
	return q.Rotate(Forward)
}

// SlerpToward rotates current toward target by the fraction rate*dt, clamped to [0, 1].
func SlerpToward(current, target mgl64.Quat, rate, dt float64) mgl64.Quat {
	t := mgl64.Clamp(rate*dt, 0, 1)
	if t == 0 {
		return current
	}
	return mgl64.QuatSlerp(current, target, t)
}
