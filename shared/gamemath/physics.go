package gamemath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// minSmoothTime keeps the damping frequency finite when a zero smoothing time is configured.
const minSmoothTime = 1e-4

// SmoothDamp moves current toward target with a critically damped spring.
// velocity is the caller-owned spring state and is updated in place.
// A zero dt returns current unchanged.
func SmoothDamp(current, target float64, velocity *float64, smoothTime, dt float64) float64 {
	smoothTime = math.Max(minSmoothTime, smoothTime)
	omega := 2 / smoothTime
	x := omega * dt
	decay := 1 / (1 + x + 0.48*x*x + 0.235*x*x*x)

	change := current - target
	temp := (*velocity + omega*change) * dt
	*velocity = (*velocity - omega*temp) * decay
	out := target + (change+temp)*decay

	// Never pass the target.
	if (target-current > 0) == (out > target) {
		out = target
		*velocity = 0
	}
	return out
}

// SmoothDampVec2 damps each component independently.
func SmoothDampVec2(current, target mgl64.Vec2, velocity *mgl64.Vec2, smoothTime, dt float64) mgl64.Vec2 {
	return mgl64.Vec2{
		SmoothDamp(current[0], target[0], &velocity[0], smoothTime, dt),
		SmoothDamp(current[1], target[1], &velocity[1], smoothTime, dt),
	}
}

// SmoothDampVec3 damps a point toward target as a single spring, so the
// overshoot guard is evaluated along the direction of travel.
func SmoothDampVec3(current, target mgl64.Vec3, velocity *mgl64.Vec3, smoothTime, dt float64) mgl64.Vec3 {
	smoothTime = math.Max(minSmoothTime, smoothTime)
	omega := 2 / smoothTime
	x := omega * dt
	decay := 1 / (1 + x + 0.48*x*x + 0.235*x*x*x)

	change := current.Sub(target)
	temp := velocity.Add(change.Mul(omega)).Mul(dt)
	*velocity = velocity.Sub(temp.Mul(omega)).Mul(decay)
	out := target.Add(change.Add(temp).Mul(decay))

	if target.Sub(current).Dot(out.Sub(target)) > 0 {
		out = target
		*velocity = mgl64.Vec3{}
	}
	return out
}

// ExpApproach moves current toward target by the fraction rate*dt, clamped to [0, 1].
// Convergence is exponential and never exact in a finite number of steps.
func ExpApproach(current, target mgl64.Vec3, rate, dt float64) mgl64.Vec3 {
	t := mgl64.Clamp(rate*dt, 0, 1)
	return current.Add(target.Sub(current).Mul(t))
}

// ClampMagnitude shortens v to max while preserving its direction.
func ClampMagnitude(v mgl64.Vec2, max float64) mgl64.Vec2 {
	if l := v.Len(); l > max && l > 0 {
		return v.Mul(max / l)
	}
	return v
}

// Lerp3 interpolates between a and b without clamping t.
func Lerp3(a, b mgl64.Vec3, t float64) mgl64.Vec3 {
	return a.Add(b.Sub(a).Mul(t))
}
