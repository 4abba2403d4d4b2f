package systems

import (
	"math"

	"github.com/automoto/thirdperson/components"
	cfg "github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/shared/gamemath"
	"github.com/automoto/thirdperson/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLocomotion turns this tick's input into character facing, movement,
// gravity and animation parameters, and hands the running flag to the camera.
// Must run AFTER input and BEFORE UpdateCamera in the system order.
func UpdateLocomotion(e *ecs.ECS) {
	dt := FixedDelta(e)
	input := GetInput(e)
	ground, _ := getGround(e)

	camera, hasCamera := tags.Camera.First(e.World)
	if !hasCamera {
		camera = nil
	}

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		running := stepCharacter(e, entry, input, camera, ground, dt)
		if camera != nil {
			SetRunning(camera, running)
		}
	})
}

func stepCharacter(e *ecs.ECS, entry *donburi.Entry, input components.InputSnapshot, camera *donburi.Entry, ground *components.GroundData, dt float64) bool {
	pose := components.Transform.Get(entry)
	loco := components.Locomotion.Get(entry)
	mask := GroundMask()

	updateFacing(e, pose, loco, input.Pointer, camera, mask, dt)

	// Movement
	move := gamemath.ClampMagnitude(input.Move, 1)
	speed, blendScale := cfg.Character.RunSpeed, 1.0
	if input.Walk {
		speed, blendScale = cfg.Character.WalkSpeed, cfg.Character.WalkBlendMultiplier
	}
	loco.IsRunning = (move[0] != 0 || move[1] != 0) && !input.Walk

	loco.AnimBlend = gamemath.SmoothDampVec2(loco.AnimBlend, move.Mul(blendScale), &loco.BlendVelocity, cfg.Character.AnimationSmoothTime, dt)
	loco.AnimSpeed = loco.AnimBlend.Len()

	direction := gamemath.SafeNormalize(gamemath.Forward.Mul(move[1]).Add(gamemath.Right.Mul(move[0])))
	displacement := gamemath.Up.Mul(loco.VerticalVelocity * dt)
	loco.PlanarVelocity = mgl64.Vec2{}
	if direction.Len() > cfg.Character.MoveThreshold {
		displacement = displacement.Add(direction.Mul(speed * dt))
		loco.PlanarVelocity = mgl64.Vec2{direction[0] * speed, direction[2] * speed}
	}
	pose.Position = pose.Position.Add(displacement)

	// Boundary clamp is a position correction only
	pose.Position[0] = mgl64.Clamp(pose.Position[0], cfg.Character.MinX, cfg.Character.MaxX)

	// Ground contact, then gravity
	loco.IsGrounded = false
	if height, ok := GroundHeightAt(ground, pose.Position[0], pose.Position[2], mask); ok {
		if pose.Position[1] < height {
			pose.Position[1] = height
		}
		loco.IsGrounded = loco.VerticalVelocity <= 0 && pose.Position[1]-height <= cfg.Character.GroundSnapDistance
	}
	if loco.IsGrounded {
		loco.VerticalVelocity = cfg.Character.GroundedVerticalVelocity
	} else {
		loco.VerticalVelocity += cfg.Character.Gravity * dt
	}

	if entry.HasComponent(components.Animator) {
		anim := components.Animator.Get(entry)
		anim.SetFloat(cfg.Animator.BlendX, loco.AnimBlend[0])
		anim.SetFloat(cfg.Animator.BlendY, loco.AnimBlend[1])
		anim.SetFloat(cfg.Animator.Speed, loco.AnimSpeed)
	}
	return loco.IsRunning
}

// updateFacing turns the character toward the ground point under the pointer.
// Without a hit the previous facing is kept.
func updateFacing(e *ecs.ECS, pose *components.TransformData, loco *components.LocomotionData, pointer mgl64.Vec2, camera *donburi.Entry, mask []string, dt float64) {
	loco.FacingVelocity = 0
	hit, ok := ProbeGround(e, pointer, camera, cfg.Probe.MaxDistance, mask)
	loco.HasAim = ok
	if !ok {
		return
	}
	loco.Aim = hit

	toward := gamemath.Planar(hit.Sub(pose.Position))
	if toward.LenSqr() <= cfg.Character.FacingThresholdSqr {
		return
	}
	look, ok := gamemath.LookRotation(toward, gamemath.Up)
	if !ok {
		return
	}
	prev := pose.Rotation
	pose.Rotation = gamemath.SlerpToward(pose.Rotation, look, cfg.Character.RotationSpeed, dt)
	if dt > 0 {
		loco.FacingVelocity = quatAngle(prev, pose.Rotation) / dt
	}
}

func quatAngle(a, b mgl64.Quat) float64 {
	d := math.Abs(a.Normalize().Dot(b.Normalize()))
	return 2 * math.Acos(mgl64.Clamp(d, -1, 1))
}

// Teleport moves a character to pos, clears its motion and snaps every camera
// following it.
func Teleport(e *ecs.ECS, entry *donburi.Entry, pos mgl64.Vec3) {
	components.Transform.Get(entry).Position = pos
	loco := components.Locomotion.Get(entry)
	loco.VerticalVelocity = 0
	loco.PlanarVelocity = mgl64.Vec2{}
	loco.IsGrounded = false

	tags.Camera.Each(e.World, func(camera *donburi.Entry) {
		cam := components.Camera.Get(camera)
		if !cam.HasTarget || cam.Target == entry.Entity() {
			SnapToTarget(e, camera)
		}
	})
}
