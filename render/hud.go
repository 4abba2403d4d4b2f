package render

import (
	"fmt"
	"image/color"

	"github.com/automoto/thirdperson/components"
	cfg "github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/fonts"
	"github.com/automoto/thirdperson/systems"
	"github.com/automoto/thirdperson/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin     = 8
	hudLineHeight = 14

	minimapWidth  = 140
	minimapHeight = 105
)

// raiseHandFlashFrames is how long the HUD marks a RaiseHand pulse.
const raiseHandFlashFrames = 30

var raiseHandFlash int

const controlsHint = "WASD move  Shift walk  Space raise hand  R respawn  Tab settings  F1 debug"

// DrawHUD prints camera and character state, and the minimap in debug mode.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	lines := statusLines(e)
	animLine, hasAnim := animatorLine(e)
	if cfg.Debug.Enabled {
		lines = append(lines, debugLines(e)...)
		if hasAnim {
			lines = append(lines, animLine)
		}
		drawMinimap(e, screen)
	}

	if !fonts.Loaded(fonts.Mono) {
		// Fonts are optional; fall back to the debug printer
		for i, line := range lines {
			ebitenutil.DebugPrintAt(screen, line, hudMargin, hudMargin+i*hudLineHeight)
		}
		return
	}

	face := fonts.Mono.Get()
	for i, line := range lines {
		text.Draw(screen, line, face, hudMargin, hudMargin+(i+1)*hudLineHeight, cfg.Debug.TextColor)
	}
	if fonts.Loaded(fonts.MonoSmall) {
		text.Draw(screen, controlsHint, fonts.MonoSmall.Get(), hudMargin, screen.Bounds().Dy()-hudMargin, cfg.Debug.TextColor)
	}
}

func statusLines(e *ecs.ECS) []string {
	lookAt := "off"
	if cfg.Camera.LookAt {
		lookAt = "on"
	}
	lines := []string{
		fmt.Sprintf("camera %s  look-at %s", cfg.Camera.UpdateMode, lookAt),
	}
	if camera, ok := tags.Camera.First(e.World); ok {
		z := components.Camera.Get(camera).Zoom
		zoom := z.Mode.String()
		if z.Mode == components.ZoomTemporary {
			zoom += "/" + z.Phase.String()
		}
		lines = append(lines, fmt.Sprintf("zoom %s  offset (%.2f, %.2f, %.2f)", zoom, z.Current[0], z.Current[1], z.Current[2]))
	}
	return lines
}

func debugLines(e *ecs.ECS) []string {
	lines := []string{fmt.Sprintf("tps %.1f  fps %.1f", ebiten.ActualTPS(), ebiten.ActualFPS())}
	player, ok := tags.Player.First(e.World)
	if !ok {
		return lines
	}
	p := components.Transform.Get(player).Position
	loco := components.Locomotion.Get(player)
	lines = append(lines,
		fmt.Sprintf("pos (%.2f, %.2f, %.2f)  vy %.2f", p[0], p[1], p[2], loco.VerticalVelocity),
		fmt.Sprintf("grounded %v  running %v", loco.IsGrounded, loco.IsRunning),
	)
	return lines
}

// animatorLine drains the player's animator every frame so trigger pulses
// never pile up, whether or not the debug HUD is showing.
func animatorLine(e *ecs.ECS) (string, bool) {
	player, ok := tags.Player.First(e.World)
	if !ok || !player.HasComponent(components.Animator) {
		return "", false
	}
	anim := systems.DrainAnimator(components.Animator.Get(player))
	if anim.RaiseHand {
		raiseHandFlash = raiseHandFlashFrames
	}
	line := fmt.Sprintf("%s %.2f  %s %.2f  %s %.2f",
		cfg.Animator.BlendX, anim.X, cfg.Animator.BlendY, anim.Y, cfg.Animator.Speed, anim.Speed)
	if raiseHandFlash > 0 {
		raiseHandFlash--
		line += "  " + cfg.Animator.RaiseHand + "!"
	}
	return line, true
}

// drawMinimap draws a top-down view of the arena in the top-right corner.
// World +Z points up on the map and +X left, matching the follow view.
func drawMinimap(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Level.First(e.World)
	if !ok || components.Level.Get(entry).Arena == nil {
		return
	}
	ext := components.Level.Get(entry).Arena.Extent
	spanX, spanZ := ext.MaxX-ext.MinX, ext.MaxZ-ext.MinZ
	if spanX <= 0 || spanZ <= 0 {
		return
	}
	scale := min(minimapWidth/spanX, minimapHeight/spanZ)

	left := float64(screen.Bounds().Dx()-hudMargin) - spanX*scale
	top := float64(hudMargin)
	toMap := func(x, z float64) (float32, float32) {
		return float32(left + (ext.MaxX-x)*scale), float32(top + (ext.MaxZ-z)*scale)
	}

	vector.FillRect(screen, float32(left), float32(top), float32(spanX*scale), float32(spanZ*scale), color.RGBA{A: 160}, false)
	for _, p := range groundPatches(e) {
		x0, y0 := toMap(p.max[0], p.max[1])
		x1, y1 := toMap(p.min[0], p.min[1])
		vector.FillRect(screen, x0, y0, x1-x0, y1-y0, p.clr, false)
	}
	for _, x := range []float64{cfg.Character.MinX, cfg.Character.MaxX} {
		x0, y0 := toMap(x, ext.MaxZ)
		_, y1 := toMap(x, ext.MinZ)
		vector.StrokeLine(screen, x0, y0, x0, y1, 1, cfg.Debug.BoundsColor, false)
	}

	if camera, ok := tags.Camera.First(e.World); ok {
		c := components.Transform.Get(camera).Position
		cx, cy := toMap(c[0], c[2])
		if player, ok := tags.Player.First(e.World); ok {
			p := components.Transform.Get(player).Position
			px, py := toMap(p[0], p[2])
			vector.StrokeLine(screen, cx, cy, px, py, 1, cfg.Debug.CameraColor, true)
		}
		vector.DrawFilledCircle(screen, cx, cy, 2.5, cfg.Debug.CameraColor, true) //nolint:staticcheck
	}
	if player, ok := tags.Player.First(e.World); ok {
		p := components.Transform.Get(player).Position
		px, py := toMap(p[0], p[2])
		vector.DrawFilledCircle(screen, px, py, 3, cfg.Debug.PlayerColor, true) //nolint:staticcheck
	}
	vector.StrokeRect(screen, float32(left), float32(top), float32(spanX*scale), float32(spanZ*scale), 1, cfg.Debug.TextColor, false)
}
