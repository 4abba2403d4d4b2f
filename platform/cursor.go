package platform

import (
	"github.com/automoto/thirdperson/components"
	"github.com/hajimehoshi/ebiten/v2"
)

// CursorApplier mirrors the session's cursor state onto the OS pointer. The
// window is only touched when the state changes.
type CursorApplier struct {
	applied bool
	visible bool
}

func (c *CursorApplier) Apply(state components.CursorData) {
	if c.applied && c.visible == state.Visible {
		return
	}
	if state.Visible {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	} else {
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
	}
	c.applied = true
	c.visible = state.Visible
}
