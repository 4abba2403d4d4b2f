package components

import "github.com/yohamta/donburi"

// CursorData is the process-wide pointer visibility. Only the cursor systems
// change it.
type CursorData struct {
	Visible bool
	Owned   bool // the control scene currently owns the actor
}

var Cursor = donburi.NewComponentType[CursorData](CursorData{Visible: true})
