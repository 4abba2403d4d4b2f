package systems

import (
	"github.com/automoto/thirdperson/components"
	"github.com/yohamta/donburi/ecs"
)

// AcquireCursor hides the pointer while the control scene owns the actor.
func AcquireCursor(e *ecs.ECS) {
	c := getOrCreateCursor(e)
	c.Owned = true
	c.Visible = false
}

// ReleaseCursor shows the pointer again on teardown.
func ReleaseCursor(e *ecs.ECS) {
	c := getOrCreateCursor(e)
	c.Owned = false
	c.Visible = true
}

// CursorState returns the current pointer visibility.
func CursorState(e *ecs.ECS) components.CursorData {
	return *getOrCreateCursor(e)
}

func getOrCreateCursor(e *ecs.ECS) *components.CursorData {
	entry, ok := components.Cursor.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Cursor))
	}
	return components.Cursor.Get(entry)
}
