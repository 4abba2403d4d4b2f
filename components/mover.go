package components

import (
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// MoverData drives the height of one ground patch with a looping tween.
type MoverData struct {
	Object *resolv.Object
	Tween  *gween.Sequence
}

var Mover = donburi.NewComponentType[MoverData]()
