package components

import (
	"github.com/automoto/thirdperson/shared/gamemath"
	"github.com/yohamta/donburi"
)

type ProjectionData struct {
	gamemath.Projection
}

var Projection = donburi.NewComponentType[ProjectionData]()
