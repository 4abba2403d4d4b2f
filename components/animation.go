package components

import (
	"github.com/yohamta/donburi"
)

// AnimatorData holds the parameters handed to the external animator. Floats
// persist until overwritten; triggers are pulses pending until consumed.
type AnimatorData struct {
	Floats   map[string]float64
	Triggers map[string]int
}

func (a *AnimatorData) SetFloat(name string, v float64) {
	if a.Floats == nil {
		a.Floats = make(map[string]float64)
	}
	a.Floats[name] = v
}

func (a *AnimatorData) Float(name string) float64 {
	return a.Floats[name]
}

func (a *AnimatorData) SetTrigger(name string) {
	if a.Triggers == nil {
		a.Triggers = make(map[string]int)
	}
	a.Triggers[name]++
}

// ConsumeTrigger pops one pending pulse of name.
func (a *AnimatorData) ConsumeTrigger(name string) bool {
	if a.Triggers[name] == 0 {
		return false
	}
	a.Triggers[name]--
	return true
}

var Animator = donburi.NewComponentType[AnimatorData]()
