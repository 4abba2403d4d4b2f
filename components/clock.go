package components

import "github.com/yohamta/donburi"

type ClockData struct {
	FixedDelta float64 // seconds per simulation tick
	FrameDelta float64 // clamped seconds since the last rendered frame
	Tick       uint64
	Elapsed    float64 // simulated seconds
}

var Clock = donburi.NewComponentType[ClockData]()
