package components

import "github.com/yohamta/donburi"

// PauseData freezes the simulation. StepOnce advances a paused simulation
// by exactly one tick and clears itself.
type PauseData struct {
	IsPaused bool
	StepOnce bool
}

var Pause = donburi.NewComponentType[PauseData]()
