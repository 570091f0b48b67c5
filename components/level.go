package components

import (
	"github.com/automoto/ballpit/world"
	"github.com/yohamta/donburi"
)

// LevelData holds the live world and a pristine copy for resets.
type LevelData struct {
	Name     string
	World    *world.World
	Initial  *world.World
	Findings []world.Finding // lint results for Initial
}

// Reset restores the live world to its initial state.
func (l *LevelData) Reset() {
	l.World = l.Initial.Clone()
}

var Level = donburi.NewComponentType[LevelData]()
