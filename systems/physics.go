package systems

import (
	"github.com/automoto/ballpit/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics applies the sampled intent and advances the world by one
// fixed step. Rendering only reads the world after this returns.
func UpdatePhysics(ecs *ecs.ECS) {
	entry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	pause := components.Pause.Get(entry)
	if pause.IsPaused && !pause.StepOnce {
		return
	}
	pause.StepOnce = false

	level := components.Level.Get(entry)
	phys := components.Physics.Get(entry)
	phys.Stepper.ApplyIntent(level.World, phys.Intent, phys.DT)
	phys.Stepper.Step(level.World, phys.DT)
}
