package systems

import (
	"log"

	"github.com/automoto/ballpit/components"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause handles the pause toggle, single-stepping, level reset and
// the debug overlay toggle. Runs after UpdateInput, before UpdatePhysics.
func UpdatePause(ecs *ecs.ECS) {
	entry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	input := components.Input.Get(entry)
	pause := components.Pause.Get(entry)

	if input.Action(components.ActionPause).JustPressed {
		pause.IsPaused = !pause.IsPaused
	}
	if pause.IsPaused && input.Action(components.ActionStep).JustPressed {
		pause.StepOnce = true
	}

	if input.Action(components.ActionReset).JustPressed {
		level := components.Level.Get(entry)
		level.Reset()
		components.Physics.Get(entry).Stepper.ResetStats()
		log.Printf("[level] %s reset", level.Name)
	}

	if input.Action(components.ActionDebug).JustPressed {
		dbg := components.Debug.Get(entry)
		dbg.Enabled = !dbg.Enabled
	}
}
