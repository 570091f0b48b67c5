package systems

import (
	"github.com/automoto/ballpit/components"
	"github.com/automoto/ballpit/physics"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls the keyboard and gamepads into the Input component and
// derives this frame's player intent. Must run before UpdatePause and
// UpdatePhysics.
func UpdateInput(ecs *ecs.ECS) {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		return
	}
	input := components.Input.Get(entry)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [components.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range components.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
				}
			}
		}
	}

	if entry.HasComponent(components.Physics) {
		components.Physics.Get(entry).Intent = IntentFromInput(input)
	}
}

// IntentFromInput maps held actions to a player intent. Opposite
// directions cancel out.
func IntentFromInput(input *components.InputData) physics.Intent {
	var in physics.Intent
	if input.Action(components.ActionMoveLeft).Pressed {
		in.Move--
	}
	if input.Action(components.ActionMoveRight).Pressed {
		in.Move++
	}
	in.Jump = input.Action(components.ActionJump).Pressed
	return in
}
