package systems

import (
	"github.com/automoto/ballpit/components"
	cfg "github.com/automoto/ballpit/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSquash starts a landing squash when the player touches down and
// advances any running one. Runs after UpdatePhysics.
func UpdateSquash(ecs *ecs.ECS) {
	entry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(entry)
	phys := components.Physics.Get(entry)
	paused := components.Pause.Get(entry).IsPaused
	grounded := level.World.Player.OnGround

	components.SquashStretch.Each(ecs.World, func(e *donburi.Entry) {
		s := components.SquashStretch.Get(e)
		if paused {
			return
		}
		if grounded && !s.WasGrounded {
			s.Land(
				float32(cfg.SquashStretch.LandScaleX),
				float32(cfg.SquashStretch.LandScaleY),
				cfg.SquashStretch.Duration,
			)
		}
		s.WasGrounded = grounded
		s.Update(float32(phys.DT))
	})
}
