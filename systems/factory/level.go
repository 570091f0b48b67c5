package factory

import (
	"log"

	"github.com/automoto/ballpit/archetypes"
	"github.com/automoto/ballpit/components"
	"github.com/automoto/ballpit/physics"
	"github.com/automoto/ballpit/world"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel spawns the level entity for w and one entity per body. The
// world is cloned so a reset can restore the starting layout.
func CreateLevel(ecs *ecs.ECS, name string, w *world.World, tps int) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)

	findings := world.Lint(w)
	for _, f := range findings {
		log.Printf("[level] %s: %s", name, f)
	}

	components.Level.SetValue(level, components.LevelData{
		Name:     name,
		World:    w.Clone(),
		Initial:  w,
		Findings: findings,
	})
	components.Physics.SetValue(level, components.PhysicsData{
		Stepper: physics.NewStepper(physics.DefaultTuning()),
		DT:      1 / float64(tps),
	})

	for i := range w.Platforms {
		CreatePlatform(ecs, i)
	}
	for i := range w.Balls {
		CreateBall(ecs, i)
	}
	CreatePlayer(ecs)

	return level
}
