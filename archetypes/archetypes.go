package archetypes

import (
	"github.com/automoto/ballpit/components"
	"github.com/automoto/ballpit/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	// Level carries the simulation itself; there is exactly one.
	Level = newArchetype(
		components.Level,
		components.Physics,
		components.Pause,
		components.Input,
		components.Debug,
	)
	Platform = newArchetype(
		tags.Platform,
		components.Object,
	)
	Ball = newArchetype(
		tags.Ball,
		components.Object,
	)
	Player = newArchetype(
		tags.Player,
		components.SquashStretch,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		components.LayerWorld,
		append(a.components, cs...)...,
	))
	return e
}
