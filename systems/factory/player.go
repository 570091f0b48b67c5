package factory

import (
	"github.com/automoto/ballpit/archetypes"
	"github.com/automoto/ballpit/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlayer(ecs *ecs.ECS) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)
	components.SquashStretch.SetValue(player, components.NewSquashStretch())
	return player
}
