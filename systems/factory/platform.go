package factory

import (
	"github.com/automoto/ballpit/archetypes"
	"github.com/automoto/ballpit/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlatform(ecs *ecs.ECS, index int) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)
	components.Object.SetValue(platform, components.ObjectData{Index: index})
	return platform
}

func CreateBall(ecs *ecs.ECS, index int) *donburi.Entry {
	ball := archetypes.Ball.Spawn(ecs)
	components.Object.SetValue(ball, components.ObjectData{Index: index})
	return ball
}
