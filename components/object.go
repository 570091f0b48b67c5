package components

import "github.com/yohamta/donburi"

// ObjectData links an entity to a body in the world. Index points into
// World.Platforms or World.Balls depending on the entity's tag.
type ObjectData struct {
	Index int
}

var Object = donburi.NewComponentType[ObjectData]()
