package systems

import (
	"github.com/automoto/ballpit/components"
	cfg "github.com/automoto/ballpit/config"
	"github.com/automoto/ballpit/world"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// currentWorld returns the live world, or nil before the level exists.
func currentWorld(ecs *ecs.ECS) *world.World {
	entry, ok := components.Level.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Level.Get(entry).World
}

// screenY converts a world y (up) into a screen row (down) for a shape of
// height h anchored at its bottom.
func screenY(w *world.World, y, h float64) float32 {
	return float32(w.Arena.Height - y - h)
}

func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Viewer.Background)
}
