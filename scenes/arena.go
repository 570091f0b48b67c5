package scenes

import (
	"sync"

	"github.com/automoto/ballpit/components"
	cfg "github.com/automoto/ballpit/config"
	"github.com/automoto/ballpit/systems"
	"github.com/automoto/ballpit/systems/factory"
	"github.com/automoto/ballpit/world"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ArenaScene runs one world: input, one physics step per frame, then draw.
type ArenaScene struct {
	ecs   *ecs.ECS
	name  string
	world *world.World
	debug bool
	once  sync.Once
}

// NewArenaScene creates a scene for w. The ECS is built on the first
// Update so construction stays cheap.
func NewArenaScene(name string, w *world.World, debug bool) *ArenaScene {
	return &ArenaScene{name: name, world: w, debug: debug}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)
	as.ecs.Update()
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(cfg.Viewer.Background)

	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
}

func (as *ArenaScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Order matters: input feeds pause and physics, squash reads the
	// result of the step.
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)
	ecs.AddSystem(systems.UpdatePhysics)
	ecs.AddSystem(systems.UpdateSquash)

	ecs.AddRenderer(components.LayerWorld, systems.DrawLevel)
	ecs.AddRenderer(components.LayerWorld, systems.DrawPlatforms)
	ecs.AddRenderer(components.LayerWorld, systems.DrawBalls)
	ecs.AddRenderer(components.LayerWorld, systems.DrawPlayer)
	ecs.AddRenderer(components.LayerHUD, systems.DrawDebug)
	ecs.AddRenderer(components.LayerHUD, systems.DrawHUD)

	as.ecs = ecs

	level := factory.CreateLevel(ecs, as.name, as.world, cfg.Viewer.TPS)
	components.Debug.Get(level).Enabled = as.debug
}
