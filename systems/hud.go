package systems

import (
	"fmt"

	"github.com/automoto/ballpit/components"
	cfg "github.com/automoto/ballpit/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/yohamta/donburi/ecs"
)

const hudMargin = 10

// DrawHUD prints the level name, the stepper's counters and the controls
// in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowHUD {
		return
	}
	entry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(entry)
	stats := components.Physics.Get(entry).Stepper.Stats()
	p := level.World.Player

	status := "running"
	if components.Pause.Get(entry).IsPaused {
		status = "paused (N: step)"
	}

	msg := fmt.Sprintf("%s  %s  TPS %.0f\n%s\nplayer (%.1f, %.1f) vy %.1f ground %t\nA/D move  Space jump  P pause  R reset  F3 debug",
		level.Name, status, ebiten.ActualTPS(),
		stats,
		p.Pos.X, p.Pos.Y, p.Vel.Y, p.OnGround)
	ebitenutil.DebugPrintAt(screen, msg, hudMargin, hudMargin)
}
