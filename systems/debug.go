package systems

import (
	"image/color"

	"github.com/automoto/ballpit/components"
	"github.com/automoto/ballpit/world"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var (
	debugVelocityColor = color.RGBA{0, 255, 0, 255}
	debugFindingColor  = color.RGBA{255, 200, 0, 255}
)

// velocityScale turns units/second into drawn line length.
const velocityScale = 0.1

// DrawDebug draws velocity vectors for every body and outlines the
// platforms named by lint findings.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Level.First(ecs.World)
	if !ok || !components.Debug.Get(entry).Enabled {
		return
	}
	level := components.Level.Get(entry)
	w := level.World

	for _, b := range w.Balls {
		drawVelocity(screen, w, b.Pos.X, b.Pos.Y, b.Vel.X, b.Vel.Y)
	}
	c := w.Player.Center()
	drawVelocity(screen, w, c.X, c.Y, w.Player.Vel.X, w.Player.Vel.Y)

	for _, f := range level.Findings {
		switch f.Kind {
		case world.PlatformOverlap:
			outlinePlatform(screen, w, f.A)
			outlinePlatform(screen, w, f.B)
		case world.BallInsidePlatform:
			outlinePlatform(screen, w, f.B)
		default:
			outlinePlatform(screen, w, f.A)
		}
	}
}

func drawVelocity(screen *ebiten.Image, w *world.World, x, y, vx, vy float64) {
	x0, y0 := float32(x), screenY(w, y, 0)
	x1, y1 := float32(x+vx*velocityScale), screenY(w, y+vy*velocityScale, 0)
	vector.StrokeLine(screen, x0, y0, x1, y1, 1, debugVelocityColor, true)
}

func outlinePlatform(screen *ebiten.Image, w *world.World, idx int) {
	if idx < 0 || idx >= len(w.Platforms) {
		return
	}
	p := w.Platforms[idx]
	vector.StrokeRect(screen,
		float32(p.Pos.X), screenY(w, p.Pos.Y, p.Size.Y),
		float32(p.Size.X), float32(p.Size.Y),
		2, debugFindingColor, false)
}
