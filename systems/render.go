package systems

import (
	"github.com/automoto/ballpit/components"
	cfg "github.com/automoto/ballpit/config"
	"github.com/automoto/ballpit/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func DrawPlatforms(ecs *ecs.ECS, screen *ebiten.Image) {
	w := currentWorld(ecs)
	if w == nil {
		return
	}
	tags.Platform.Each(ecs.World, func(e *donburi.Entry) {
		idx := components.Object.Get(e).Index
		if idx >= len(w.Platforms) {
			return
		}
		p := w.Platforms[idx]
		vector.FillRect(screen,
			float32(p.Pos.X), screenY(w, p.Pos.Y, p.Size.Y),
			float32(p.Size.X), float32(p.Size.Y),
			cfg.Viewer.PlatformFill, false)
	})
}

func DrawBalls(ecs *ecs.ECS, screen *ebiten.Image) {
	w := currentWorld(ecs)
	if w == nil {
		return
	}
	tags.Ball.Each(ecs.World, func(e *donburi.Entry) {
		idx := components.Object.Get(e).Index
		if idx >= len(w.Balls) {
			return
		}
		b := w.Balls[idx]
		vector.FillCircle(screen,
			float32(b.Pos.X), screenY(w, b.Pos.Y, 0), float32(b.Radius),
			cfg.Viewer.BallFill, true)
	})
}

// DrawPlayer draws the player box scaled by any running squash, anchored
// at the bottom center so the feet stay on the platform.
func DrawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	w := currentWorld(ecs)
	if w == nil {
		return
	}
	p := w.Player

	scaleX, scaleY := float32(1), float32(1)
	if e, ok := tags.Player.First(ecs.World); ok && e.HasComponent(components.SquashStretch) {
		s := components.SquashStretch.Get(e)
		scaleX, scaleY = s.ScaleX, s.ScaleY
	}

	width := float32(p.Size.X) * scaleX
	height := float32(p.Size.Y) * scaleY
	x := float32(p.Pos.X) + (float32(p.Size.X)-width)/2
	y := screenY(w, p.Pos.Y, 0) - height

	fill := cfg.Viewer.PlayerFill
	if p.OnGround {
		fill = cfg.Viewer.GroundedFill
	}
	vector.FillRect(screen, x, y, width, height, fill, false)
}
