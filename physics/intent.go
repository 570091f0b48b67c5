package physics

import (
	"github.com/automoto/ballpit/shared/gamemath"
	"github.com/automoto/ballpit/world"
)

// Intent is what the input layer wants the player to do this tick.
type Intent struct {
	Move int  // -1 left, 0 none, 1 right
	Jump bool // jump if currently grounded
}

// ApplyIntent moves the player according to in. It must run before Step:
// horizontal movement shifts the position directly (there is no horizontal
// velocity), and a jump sets the upward velocity only while grounded.
// Walking stops at the arena's side walls.
func (s *Stepper) ApplyIntent(w *world.World, in Intent, dt float64) {
	dt = ClampDT(dt, s.Tuning.MaxStepDT)
	p := &w.Player

	if move := gamemath.ClampSpeed(float64(in.Move), 1); move != 0 {
		p.Pos.X += move * s.Tuning.MoveSpeed * dt
		maxX := w.Arena.Width - p.Size.X
		if maxX < 0 {
			maxX = 0
		}
		p.Pos.X = gamemath.ClampFloat(p.Pos.X, 0, maxX)
	}

	if in.Jump && p.OnGround {
		p.Vel.Y = s.Tuning.JumpSpeed
		p.OnGround = false
	}
}
