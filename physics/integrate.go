package physics

import "github.com/automoto/ballpit/world"

// integratePlayer applies gravity then moves the player with the updated
// velocity (semi-implicit Euler). No collision awareness.
func (s *Stepper) integratePlayer(p *world.Player, dt float64) {
	p.Vel.Y += s.Tuning.PlayerGravity * dt
	p.Pos = p.Pos.Add(p.Vel.Scale(dt))
}

func (s *Stepper) integrateBalls(balls []world.Ball, dt float64) {
	for i := range balls {
		b := &balls[i]
		b.Vel.Y += s.Tuning.BallGravity * dt
		b.Pos = b.Pos.Add(b.Vel.Scale(dt))
	}
}
