package physics

import (
	"log"

	"github.com/automoto/ballpit/shared/gamemath"
	"github.com/automoto/ballpit/world"
)

// resolvePlayerPlatforms lands the player on any platform it fell into.
// A landing needs a downward (or zero) vertical speed and the projected
// next bottom edge still inside the landing band below the platform top.
// The band is LandingTolerance widened by twice this step's fall distance
// (the move already integrated plus the projected one), so a player falling
// faster than LandingTolerance per step still lands instead of sinking
// through. Side and underside overlaps are left alone: only top landings
// are resolved.
func (s *Stepper) resolvePlayerPlatforms(w *world.World, dt float64) {
	p := &w.Player
	for _, platform := range w.Platforms {
		if p.Vel.Y > 0 || !gamemath.AabbOverlap(p.Pos, p.Size, platform.Pos, platform.Size) {
			continue
		}

		top := platform.Top()
		nextBottom := p.Bottom() + p.Vel.Y*dt
		band := s.Tuning.LandingTolerance - 2*p.Vel.Y*dt
		if nextBottom < top-band {
			continue
		}

		p.Pos.Y = top
		p.Vel.Y = 0
		p.OnGround = true
		s.stats.Landings++
	}
}

// resolveBallWalls keeps every ball inside the arena with a perfectly
// elastic bounce.
func (s *Stepper) resolveBallWalls(w *world.World) {
	width, height := w.Arena.Width, w.Arena.Height
	for i := range w.Balls {
		b := &w.Balls[i]
		if b.Pos.X-b.Radius < 0 {
			b.Pos.X = b.Radius
			b.Vel.X = -b.Vel.X
			s.stats.WallBounces++
		}
		if b.Pos.X+b.Radius > width {
			b.Pos.X = width - b.Radius
			b.Vel.X = -b.Vel.X
			s.stats.WallBounces++
		}
		if b.Pos.Y-b.Radius < 0 {
			b.Pos.Y = b.Radius
			b.Vel.Y = -b.Vel.Y
			s.stats.WallBounces++
		}
		if b.Pos.Y+b.Radius > height {
			b.Pos.Y = height - b.Radius
			b.Vel.Y = -b.Vel.Y
			s.stats.WallBounces++
		}
	}
}

// resolveBallPlatforms pushes each ball fully out of every platform it
// penetrates and reflects its velocity about the contact normal. Contacts
// are handled one platform at a time in stored order.
func (s *Stepper) resolveBallPlatforms(w *world.World) {
	for i := range w.Balls {
		b := &w.Balls[i]
		for j, platform := range w.Platforms {
			pen, kind := gamemath.CircleAabbPenetration(b.Pos, b.Radius, platform.Pos, platform.Size)
			switch kind {
			case gamemath.Separated:
				continue
			case gamemath.Degenerate:
				s.nearMiss("ball %d center inside platform %d", i, j)
				continue
			}

			b.Pos = b.Pos.Add(pen.Normal.Scale(pen.Depth))
			b.Vel = gamemath.Reflect(b.Vel, pen.Normal)
			s.stats.PlatformBounces++
		}
	}
}

// resolveBallPlayer nudges the player away from each ball touching it by
// a fixed distance and reflects the ball. The player gets no velocity
// change from the hit.
func (s *Stepper) resolveBallPlayer(w *world.World) {
	p := &w.Player
	for i := range w.Balls {
		b := &w.Balls[i]
		pen, kind := gamemath.CircleAabbPenetration(b.Pos, b.Radius, p.Pos, p.Size)
		switch kind {
		case gamemath.Separated:
			continue
		case gamemath.Degenerate:
			s.nearMiss("ball %d center inside player", i)
			continue
		}

		p.Pos = p.Pos.Sub(pen.Normal.Scale(s.Tuning.PlayerPushDistance))
		b.Vel = gamemath.Reflect(b.Vel, pen.Normal)
		s.stats.PlayerHits++
	}
}

// resolveBallPairs separates every overlapping pair (i < j) symmetrically
// and exchanges momentum elastically along the line of centers, using the
// radius as the mass. Each pair's exchange reads a snapshot of both balls,
// but pairs are processed in order, so a ball in several contacts sees the
// results of earlier pairs.
func (s *Stepper) resolveBallPairs(w *world.World) {
	balls := w.Balls
	for i := 0; i < len(balls); i++ {
		for j := i + 1; j < len(balls); j++ {
			a, b := &balls[i], &balls[j]
			pen, kind := gamemath.CircleCircleOverlap(a.Pos, a.Radius, b.Pos, b.Radius)
			switch kind {
			case gamemath.Separated:
				continue
			case gamemath.Degenerate:
				s.nearMiss("balls %d and %d share a center", i, j)
				continue
			}

			half := pen.Normal.Scale(pen.Depth * 0.5)
			a.Pos = a.Pos.Add(half)
			b.Pos = b.Pos.Sub(half)

			x1, x2 := a.Pos, b.Pos
			v1, v2 := a.Vel, b.Vel
			m1, m2 := a.Radius, b.Radius

			d := x1.Sub(x2)
			distSq := d.LenSq()
			if distSq == 0 {
				s.nearMiss("balls %d and %d share a center after separation", i, j)
				continue
			}

			// (v1-v2)·(x1-x2) equals (v2-v1)·(x2-x1), so one projection
			// serves both balls.
			k := v1.Sub(v2).Dot(d) / distSq
			a.Vel = v1.Sub(d.Scale(2 * m2 / (m1 + m2) * k))
			b.Vel = v2.Add(d.Scale(2 * m1 / (m1 + m2) * k))
			s.stats.BallCollisions++
		}
	}
}

func (s *Stepper) nearMiss(format string, args ...any) {
	s.stats.NearMisses++
	if s.LogNearMisses {
		log.Printf("[physics] near miss: "+format, args...)
	}
}
