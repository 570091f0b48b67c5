package physics

import "fmt"

// Stats counts what a Stepper has done since it was created or reset.
type Stats struct {
	Ticks uint64

	Landings        uint64
	WallBounces     uint64
	PlatformBounces uint64
	PlayerHits      uint64
	BallCollisions  uint64

	// NearMisses counts contacts skipped because no separating direction
	// existed (coincident centers, a ball center inside a box).
	NearMisses uint64
}

func (s Stats) String() string {
	return fmt.Sprintf("ticks=%d landings=%d walls=%d platforms=%d player=%d balls=%d near_misses=%d",
		s.Ticks, s.Landings, s.WallBounces, s.PlatformBounces, s.PlayerHits, s.BallCollisions, s.NearMisses)
}
