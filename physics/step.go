package physics

import (
	cfg "github.com/automoto/ballpit/config"
	"github.com/automoto/ballpit/world"
)

// Stepper advances worlds with a fixed Tuning and keeps running Stats.
// A Stepper is not safe for concurrent use; neither is the world it steps.
type Stepper struct {
	Tuning Tuning

	// LogNearMisses logs every skipped degenerate contact. Off by default
	// since a resting pile can produce one per tick.
	LogNearMisses bool

	stats Stats
}

// NewStepper creates a Stepper with the given tuning.
func NewStepper(t Tuning) *Stepper {
	return &Stepper{
		Tuning:        t,
		LogNearMisses: cfg.Debug.LogNearMisses,
	}
}

// Stats returns a copy of the counters.
func (s *Stepper) Stats() Stats {
	return s.stats
}

// ResetStats zeroes the counters.
func (s *Stepper) ResetStats() {
	s.stats = Stats{}
}

// Step advances w by dt seconds: clamp dt, integrate the player and balls,
// then resolve collisions in this order:
//
//  1. player vs each platform (landing only)
//  2. each ball vs arena walls
//  3. each ball vs each platform
//  4. each ball vs the player
//  5. each ball pair (i < j)
//
// The order is part of the contract. With dt = 0 nothing moves under its
// own velocity, but overlapping bodies are still separated and reflected.
func (s *Stepper) Step(w *world.World, dt float64) {
	dt = ClampDT(dt, s.Tuning.MaxStepDT)
	s.stats.Ticks++

	w.Player.OnGround = false
	s.integratePlayer(&w.Player, dt)
	s.integrateBalls(w.Balls, dt)

	s.resolvePlayerPlatforms(w, dt)
	s.resolveBallWalls(w)
	s.resolveBallPlatforms(w)
	s.resolveBallPlayer(w)
	s.resolveBallPairs(w)
}

// Step advances w by dt using DefaultTuning. Callers that want counters or
// custom tuning should hold their own Stepper.
func Step(w *world.World, dt float64) {
	NewStepper(DefaultTuning()).Step(w, dt)
}
