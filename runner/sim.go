// Package runner drives a world headlessly: a Sim owns one world and its
// stepper, and a GameLoop ticks the Sim on a wall-clock ticker.
package runner

import (
	"sync"

	"github.com/automoto/ballpit/physics"
	"github.com/automoto/ballpit/world"
)

// Sim serializes access to a world. Intents may be set from any goroutine;
// they are sampled at the start of the next tick and stay in effect until
// replaced, like a held key.
type Sim struct {
	mu      sync.RWMutex
	world   *world.World
	stepper *physics.Stepper
	dt      float64
	intent  physics.Intent
	onTick  func(tick uint64, w *world.World)
}

// NewSim creates a Sim that advances w by 1/tickRate seconds per tick.
func NewSim(w *world.World, stepper *physics.Stepper, tickRate int) *Sim {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Sim{
		world:   w,
		stepper: stepper,
		dt:      1 / float64(tickRate),
	}
}

// DT returns the fixed step length in seconds.
func (s *Sim) DT() float64 { return s.dt }

// SetIntent replaces the intent applied on each following tick.
func (s *Sim) SetIntent(in physics.Intent) {
	s.mu.Lock()
	s.intent = in
	s.mu.Unlock()
}

// OnTick registers fn to run after every tick, with the lock held. fn must
// not keep w or call back into the Sim.
func (s *Sim) OnTick(fn func(tick uint64, w *world.World)) {
	s.mu.Lock()
	s.onTick = fn
	s.mu.Unlock()
}

// Tick applies the current intent and advances the world by one step.
func (s *Sim) Tick() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stepper.ApplyIntent(s.world, s.intent, s.dt)
	s.stepper.Step(s.world, s.dt)
	if s.onTick != nil {
		s.onTick(s.stepper.Stats().Ticks, s.world)
	}
}

// RunTicks steps n times back to back, without waiting on a clock, and
// returns the stats afterwards.
func (s *Sim) RunTicks(n int) physics.Stats {
	for i := 0; i < n; i++ {
		s.Tick()
	}
	return s.Stats()
}

// Snapshot returns a deep copy of the world, safe to read while the Sim
// keeps running.
func (s *Sim) Snapshot() *world.World {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.world.Clone()
}

// Stats returns the stepper's counters.
func (s *Sim) Stats() physics.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stepper.Stats()
}
