package runner

import (
	"log"
	"sync"
	"sync/atomic"
	"time"
)

// GameLoop ticks a Sim at a fixed rate until stopped or until it has run
// maxTicks ticks (0 means no limit).
type GameLoop struct {
	sim      *Sim
	tickRate int
	maxTicks uint64

	running  atomic.Bool
	ticks    uint64
	stopChan chan struct{}
	stopOnce sync.Once
}

func NewGameLoop(sim *Sim, tickRate int, maxTicks uint64) *GameLoop {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &GameLoop{
		sim:      sim,
		tickRate: tickRate,
		maxTicks: maxTicks,
		stopChan: make(chan struct{}),
	}
}

// Run blocks until Stop is called or the tick limit is reached.
func (g *GameLoop) Run() {
	g.running.Store(true)
	defer g.running.Store(false)

	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	log.Printf("[runner] loop started at %d ticks/second", g.tickRate)

	for {
		select {
		case <-g.stopChan:
			log.Printf("[runner] loop stopped after %d ticks", g.ticks)
			return
		case <-ticker.C:
			g.sim.Tick()
			g.ticks++
			if g.maxTicks > 0 && g.ticks >= g.maxTicks {
				log.Printf("[runner] loop finished %d ticks", g.ticks)
				return
			}
		}
	}
}

// Stop ends Run. Safe to call more than once.
func (g *GameLoop) Stop() {
	g.stopOnce.Do(func() { close(g.stopChan) })
}

func (g *GameLoop) Running() bool {
	return g.running.Load()
}
