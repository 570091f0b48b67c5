// Command ballsim runs an arena without a window and reports what the
// physics did.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/automoto/ballpit/assets"
	cfg "github.com/automoto/ballpit/config"
	"github.com/automoto/ballpit/physics"
	"github.com/automoto/ballpit/runner"
	"github.com/automoto/ballpit/snapshot"
	"github.com/automoto/ballpit/world"
)

// statusEvery is how often the live status line is redrawn, in ticks.
const statusEvery = 30

func main() {
	levelPath := flag.String("level", "", "Path to a .tmx level (empty = bundled arena)")
	ticks := flag.Int("ticks", 600, "Number of ticks to run (0 = until interrupted, realtime only)")
	tickRate := flag.Int("tickrate", cfg.Viewer.TPS, "Ticks per second; each tick steps 1/tickrate seconds")
	realtime := flag.Bool("realtime", false, "Pace ticks on a wall-clock ticker instead of running flat out")
	snapshotPath := flag.String("snapshot", "", "Write a PNG of the final world to this path")
	lint := flag.Bool("lint", false, "Treat level lint findings as fatal")
	debug := flag.Bool("debug", false, "Log every near miss")
	flag.Parse()

	if *debug {
		cfg.Debug.LogNearMisses = true
	}
	if *ticks == 0 && !*realtime {
		log.Fatal("-ticks 0 needs -realtime")
	}

	w, err := assets.LoadLevel(*levelPath)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	findings := world.Lint(w)
	for _, f := range findings {
		log.Printf("[lint] %s", f)
	}
	if *lint && len(findings) > 0 {
		log.Fatalf("[lint] %d findings", len(findings))
	}

	sim := runner.NewSim(w, physics.NewStepper(physics.DefaultTuning()), *tickRate)
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))
	if isTTY {
		sim.OnTick(func(tick uint64, w *world.World) {
			if tick%statusEvery == 0 {
				p := w.Player
				fmt.Printf("\rtick %6d  player (%7.1f, %7.1f) ground %-5t", tick, p.Pos.X, p.Pos.Y, p.OnGround)
			}
		})
	}

	log.Printf("[runner] level %q: %d platforms, %d balls, %d ticks at %d/s",
		levelName(*levelPath), len(w.Platforms), len(w.Balls), *ticks, *tickRate)

	var stats physics.Stats
	if *realtime {
		loop := runner.NewGameLoop(sim, *tickRate, uint64(*ticks))
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			loop.Stop()
		}()
		loop.Run()
		stats = sim.Stats()
	} else {
		stats = sim.RunTicks(*ticks)
	}
	if isTTY {
		fmt.Println()
	}

	final := sim.Snapshot()
	if !final.IsFinite() {
		log.Fatalf("[runner] world went non-finite: %s", stats)
	}
	log.Printf("[runner] done: %s", stats)
	log.Printf("[runner] player at (%.2f, %.2f) on ground %t", final.Player.Pos.X, final.Player.Pos.Y, final.Player.OnGround)

	if *snapshotPath != "" {
		if err := snapshot.SavePNG(*snapshotPath, final); err != nil {
			log.Fatalf("Failed to write snapshot: %v", err)
		}
		log.Printf("[snapshot] wrote %s", *snapshotPath)
	}
}

func levelName(path string) string {
	if path == "" {
		return assets.DefaultLevel
	}
	return path
}
