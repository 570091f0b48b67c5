package main

import (
	"flag"
	"log"
	"path/filepath"

	"github.com/automoto/ballpit/assets"
	cfg "github.com/automoto/ballpit/config"
	"github.com/automoto/ballpit/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene         Scene
	width, height int
}

func NewGame(scene Scene, width, height int) *Game {
	return &Game{scene: scene, width: width, height: height}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func main() {
	levelPath := flag.String("level", "", "Path to a .tmx level (empty = bundled arena)")
	debug := flag.Bool("debug", false, "Show velocity vectors and lint findings, log near misses")
	flag.Parse()

	if *debug {
		cfg.Debug.LogNearMisses = true
	}

	w, err := assets.LoadLevel(*levelPath)
	if err != nil {
		log.Fatalf("Failed to load level: %v", err)
	}

	name := filepath.Base(assets.DefaultLevel)
	if *levelPath != "" {
		name = filepath.Base(*levelPath)
	}

	width, height := int(w.Arena.Width), int(w.Arena.Height)
	scale := cfg.Viewer.WindowScale
	ebiten.SetWindowSize(int(float64(width)*scale), int(float64(height)*scale))
	ebiten.SetWindowTitle("ballpit - " + name)
	ebiten.SetTPS(cfg.Viewer.TPS)

	game := NewGame(scenes.NewArenaScene(name, w, *debug), width, height)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
