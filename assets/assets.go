// Package assets bundles the arena levels into the binary.
package assets

import (
	"embed"
	"os"
	"path/filepath"

	"github.com/automoto/ballpit/shared/leveldata"
	"github.com/automoto/ballpit/world"
)

// DefaultLevel is the reference arena: an 800x600 room with a floor, two
// platforms and two balls.
const DefaultLevel = "levels/arena.tmx"

var (
	//go:embed all:levels
	levelFS embed.FS
)

// LevelNames lists the bundled levels by stem name, sorted.
func LevelNames() ([]string, error) {
	_, names, err := leveldata.LoadAllLevels(levelFS, "levels")
	return names, err
}

// LoadLevel builds a world from path. An empty path loads DefaultLevel
// from the bundle; anything else is read from disk.
func LoadLevel(path string) (*world.World, error) {
	if path == "" {
		return leveldata.LoadWorld(levelFS, DefaultLevel)
	}
	return leveldata.LoadWorld(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}

// MustLoadLevel is LoadLevel for startup paths that cannot continue without
// a world.
func MustLoadLevel(path string) *world.World {
	w, err := LoadLevel(path)
	if err != nil {
		panic(err)
	}
	return w
}
