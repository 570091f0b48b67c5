package leveldata

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"

	cfg "github.com/automoto/ballpit/config"
	"github.com/automoto/ballpit/shared/gamemath"
	"github.com/automoto/ballpit/world"
)

// LoadSpec parses a TMX file into an unvalidated world.Spec. It takes an
// fs.FS so callers can pass embed.FS (bundled levels) or os.DirFS (files
// given on the command line).
func LoadSpec(fsys fs.FS, tmxPath string) (world.Spec, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return world.Spec{}, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	spec, err := SpecFromMap(levelMap)
	if err != nil {
		return world.Spec{}, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	return spec, nil
}

// LoadWorld is LoadSpec followed by world.New.
func LoadWorld(fsys fs.FS, tmxPath string) (*world.World, error) {
	spec, err := LoadSpec(fsys, tmxPath)
	if err != nil {
		return nil, err
	}
	w, err := world.New(spec)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", tmxPath, err)
	}
	return w, nil
}

// SpecFromMap converts an already parsed map. Platforms and balls keep
// their order within the object group.
func SpecFromMap(levelMap *tiled.Map) (world.Spec, error) {
	mapW := float64(levelMap.Width * levelMap.TileWidth)
	mapH := float64(levelMap.Height * levelMap.TileHeight)
	if mapW <= 0 || mapH <= 0 {
		mapW, mapH = cfg.Arena.Width, cfg.Arena.Height
	}

	spec := world.Spec{
		Arena: world.Arena{Width: mapW, Height: mapH},
	}

	spawnFound := false
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupPlatforms:
			for _, o := range og.Objects {
				spec.Platforms = append(spec.Platforms, world.Platform{
					Pos:  gamemath.V(o.X, mapH-(o.Y+o.Height)),
					Size: gamemath.V(o.Width, o.Height),
				})
			}
		case GroupPlayerSpawn:
			// First spawn wins; the world has a single player.
			if spawnFound || len(og.Objects) == 0 {
				continue
			}
			o := og.Objects[0]
			size := gamemath.V(o.Width, o.Height)
			if size.X <= 0 || size.Y <= 0 {
				size = gamemath.V(cfg.Player.Width, cfg.Player.Height)
			}
			// A point object marks the player's feet.
			spec.Player = world.Player{
				Pos:  gamemath.V(o.X, mapH-o.Y-o.Height),
				Size: size,
			}
			spawnFound = true
		case GroupBalls:
			for i, o := range og.Objects {
				if len(o.Ellipses) == 0 || o.Width != o.Height {
					return world.Spec{}, fmt.Errorf("ball %d (%q): %w", i, o.Name, ErrNotCircle)
				}
				r := o.Width / 2
				spec.Balls = append(spec.Balls, world.Ball{
					Pos:    gamemath.V(o.X+r, mapH-(o.Y+r)),
					Vel:    gamemath.V(o.Properties.GetFloat(PropVelocityX), o.Properties.GetFloat(PropVelocityY)),
					Radius: r,
				})
			}
		}
	}

	if !spawnFound {
		return world.Spec{}, ErrNoPlayerSpawn
	}
	return spec, nil
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys, loads a
// spec for each, and returns a map keyed by stem name plus a sorted list of
// names.
func LoadAllLevels(fsys fs.FS, levelsDir string) (map[string]world.Spec, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]world.Spec, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		spec, err := LoadSpec(fsys, path)
		if err != nil {
			return nil, nil, err
		}
		stem := strings.TrimSuffix(filepath.Base(path), ".tmx")
		levels[stem] = spec
		names = append(names, stem)
	}

	sort.Strings(names)
	return levels, names, nil
}
