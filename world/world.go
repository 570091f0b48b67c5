// Package world holds the authoritative simulation state: one player box,
// static platforms, balls and the arena bounds. Coordinates are y-up; boxes
// are stored by their minimum (bottom-left) corner and balls by center.
//
// A World is plain data. physics.Stepper mutates it once per tick and no
// other code may touch it while a step is running.
package world

import "github.com/automoto/ballpit/shared/gamemath"

// Arena is the fixed rectangle balls bounce inside, spanning [0,Width]x[0,Height].
type Arena struct {
	Width  float64
	Height float64
}

// Player is the controllable box.
type Player struct {
	Pos      gamemath.Vec2 // bottom-left corner
	Size     gamemath.Vec2
	Vel      gamemath.Vec2
	OnGround bool // set only by a landing during the most recent step
}

func (p *Player) Bottom() float64 { return p.Pos.Y }
func (p *Player) Top() float64    { return p.Pos.Y + p.Size.Y }

func (p *Player) Center() gamemath.Vec2 {
	return p.Pos.Add(p.Size.Scale(0.5))
}

// Platform is a static box. It never moves after construction.
type Platform struct {
	Pos  gamemath.Vec2 // bottom-left corner
	Size gamemath.Vec2
}

// Top returns the y of the platform's upper surface.
func (p Platform) Top() float64 { return p.Pos.Y + p.Size.Y }

// Ball is a circle with its own velocity. Radius is always > 0.
type Ball struct {
	Pos    gamemath.Vec2 // center
	Vel    gamemath.Vec2
	Radius float64
}

// World is the full simulation state. Platforms and Balls keep insertion
// order for the lifetime of the world; collision resolution depends on it.
type World struct {
	Arena     Arena
	Player    Player
	Platforms []Platform
	Balls     []Ball
}

// Spec describes a world before validation.
type Spec struct {
	Arena     Arena
	Player    Player
	Platforms []Platform
	Balls     []Ball
}

// New validates spec and builds a World from it. The returned world owns
// copies of the platform and ball slices.
func New(spec Spec) (*World, error) {
	if err := validate(spec); err != nil {
		return nil, err
	}

	w := &World{
		Arena:     spec.Arena,
		Player:    spec.Player,
		Platforms: append([]Platform(nil), spec.Platforms...),
		Balls:     append([]Ball(nil), spec.Balls...),
	}
	w.Player.OnGround = false
	return w, nil
}

// MustNew is New for fixtures and tests; it panics on an invalid spec.
func MustNew(spec Spec) *World {
	w, err := New(spec)
	if err != nil {
		panic("world: " + err.Error())
	}
	return w
}

// Clone returns a deep copy, for collaborators that want a stable view of
// the state while the source world keeps stepping.
func (w *World) Clone() *World {
	return &World{
		Arena:     w.Arena,
		Player:    w.Player,
		Platforms: append([]Platform(nil), w.Platforms...),
		Balls:     append([]Ball(nil), w.Balls...),
	}
}

// IsFinite reports whether every position and velocity in the world is
// free of NaN and Inf.
func (w *World) IsFinite() bool {
	p := w.Player
	if !p.Pos.IsFinite() || !p.Vel.IsFinite() {
		return false
	}
	for _, b := range w.Balls {
		if !b.Pos.IsFinite() || !b.Vel.IsFinite() {
			return false
		}
	}
	return true
}
