package world

import (
	"errors"
	"fmt"
	"math"

	"github.com/automoto/ballpit/shared/gamemath"
)

// Configuration errors returned by New. They are wrapped with the offending
// body, so match them with errors.Is.
var (
	ErrInvalidArena  = errors.New("arena dimensions must be positive")
	ErrInvalidSize   = errors.New("size must not be negative")
	ErrInvalidRadius = errors.New("radius must be positive and fit the arena")
	ErrNonFinite     = errors.New("value is NaN or infinite")
)

func validate(spec Spec) error {
	a := spec.Arena
	if !finite(a.Width) || !finite(a.Height) {
		return fmt.Errorf("arena %gx%g: %w", a.Width, a.Height, ErrNonFinite)
	}
	if a.Width <= 0 || a.Height <= 0 {
		return fmt.Errorf("arena %gx%g: %w", a.Width, a.Height, ErrInvalidArena)
	}

	p := spec.Player
	if !p.Pos.IsFinite() || !p.Size.IsFinite() || !p.Vel.IsFinite() {
		return fmt.Errorf("player: %w", ErrNonFinite)
	}
	if err := checkSize(p.Size); err != nil {
		return fmt.Errorf("player: %w", err)
	}

	for i, pl := range spec.Platforms {
		if !pl.Pos.IsFinite() || !pl.Size.IsFinite() {
			return fmt.Errorf("platform %d: %w", i, ErrNonFinite)
		}
		if err := checkSize(pl.Size); err != nil {
			return fmt.Errorf("platform %d: %w", i, err)
		}
	}

	for i, b := range spec.Balls {
		if !b.Pos.IsFinite() || !b.Vel.IsFinite() || !finite(b.Radius) {
			return fmt.Errorf("ball %d: %w", i, ErrNonFinite)
		}
		if b.Radius <= 0 || 2*b.Radius > a.Width || 2*b.Radius > a.Height {
			return fmt.Errorf("ball %d: radius %g: %w", i, b.Radius, ErrInvalidRadius)
		}
	}

	return nil
}

func checkSize(size gamemath.Vec2) error {
	if size.X < 0 || size.Y < 0 {
		return fmt.Errorf("size %gx%g: %w", size.X, size.Y, ErrInvalidSize)
	}
	return nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
