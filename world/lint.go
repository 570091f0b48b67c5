package world

import (
	"fmt"
	"math"

	"github.com/automoto/ballpit/shared/gamemath"
	"github.com/solarlune/resolv"
)

// lintCellSize is the resolv grid cell size used when searching for
// overlapping boxes. It only affects lint speed, never results.
const lintCellSize = 32

// Resolv tags for lint objects
const (
	lintTagPlatform = "platform"
	lintTagPlayer   = "player"
)

// FindingKind classifies a lint finding.
type FindingKind int

const (
	// PlatformOverlap: two platforms overlap. The resolver handles multiple
	// platform contacts sequentially and can over-correct on them.
	PlatformOverlap FindingKind = iota
	// PlayerInsidePlatform: the player spawns overlapping a platform it is
	// not standing on.
	PlayerInsidePlatform
	// PlatformOutsideArena: a platform lies entirely outside the arena.
	PlatformOutsideArena
	// BallInsidePlatform: a ball's center starts inside a platform, where no
	// push-out direction exists.
	BallInsidePlatform
)

// Finding is one lint diagnostic. A and B are body indices; B is -1 when
// the finding involves a single platform.
type Finding struct {
	Kind FindingKind
	A, B int
}

func (f Finding) String() string {
	switch f.Kind {
	case PlatformOverlap:
		return fmt.Sprintf("platforms %d and %d overlap", f.A, f.B)
	case PlayerInsidePlatform:
		return fmt.Sprintf("player spawns inside platform %d", f.A)
	case PlatformOutsideArena:
		return fmt.Sprintf("platform %d is outside the arena", f.A)
	case BallInsidePlatform:
		return fmt.Sprintf("ball %d starts with its center inside platform %d", f.A, f.B)
	}
	return "unknown finding"
}

// Lint reports layout problems the resolver does not handle well. It is a
// construction-time check and never runs during a step. Candidate box pairs
// come from a resolv space; every candidate is confirmed with an exact
// overlap test.
func Lint(w *World) []Finding {
	var findings []Finding

	space := resolv.NewSpace(
		int(math.Ceil(w.Arena.Width)),
		int(math.Ceil(w.Arena.Height)),
		lintCellSize, lintCellSize,
	)

	objects := make([]*resolv.Object, len(w.Platforms))
	for i, p := range w.Platforms {
		if !inArena(w.Arena, p) {
			findings = append(findings, Finding{Kind: PlatformOutsideArena, A: i, B: -1})
		}
		obj := resolv.NewObject(p.Pos.X, p.Pos.Y, p.Size.X, p.Size.Y, lintTagPlatform)
		obj.Data = i
		space.Add(obj)
		objects[i] = obj
	}

	for i, obj := range objects {
		check := obj.Check(0, 0, lintTagPlatform)
		if check == nil {
			continue
		}
		for _, other := range check.ObjectsByTags(lintTagPlatform) {
			j, ok := other.Data.(int)
			if !ok || j <= i {
				continue
			}
			a, b := w.Platforms[i], w.Platforms[j]
			if gamemath.AabbOverlap(a.Pos, a.Size, b.Pos, b.Size) {
				findings = append(findings, Finding{Kind: PlatformOverlap, A: i, B: j})
			}
		}
	}

	p := w.Player
	playerObj := resolv.NewObject(p.Pos.X, p.Pos.Y, p.Size.X, p.Size.Y, lintTagPlayer)
	space.Add(playerObj)
	if check := playerObj.Check(0, 0, lintTagPlatform); check != nil {
		for _, other := range check.ObjectsByTags(lintTagPlatform) {
			j, ok := other.Data.(int)
			if !ok {
				continue
			}
			pl := w.Platforms[j]
			if gamemath.AabbOverlap(p.Pos, p.Size, pl.Pos, pl.Size) {
				findings = append(findings, Finding{Kind: PlayerInsidePlatform, A: j, B: -1})
			}
		}
	}

	for i, b := range w.Balls {
		for j, pl := range w.Platforms {
			if _, kind := gamemath.CircleAabbPenetration(b.Pos, b.Radius, pl.Pos, pl.Size); kind == gamemath.Degenerate {
				findings = append(findings, Finding{Kind: BallInsidePlatform, A: i, B: j})
			}
		}
	}

	return findings
}

func inArena(a Arena, p Platform) bool {
	return gamemath.AabbOverlap(p.Pos, p.Size, gamemath.Vec2{}, gamemath.V(a.Width, a.Height))
}
