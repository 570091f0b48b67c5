// Package leveldata converts Tiled maps into world specs.
// It does not import ebitengine, donburi or resolv, so headless tools can use it.
//
// Tiled is y-down with objects anchored at their top-left corner; the
// world is y-up with boxes anchored at their bottom-left corner, so every
// object is flipped against the map's pixel height on the way in.
package leveldata

import "errors"

// Object group names read from a level.
const (
	GroupPlatforms   = "Platforms"
	GroupPlayerSpawn = "PlayerSpawn"
	GroupBalls       = "Balls"
)

// Ball object properties, in world units (y-up).
const (
	PropVelocityX = "vx"
	PropVelocityY = "vy"
)

var (
	ErrNoPlayerSpawn = errors.New("level has no PlayerSpawn object")
	ErrNotCircle     = errors.New("ball object must be an ellipse with equal width and height")
)
