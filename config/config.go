// Package config holds the typed tuning for the simulation, the viewer and
// the headless runner. It must not import ebiten or donburi/ecs so that
// cmd/ballsim stays headless.
package config

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// ArenaConfig contains the arena bounds used when a level map has no
// fixed size (infinite Tiled maps).
type ArenaConfig struct {
	Width  float64
	Height float64
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	MoveSpeed float64 // horizontal units per second while a direction is held
	JumpSpeed float64 // upward velocity set on jump

	// Physics
	Gravity float64 // vertical acceleration, negative is down

	// Dimensions (used when a level spawn has no size)
	Width  float64
	Height float64
}

// BallConfig contains ball-related configuration values
type BallConfig struct {
	// Gravity applied to every ball. Zero keeps balls on straight lines
	// between bounces.
	Gravity float64
}

// PhysicsConfig contains step and collision tuning
type PhysicsConfig struct {
	// Step
	MaxStepDT float64 // elapsed time above this is clamped before integrating

	// Collision
	LandingTolerance   float64 // band below a platform top that still counts as a landing
	PlayerPushDistance float64 // fixed nudge applied to the player when a ball hits it
}

// SquashStretchConfig contains the player landing squash effect
type SquashStretchConfig struct {
	LandScaleX float64 // horizontal scale on land (> 1 = wider)
	LandScaleY float64 // vertical scale on land (< 1 = shorter)
	Duration   float32 // seconds to ease back to 1.0
}

// ViewerConfig contains the interactive viewer window settings
type ViewerConfig struct {
	TPS          int // ticks per second; Step runs once per tick with dt = 1/TPS
	WindowScale  float64
	Background   color.RGBA
	PlatformFill color.RGBA
	BallFill     color.RGBA
	PlayerFill   color.RGBA
	GroundedFill color.RGBA
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	LogNearMisses bool // log every skipped degenerate contact
	ShowHUD       bool
}

// Global configuration instances
var Arena ArenaConfig
var Player PlayerConfig
var Ball BallConfig
var Physics PhysicsConfig
var SquashStretch SquashStretchConfig
var Viewer ViewerConfig
var Debug DebugConfig

func init() {
	Arena = ArenaConfig{
		Width:  800,
		Height: 600,
	}

	// Player Config
	Player = PlayerConfig{
		// Movement
		MoveSpeed: 250.0,
		JumpSpeed: 450.0,

		// Physics
		Gravity: -980.0,

		// Dimensions
		Width:  50,
		Height: 50,
	}

	Ball = BallConfig{
		Gravity: 0,
	}

	// Physics Config
	Physics = PhysicsConfig{
		MaxStepDT: 0.05, // 20 fps floor; larger frame hitches are slowed down rather than tunneled

		LandingTolerance:   10.0, // widened each step by the distance fallen
		PlayerPushDistance: 0.5,
	}

	// Squash/Stretch Config
	SquashStretch = SquashStretchConfig{
		LandScaleX: 1.3,
		LandScaleY: 0.7,
		Duration:   0.2,
	}

	Viewer = ViewerConfig{
		TPS:          60,
		WindowScale:  1.0,
		Background:   colornames.Black,
		PlatformFill: colornames.Gray,
		BallFill:     colornames.Crimson,
		PlayerFill:   colornames.Dodgerblue,
		GroundedFill: colornames.Deepskyblue,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		LogNearMisses: false,
		ShowHUD:       true,
	}
}
