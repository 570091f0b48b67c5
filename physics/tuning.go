// Package physics advances a world.World by one discrete tick: integrate
// every dynamic body, then detect and resolve collisions in a fixed stage
// order. Resolution is sequential and order-dependent; there is no global
// solver and no broad phase.
package physics

import cfg "github.com/automoto/ballpit/config"

// Tuning holds the constants a Stepper runs with. Gravity is configured per
// body class so balls can be exempt from falling.
type Tuning struct {
	PlayerGravity float64
	BallGravity   float64

	MaxStepDT float64

	LandingTolerance   float64
	PlayerPushDistance float64

	MoveSpeed float64
	JumpSpeed float64
}

// DefaultTuning reads the tuning from the global config.
func DefaultTuning() Tuning {
	return Tuning{
		PlayerGravity:      cfg.Player.Gravity,
		BallGravity:        cfg.Ball.Gravity,
		MaxStepDT:          cfg.Physics.MaxStepDT,
		LandingTolerance:   cfg.Physics.LandingTolerance,
		PlayerPushDistance: cfg.Physics.PlayerPushDistance,
		MoveSpeed:          cfg.Player.MoveSpeed,
		JumpSpeed:          cfg.Player.JumpSpeed,
	}
}

// ClampDT bounds an elapsed time to [0, max]. NaN and negative values
// become 0 so a bad clock can never push the world backwards.
func ClampDT(dt, max float64) float64 {
	if !(dt > 0) {
		return 0
	}
	if dt > max {
		return max
	}
	return dt
}
