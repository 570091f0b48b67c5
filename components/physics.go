package components

import (
	"github.com/automoto/ballpit/physics"
	"github.com/yohamta/donburi"
)

type PhysicsData struct {
	Stepper *physics.Stepper
	DT      float64 // fixed step, 1/TPS
	Intent  physics.Intent
}

var Physics = donburi.NewComponentType[PhysicsData]()
