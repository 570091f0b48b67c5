package physics

import (
	"math"
	"testing"

	"github.com/automoto/ballpit/shared/gamemath"
	"github.com/automoto/ballpit/world"
)

const eps = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) <= eps }

func testTuning() Tuning {
	return Tuning{
		PlayerGravity:      -980,
		BallGravity:        0,
		MaxStepDT:          0.05,
		LandingTolerance:   10,
		PlayerPushDistance: 0.5,
		MoveSpeed:          250,
		JumpSpeed:          450,
	}
}

// emptyWorld has no platforms or balls and parks the player far from
// anything the tests place.
func emptyWorld() *world.World {
	return world.MustNew(world.Spec{
		Arena: world.Arena{Width: 800, Height: 600},
		Player: world.Player{
			Pos:  gamemath.V(700, 500),
			Size: gamemath.V(50, 50),
		},
	})
}

func referenceWorld() *world.World {
	return world.MustNew(world.Spec{
		Arena: world.Arena{Width: 800, Height: 600},
		Player: world.Player{
			Pos:  gamemath.V(100, 300),
			Size: gamemath.V(50, 50),
		},
		Platforms: []world.Platform{
			{Pos: gamemath.V(0, 0), Size: gamemath.V(800, 50)},
			{Pos: gamemath.V(150, 200), Size: gamemath.V(200, 30)},
			{Pos: gamemath.V(500, 350), Size: gamemath.V(150, 30)},
		},
		Balls: []world.Ball{
			{Pos: gamemath.V(600, 500), Vel: gamemath.V(-150, 0), Radius: 20},
			{Pos: gamemath.V(200, 400), Vel: gamemath.V(100, -50), Radius: 30},
		},
	})
}

func TestClampDT(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"zero", 0, 0},
		{"negative", -1, 0},
		{"nan", math.NaN(), 0},
		{"in range", 0.02, 0.02},
		{"too large", 0.1, 0.05},
		{"inf", math.Inf(1), 0.05},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampDT(tt.in, 0.05); got != tt.want {
				t.Errorf("ClampDT(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestStepClampsLargeDT(t *testing.T) {
	w := emptyWorld()
	s := NewStepper(testTuning())
	s.Step(w, 1)
	if want := -980 * 0.05; !near(w.Player.Vel.Y, want) {
		t.Fatalf("vel.y = %v, want %v", w.Player.Vel.Y, want)
	}
}

func TestStepNegativeDTIsNoMotion(t *testing.T) {
	w := emptyWorld()
	w.Player.Vel = gamemath.V(0, -100)
	before := w.Player.Pos
	NewStepper(testTuning()).Step(w, -0.5)
	if w.Player.Pos != before || w.Player.Vel.Y != -100 {
		t.Fatalf("player moved on negative dt: pos %v vel %v", w.Player.Pos, w.Player.Vel)
	}
}

func TestLandingSetsOnGround(t *testing.T) {
	w := world.MustNew(world.Spec{
		Arena: world.Arena{Width: 800, Height: 600},
		Player: world.Player{
			Pos:  gamemath.V(100, 52),
			Size: gamemath.V(50, 50),
			Vel:  gamemath.V(0, -200),
		},
		Platforms: []world.Platform{
			{Pos: gamemath.V(0, 0), Size: gamemath.V(800, 50)},
		},
	})
	s := NewStepper(testTuning())
	s.Step(w, 0.016)

	p := w.Player
	if p.Vel.Y != 0 {
		t.Errorf("vel.y = %v, want 0", p.Vel.Y)
	}
	if !p.OnGround {
		t.Error("OnGround = false, want true")
	}
	if p.Pos.Y != 50 {
		t.Errorf("pos.y = %v, want 50 (platform top)", p.Pos.Y)
	}
	if got := s.Stats().Landings; got != 1 {
		t.Errorf("Landings = %d, want 1", got)
	}
}

func TestFastFallStillLands(t *testing.T) {
	// Falls about 15 units this step, deeper than LandingTolerance alone.
	w := world.MustNew(world.Spec{
		Arena: world.Arena{Width: 800, Height: 600},
		Player: world.Player{
			Pos:  gamemath.V(100, 55),
			Size: gamemath.V(50, 50),
			Vel:  gamemath.V(0, -900),
		},
		Platforms: []world.Platform{
			{Pos: gamemath.V(0, 0), Size: gamemath.V(800, 50)},
		},
	})
	NewStepper(testTuning()).Step(w, 1.0/60)
	if !w.Player.OnGround || w.Player.Pos.Y != 50 {
		t.Fatalf("player = %+v, want landed on the floor", w.Player)
	}
}

func TestRisingPlayerPassesThroughPlatform(t *testing.T) {
	w := world.MustNew(world.Spec{
		Arena: world.Arena{Width: 800, Height: 600},
		Player: world.Player{
			Pos:  gamemath.V(200, 180),
			Size: gamemath.V(50, 50),
			Vel:  gamemath.V(0, 300),
		},
		Platforms: []world.Platform{
			{Pos: gamemath.V(150, 200), Size: gamemath.V(200, 30)},
		},
	})
	NewStepper(testTuning()).Step(w, 0.016)
	if w.Player.OnGround {
		t.Fatal("rising player landed")
	}
	if w.Player.Vel.Y <= 0 {
		t.Fatalf("vel.y = %v, want still rising", w.Player.Vel.Y)
	}
}

func TestDeepOverlapIsNotALanding(t *testing.T) {
	// Bottom edge is 40 units below the top, well outside the tolerance band.
	w := world.MustNew(world.Spec{
		Arena: world.Arena{Width: 800, Height: 600},
		Player: world.Player{
			Pos:  gamemath.V(200, 190),
			Size: gamemath.V(50, 50),
		},
		Platforms: []world.Platform{
			{Pos: gamemath.V(150, 200), Size: gamemath.V(200, 30)},
		},
	})
	NewStepper(testTuning()).Step(w, 0)
	if w.Player.OnGround || w.Player.Pos.Y != 190 {
		t.Fatalf("deep overlap resolved: %+v", w.Player)
	}
}

func TestOnGroundResetEachStep(t *testing.T) {
	w := emptyWorld()
	w.Player.OnGround = true
	NewStepper(testTuning()).Step(w, 0.016)
	if w.Player.OnGround {
		t.Fatal("OnGround survived a step with no landing")
	}
}

func TestWallBounce(t *testing.T) {
	w := emptyWorld()
	w.Balls = []world.Ball{{Pos: gamemath.V(795, 300), Vel: gamemath.V(100, 0), Radius: 10}}
	s := NewStepper(testTuning())
	s.Step(w, 0.01)

	b := w.Balls[0]
	if b.Pos.X != 790 {
		t.Errorf("x = %v, want 790", b.Pos.X)
	}
	if b.Vel.X != -100 {
		t.Errorf("vel.x = %v, want -100", b.Vel.X)
	}
	if got := s.Stats().WallBounces; got != 1 {
		t.Errorf("WallBounces = %d, want 1", got)
	}
}

func TestBallAtRestInCorner(t *testing.T) {
	w := emptyWorld()
	w.Balls = []world.Ball{{Pos: gamemath.V(10, 10), Radius: 10}}
	s := NewStepper(testTuning())
	s.Step(w, 0.016)

	b := w.Balls[0]
	if b.Pos != gamemath.V(10, 10) || b.Vel != (gamemath.Vec2{}) {
		t.Fatalf("resting ball changed: %+v", b)
	}
	if got := s.Stats().WallBounces; got != 0 {
		t.Errorf("WallBounces = %d, want 0 for exact contact", got)
	}
}

func TestBallBouncesOffPlatformTop(t *testing.T) {
	w := emptyWorld()
	w.Platforms = []world.Platform{{Pos: gamemath.V(100, 100), Size: gamemath.V(200, 30)}}
	w.Balls = []world.Ball{{Pos: gamemath.V(200, 137), Vel: gamemath.V(20, -100), Radius: 10}}
	s := NewStepper(testTuning())
	s.Step(w, 0)

	b := w.Balls[0]
	if !near(b.Pos.Y, 140) || b.Pos.X != 200 {
		t.Errorf("pos = %v, want (200, 140)", b.Pos)
	}
	if !near(b.Vel.X, 20) || !near(b.Vel.Y, 100) {
		t.Errorf("vel = %v, want (20, 100)", b.Vel)
	}
	if got := s.Stats().PlatformBounces; got != 1 {
		t.Errorf("PlatformBounces = %d, want 1", got)
	}
}

func TestBallPushesPlayer(t *testing.T) {
	w := emptyWorld()
	w.Player.Pos = gamemath.V(100, 100)
	// Closest point on the player is (150,125): depth 5, normal +x.
	w.Balls = []world.Ball{{Pos: gamemath.V(155, 125), Vel: gamemath.V(-50, 0), Radius: 10}}
	s := NewStepper(testTuning())
	s.Step(w, 0)

	if w.Player.Pos != gamemath.V(99.5, 100) {
		t.Errorf("player pos = %v, want (99.5, 100)", w.Player.Pos)
	}
	if w.Player.Vel != (gamemath.Vec2{}) {
		t.Errorf("player vel = %v, want unchanged", w.Player.Vel)
	}
	if w.Balls[0].Vel != gamemath.V(50, 0) {
		t.Errorf("ball vel = %v, want (50, 0)", w.Balls[0].Vel)
	}
	if w.Balls[0].Pos != gamemath.V(155, 125) {
		t.Errorf("ball pos = %v, want unchanged", w.Balls[0].Pos)
	}
}

func TestShallowBallPlayerContactSeparates(t *testing.T) {
	w := emptyWorld()
	w.Player.Pos = gamemath.V(100, 100)
	w.Balls = []world.Ball{{Pos: gamemath.V(159.7, 125), Radius: 10}}
	NewStepper(testTuning()).Step(w, 0)

	_, kind := gamemath.CircleAabbPenetration(w.Balls[0].Pos, w.Balls[0].Radius, w.Player.Pos, w.Player.Size)
	if kind != gamemath.Separated {
		t.Fatalf("still overlapping after push: player %v", w.Player.Pos)
	}
}

func TestEqualBallsExchangeVelocity(t *testing.T) {
	w := emptyWorld()
	w.Balls = []world.Ball{
		{Pos: gamemath.V(100, 300), Vel: gamemath.V(5, 0), Radius: 10},
		{Pos: gamemath.V(119, 300), Vel: gamemath.V(-5, 0), Radius: 10},
	}
	s := NewStepper(testTuning())
	s.Step(w, 0)

	a, b := w.Balls[0], w.Balls[1]
	if !near(a.Vel.X, -5) || !near(b.Vel.X, 5) || a.Vel.Y != 0 || b.Vel.Y != 0 {
		t.Fatalf("velocities = %v, %v; want (-5,0), (5,0)", a.Vel, b.Vel)
	}
	if !near(a.Pos.X, 99.5) || !near(b.Pos.X, 119.5) {
		t.Fatalf("positions = %v, %v; want symmetric half-depth separation", a.Pos, b.Pos)
	}
	if got := s.Stats().BallCollisions; got != 1 {
		t.Errorf("BallCollisions = %d, want 1", got)
	}
}

func TestHeavierBallKeepsMoving(t *testing.T) {
	w := emptyWorld()
	w.Balls = []world.Ball{
		{Pos: gamemath.V(100, 300), Vel: gamemath.V(10, 0), Radius: 30},
		{Pos: gamemath.V(139, 300), Vel: gamemath.V(0, 0), Radius: 10},
	}
	NewStepper(testTuning()).Step(w, 0)

	// m1=30, m2=10: v1' = 10*(20/40) = 5, v2' = 10*(60/40) = 15.
	a, b := w.Balls[0], w.Balls[1]
	if !near(a.Vel.X, 5) || !near(b.Vel.X, 15) {
		t.Fatalf("velocities = %v, %v; want (5,0), (15,0)", a.Vel, b.Vel)
	}
	p0 := 30*10.0 + 10*0.0
	p1 := 30*a.Vel.X + 10*b.Vel.X
	if !near(p0, p1) {
		t.Errorf("momentum %v -> %v", p0, p1)
	}
}

func TestCoincidentBallsAreSkipped(t *testing.T) {
	w := emptyWorld()
	w.Balls = []world.Ball{
		{Pos: gamemath.V(300, 300), Vel: gamemath.V(1, 0), Radius: 10},
		{Pos: gamemath.V(300, 300), Vel: gamemath.V(-1, 0), Radius: 10},
	}
	s := NewStepper(testTuning())
	s.Step(w, 0)

	if !w.IsFinite() {
		t.Fatalf("world not finite: %+v", w.Balls)
	}
	if got := s.Stats().NearMisses; got == 0 {
		t.Error("NearMisses = 0, want the degenerate pair counted")
	}
	if w.Balls[0].Vel != gamemath.V(1, 0) || w.Balls[1].Vel != gamemath.V(-1, 0) {
		t.Errorf("velocities changed on degenerate contact: %v, %v", w.Balls[0].Vel, w.Balls[1].Vel)
	}
}

func TestBallCenterInsidePlatformIsSkipped(t *testing.T) {
	w := emptyWorld()
	w.Platforms = []world.Platform{{Pos: gamemath.V(100, 100), Size: gamemath.V(200, 30)}}
	w.Balls = []world.Ball{{Pos: gamemath.V(200, 115), Vel: gamemath.V(0, -10), Radius: 10}}
	s := NewStepper(testTuning())
	s.Step(w, 0)

	if w.Balls[0].Pos != gamemath.V(200, 115) || w.Balls[0].Vel != gamemath.V(0, -10) {
		t.Fatalf("ball resolved without a normal: %+v", w.Balls[0])
	}
	if got := s.Stats().NearMisses; got != 1 {
		t.Errorf("NearMisses = %d, want 1", got)
	}
}

func TestReferenceSceneStaysFinite(t *testing.T) {
	w := referenceWorld()
	s := NewStepper(testTuning())
	for i := 0; i < 20000; i++ {
		s.Step(w, 1.0/60)
		if !w.IsFinite() {
			t.Fatalf("tick %d: world not finite", i)
		}
	}
	if got := s.Stats().Ticks; got != 20000 {
		t.Errorf("Ticks = %d, want 20000", got)
	}
}

func TestSingleBallStaysInArena(t *testing.T) {
	w := referenceWorld()
	w.Balls = w.Balls[:1]
	s := NewStepper(testTuning())
	for i := 0; i < 20000; i++ {
		s.Step(w, 1.0/60)
		b := w.Balls[0]
		if b.Pos.X < b.Radius-eps || b.Pos.X > w.Arena.Width-b.Radius+eps ||
			b.Pos.Y < b.Radius-eps || b.Pos.Y > w.Arena.Height-b.Radius+eps {
			t.Fatalf("tick %d: ball escaped to %v", i, b.Pos)
		}
	}
}

func TestPlayerSettlesOnFloor(t *testing.T) {
	w := referenceWorld()
	w.Balls = nil
	s := NewStepper(testTuning())
	for i := 0; i < 120; i++ {
		s.Step(w, 1.0/60)
	}
	if !w.Player.OnGround || w.Player.Pos.Y != 50 {
		t.Fatalf("player = %+v, want resting on the floor", w.Player)
	}
}

func TestStepIsDeterministic(t *testing.T) {
	a, b := referenceWorld(), referenceWorld()
	sa, sb := NewStepper(testTuning()), NewStepper(testTuning())
	for i := 0; i < 1000; i++ {
		sa.Step(a, 1.0/60)
		sb.Step(b, 1.0/60)
	}
	if a.Player != b.Player {
		t.Fatalf("players diverged: %+v vs %+v", a.Player, b.Player)
	}
	for i := range a.Balls {
		if a.Balls[i] != b.Balls[i] {
			t.Fatalf("ball %d diverged: %+v vs %+v", i, a.Balls[i], b.Balls[i])
		}
	}
	if sa.Stats() != sb.Stats() {
		t.Fatalf("stats diverged: %v vs %v", sa.Stats(), sb.Stats())
	}
}

func TestResetStats(t *testing.T) {
	s := NewStepper(testTuning())
	s.Step(emptyWorld(), 0.016)
	s.ResetStats()
	if s.Stats() != (Stats{}) {
		t.Fatalf("stats after reset = %v", s.Stats())
	}
}
