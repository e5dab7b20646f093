package component

import (
	"math"
	"testing"

	"go-ring-escape/internal/utils"
)

func TestIntegrateAppliesGravityExactly(t *testing.T) {
	b := NewBall(utils.Vec2{}, utils.Vec2{}, 5, 8)
	gravity := utils.NewVec2(0, 9.8)

	b.Integrate(0.5, gravity, 1e9)
	if math.Abs(b.Vel.Y-4.9) > 1e-12 {
		t.Fatalf("vy after 0.5s = %v, want 4.9", b.Vel.Y)
	}
	if b.Vel.X != 0 {
		t.Fatalf("vx changed under vertical gravity: %v", b.Vel.X)
	}
}

func TestIntegrateThreeTickScenario(t *testing.T) {
	// Ball at world center, velocity zero, gravity (0, 9.8), dt=1.0,
	// three ticks with no gates in range.
	b := NewBall(utils.Vec2{}, utils.Vec2{}, 5, 8)
	gravity := utils.NewVec2(0, 9.8)

	for i := 0; i < 3; i++ {
		b.Integrate(1.0, gravity, 1e9)
	}
	if math.Abs(b.Vel.Y-29.4) > 1e-9 {
		t.Errorf("vy after 3 ticks = %v, want 29.4", b.Vel.Y)
	}
	// Position is the cumulative integration: 9.8 + 19.6 + 29.4.
	if math.Abs(b.Pos.Y-58.8) > 1e-9 {
		t.Errorf("y after 3 ticks = %v, want 58.8", b.Pos.Y)
	}
}

func TestIntegrateRecordsPreviousPosition(t *testing.T) {
	b := NewBall(utils.NewVec2(3, 7), utils.NewVec2(10, 0), 5, 0)
	if b.PrevPos != b.Pos {
		t.Fatalf("fresh ball PrevPos %+v != Pos %+v", b.PrevPos, b.Pos)
	}
	b.Integrate(1.0, utils.Vec2{}, 1e9)
	if b.PrevPos != utils.NewVec2(3, 7) {
		t.Errorf("PrevPos after tick = %+v, want the pre-tick position", b.PrevPos)
	}
	b.Reset(utils.NewVec2(-1, -1), utils.Vec2{})
	if b.PrevPos != b.Pos {
		t.Errorf("PrevPos after reset = %+v, want %+v", b.PrevPos, b.Pos)
	}
}

func TestIntegrateClampsSpeed(t *testing.T) {
	b := NewBall(utils.Vec2{}, utils.NewVec2(0, 100), 5, 8)
	b.Integrate(1.0, utils.NewVec2(0, 1000), 50)
	if sp := b.Vel.Length(); sp > 50+1e-9 {
		t.Fatalf("speed %v exceeds clamp 50", sp)
	}
}

func TestTrailCapEvictsOldest(t *testing.T) {
	b := NewBall(utils.Vec2{}, utils.NewVec2(1, 0), 5, 3)
	for i := 0; i < 10; i++ {
		b.Integrate(1.0, utils.Vec2{}, 1e9)
	}
	if len(b.Trail) != 3 {
		t.Fatalf("trail length = %d, want 3", len(b.Trail))
	}
	// Newest entry is the current position.
	last := b.Trail[len(b.Trail)-1]
	if last != b.Pos {
		t.Errorf("trail tail %+v != position %+v", last, b.Pos)
	}
	// Oldest retained entry is from tick 8, x=8.
	if b.Trail[0].X != 8 {
		t.Errorf("trail head x = %v, want 8", b.Trail[0].X)
	}
}

func TestReflectPreservesSpeedAtFullRestitution(t *testing.T) {
	cases := []struct {
		vel    utils.Vec2
		normal utils.Vec2
	}{
		{utils.NewVec2(3, 4), utils.NewVec2(-1, 0)},
		{utils.NewVec2(-2, 7), utils.NewVec2(0, -1)},
		{utils.NewVec2(10, 0), utils.FromAngle(2.5)},
	}
	for _, c := range cases {
		b := NewBall(utils.Vec2{}, c.vel, 5, 0)
		before := b.Vel.Length()
		b.Reflect(c.normal, 1.0)
		after := b.Vel.Length()
		if math.Abs(before-after) > 1e-9 {
			t.Errorf("restitution 1: speed %v -> %v for v=%+v n=%+v", before, after, c.vel, c.normal)
		}
	}
}

func TestReflectFlipsNormalComponent(t *testing.T) {
	b := NewBall(utils.NewVec2(99, 0), utils.NewVec2(5, 0), 1, 0)
	b.Reflect(utils.NewVec2(-1, 0), 1.0)
	if b.Vel.X != -5 {
		t.Errorf("radial velocity after bounce = %v, want -5", b.Vel.X)
	}
	if b.Vel.Y != 0 {
		t.Errorf("tangential velocity changed: %v", b.Vel.Y)
	}
}

func TestReflectSeparatesFromSurface(t *testing.T) {
	b := NewBall(utils.NewVec2(99, 0), utils.NewVec2(5, 0), 1, 0)
	b.Reflect(utils.NewVec2(-1, 0), 1.0)
	if b.Pos.X >= 99 {
		t.Errorf("position not nudged off the surface: x=%v", b.Pos.X)
	}
}

func TestReflectDegenerateNormalFallsBack(t *testing.T) {
	b := NewBall(utils.Vec2{}, utils.NewVec2(0, 5), 1, 0)
	// Zero normal with no collision history: default axis (0,-1).
	b.Reflect(utils.Vec2{}, 1.0)
	if b.Vel.Y != -5 {
		t.Errorf("fallback normal bounce vy = %v, want -5", b.Vel.Y)
	}

	// After a real bounce the last valid normal is remembered.
	b2 := NewBall(utils.Vec2{}, utils.NewVec2(3, 0), 1, 0)
	b2.Reflect(utils.NewVec2(-1, 0), 1.0)
	b2.Vel = utils.NewVec2(4, 0)
	b2.Reflect(utils.Vec2{}, 1.0)
	if b2.Vel.X != -4 {
		t.Errorf("last-normal fallback vx = %v, want -4", b2.Vel.X)
	}
}

func TestResetClearsTrailAndState(t *testing.T) {
	b := NewBall(utils.Vec2{}, utils.NewVec2(1, 1), 5, 8)
	for i := 0; i < 5; i++ {
		b.Integrate(0.1, utils.NewVec2(0, 10), 1e9)
	}
	b.Reset(utils.NewVec2(2, 3), utils.NewVec2(-1, 0))
	if len(b.Trail) != 0 {
		t.Errorf("trail not cleared on reset: %d entries", len(b.Trail))
	}
	if b.Pos != utils.NewVec2(2, 3) || b.Vel != utils.NewVec2(-1, 0) {
		t.Errorf("reset state wrong: pos=%+v vel=%+v", b.Pos, b.Vel)
	}
}
