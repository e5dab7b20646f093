package component

import (
	"math"
	"testing"

	"go-ring-escape/internal/utils"
)

func testGate(gapStart, gapWidth float64) *Gate {
	return &Gate{
		CenterRadius: 100,
		GapStart:     gapStart,
		GapWidth:     gapWidth,
		Thickness:    5,
		Active:       true,
	}
}

func TestAdvanceWrapsAngle(t *testing.T) {
	g := testGate(0, 0.5)
	g.AngularVel = 1.0
	for i := 0; i < 100; i++ {
		g.Advance(0.5)
		if g.Angle < 0 || g.Angle >= 2*math.Pi {
			t.Fatalf("angle %v left [0, 2π) after advance", g.Angle)
		}
	}
	// 100 * 0.5 rad, wrapped.
	want := utils.NormalizeAngle(50)
	if math.Abs(g.Angle-want) > 1e-9 {
		t.Errorf("angle = %v, want %v", g.Angle, want)
	}
}

func TestClassifyInsideAndCleared(t *testing.T) {
	g := testGate(0, 0.5)
	if got := g.Classify(utils.NewVec2(50, 0), 5); got != GateInside {
		t.Errorf("ball well inside the ring classified %v", got)
	}
	if got := g.Classify(utils.NewVec2(150, 0), 5); got != GateCleared {
		t.Errorf("ball well past the ring classified %v", got)
	}
}

func TestClassifyGaplessGateCollides(t *testing.T) {
	// Gate at centerRadius=100 with no gap; ball approaching radially
	// outward at d=99 with radius 1 must collide.
	g := testGate(0, 0)
	if got := g.Classify(utils.NewVec2(99, 0), 1); got != GateColliding {
		t.Fatalf("gapless gate classified %v, want Colliding", got)
	}
}

func TestClassifyBallInGapPasses(t *testing.T) {
	// Gap arc [0.2, 0.8); ball band-overlapping at angle 0.5.
	g := testGate(0.2, 0.6)
	pos := utils.FromAngle(0.5).Scale(100)
	if got := g.Classify(pos, 2); got != GatePassing {
		t.Fatalf("ball centered in gap classified %v, want PassingThroughGap", got)
	}
}

func TestClassifyGapAccountsForRotation(t *testing.T) {
	g := testGate(0.2, 0.6)
	g.Angle = math.Pi // gap arc now starts at 0.2 + π

	inOldGap := utils.FromAngle(0.5).Scale(100)
	if got := g.Classify(inOldGap, 2); got != GateColliding {
		t.Errorf("stale gap position classified %v, want Colliding", got)
	}
	inNewGap := utils.FromAngle(0.5 + math.Pi).Scale(100)
	if got := g.Classify(inNewGap, 2); got != GatePassing {
		t.Errorf("rotated gap position classified %v, want PassingThroughGap", got)
	}
}

func TestClassifyGapEdgeFavorsPassing(t *testing.T) {
	// Ball dead on the gap boundary: the tie goes to the gap.
	g := testGate(0.2, 0.6)
	onEdge := utils.FromAngle(0.2).Scale(100)
	if got := g.Classify(onEdge, 1); got != GatePassing {
		t.Fatalf("gap-edge ball classified %v, want PassingThroughGap", got)
	}
}

func TestClassifyBandOverlapFromOutside(t *testing.T) {
	// Ball falling back onto the ring from outside the band.
	g := testGate(0, 0.3)
	pos := utils.FromAngle(math.Pi).Scale(103)
	if got := g.Classify(pos, 2); got != GateColliding {
		t.Errorf("outside-band contact classified %v, want Colliding", got)
	}
}

func TestClassifySweptCatchesBandCrossing(t *testing.T) {
	// Gap arc [0, 0.3); the path crosses the band at angle 3π/2, solid
	// ring material, with both endpoints clear of the band.
	g := testGate(0, 0.3)
	prev := utils.NewVec2(0, -90)
	pos := utils.NewVec2(0, -115)
	if got := g.ClassifySwept(prev, pos, 2); got != GateColliding {
		t.Fatalf("crossing solid ring classified %v, want Colliding", got)
	}
}

func TestClassifySweptPassesThroughGap(t *testing.T) {
	g := testGate(0, 0.3)
	prev := utils.FromAngle(0.15).Scale(90)
	pos := utils.FromAngle(0.15).Scale(115)
	if got := g.ClassifySwept(prev, pos, 2); got != GateCleared {
		t.Fatalf("crossing through the gap classified %v, want Clear", got)
	}
}

func TestClassifySweptStationaryMatchesInstant(t *testing.T) {
	g := testGate(0, 0.3)
	inside := utils.NewVec2(0, -50)
	if got := g.ClassifySwept(inside, inside, 2); got != GateInside {
		t.Errorf("stationary inside ball classified %v, want Inside", got)
	}
	beyond := utils.NewVec2(0, -150)
	if got := g.ClassifySwept(beyond, beyond, 2); got != GateCleared {
		t.Errorf("stationary cleared ball classified %v, want Clear", got)
	}
}

func TestGapArcAppliesRotation(t *testing.T) {
	g := testGate(1.0, 0.5)
	g.Angle = 2.0
	start, width := g.GapArc()
	if math.Abs(start-3.0) > 1e-9 {
		t.Errorf("gap start = %v, want 3.0", start)
	}
	if width != 0.5 {
		t.Errorf("gap width = %v, want 0.5", width)
	}
}
