// internal/component/gate.go
package component

import (
	"math"

	"go-ring-escape/internal/utils"
)

// Classification is the outcome of testing the ball against one gate.
type Classification int

const (
	GateInside    Classification = iota // ball below the ring band, no interaction
	GateColliding                       // ball overlaps solid ring material
	GatePassing                         // ball overlaps the band inside the gap arc
	GateCleared                         // ball fully past the ring, outward
)

func (c Classification) String() string {
	switch c {
	case GateInside:
		return "Inside"
	case GateColliding:
		return "Colliding"
	case GatePassing:
		return "PassingThroughGap"
	case GateCleared:
		return "Clear"
	}
	return "Unknown"
}

// gapEdgeEpsilon widens the gap arc slightly so a ball exactly on a gap
// boundary passes instead of bouncing. Bouncing there reads as unfair.
const gapEdgeEpsilon = 0.01

// Gate is a rotating ring with one angular gap, centered on the world
// origin. Gates are ordered by CenterRadius, innermost first.
type Gate struct {
	CenterRadius float64
	Angle        float64 // current rotation, always in [0, 2π)
	AngularVel   float64 // signed, rad/s
	GapStart     float64 // gap arc start at zero rotation
	GapWidth     float64 // radians, < 2π
	Thickness    float64
	Index        int // creation ordinal, drives the ring color
	Active       bool
}

// Advance rotates the gate by its angular velocity. Rotation is
// continuous and wraps at 2π.
func (g *Gate) Advance(dt float64) {
	g.Angle = utils.NormalizeAngle(g.Angle + g.AngularVel*dt)
}

// GapArc returns the gap's current start angle and width.
func (g *Gate) GapArc() (start, width float64) {
	return utils.NormalizeAngle(g.GapStart + g.Angle), g.GapWidth
}

// InnerRadius is the inner edge of the ring band.
func (g *Gate) InnerRadius() float64 {
	return g.CenterRadius - g.Thickness/2
}

// OuterRadius is the outer edge of the ring band.
func (g *Gate) OuterRadius() float64 {
	return g.CenterRadius + g.Thickness/2
}

// Classify tests a ball at pos (world-center coordinates) against the
// ring. The gap test widens the arc by the angular half-extent of the
// ball at its current distance, so a ball visually inside the hole never
// classifies as a collision.
func (g *Gate) Classify(pos utils.Vec2, ballRadius float64) Classification {
	d := pos.Length()
	if d+ballRadius < g.InnerRadius() {
		return GateInside
	}
	if d-ballRadius > g.OuterRadius() {
		return GateCleared
	}

	start, width := g.GapArc()
	if width > 0 && d > 0 {
		tol := math.Asin(math.Min(1, ballRadius/d)) + gapEdgeEpsilon
		if utils.AngleInArc(pos.Angle(), start-tol, width+2*tol) {
			return GatePassing
		}
	}
	return GateColliding
}

// ClassifySwept classifies the straight path travelled between two
// ticks. A clamped stutter frame can step the ball across the whole
// band in one move; the instantaneous test alone would report that
// crossing as cleared.
func (g *Gate) ClassifySwept(prev, pos utils.Vec2, ballRadius float64) Classification {
	inst := g.Classify(pos, ballRadius)
	if inst == GateColliding || inst == GatePassing {
		return inst
	}

	prevD := prev.Length()
	d := pos.Length()
	lo, hi := prevD, d
	if lo > hi {
		lo, hi = hi, lo
	}
	if hi+ballRadius < g.InnerRadius() || lo-ballRadius > g.OuterRadius() {
		// The path never reached the band.
		return inst
	}

	// The path crossed the band without resting in it. Test the gap at
	// the point where the path crosses the ring's center radius.
	cross := pos
	if d != prevD {
		t := (g.CenterRadius - prevD) / (d - prevD)
		if t < 0 {
			t = 0
		} else if t > 1 {
			t = 1
		}
		cross = prev.Add(pos.Sub(prev).Scale(t))
	}
	cd := cross.Length()
	start, width := g.GapArc()
	if width > 0 && cd > 0 {
		tol := math.Asin(math.Min(1, ballRadius/cd)) + gapEdgeEpsilon
		if utils.AngleInArc(cross.Angle(), start-tol, width+2*tol) {
			// It went through the gap.
			return inst
		}
	}
	return GateColliding
}
