// internal/system/gates.go
package system

import (
	"go-ring-escape/internal/component"
	"go-ring-escape/internal/config"
	"go-ring-escape/internal/event"
	"go-ring-escape/internal/utils"
)

// Interaction is the single ring interaction resolved during a tick.
type Interaction struct {
	Class     component.Classification
	Normal    utils.Vec2 // surface normal facing the ball, unit length
	GateIndex int
	Radius    float64
}

// GateManager owns the ordered set of concentric gates, advances their
// rotation, and recycles cleared inner gates into fresh outer ones so
// the visible field keeps a constant size.
type GateManager struct {
	cfg    config.Config
	rng    *utils.PRNGService
	events *event.Dispatcher

	gates       []*component.Gate
	cleared     int
	difficulty  float64
	nextIndex   int
	nextSpacing float64
	maxRadius   float64
}

func NewGateManager(cfg config.Config, rng *utils.PRNGService, events *event.Dispatcher) *GateManager {
	m := &GateManager{
		cfg:    cfg,
		rng:    rng,
		events: events,
	}
	m.Setup()
	return m
}

// Setup builds the initial field of GateCount gates with progressively
// growing spacing, randomized gap placement and rotation.
func (m *GateManager) Setup() {
	m.gates = m.gates[:0]
	m.cleared = 0
	m.difficulty = m.cfg.BaseDifficulty
	m.nextIndex = 0
	m.nextSpacing = m.cfg.Spacing
	m.maxRadius = m.cfg.BaseRadius

	radius := m.cfg.BaseRadius
	for i := 0; i < m.cfg.GateCount; i++ {
		m.gates = append(m.gates, m.newGate(radius))
		radius += m.nextSpacing
		m.nextSpacing *= m.cfg.SpacingFactor
	}
}

// Update advances every gate's rotation, retires gates the ball has
// fully passed, and reports at most one collision. Resolving a single
// ring per tick avoids double-bounce ambiguity when rings sit close.
func (m *GateManager) Update(dt float64, ball *component.Ball) Interaction {
	for _, g := range m.gates {
		g.Advance(dt)
	}

	// The innermost gate retires once the ball's path this tick took it
	// fully outside. The swept test keeps a frame that stepped across
	// solid ring material from being credited as a clear.
	for len(m.gates) > 0 && m.gates[0].ClassifySwept(ball.PrevPos, ball.Pos, ball.Radius) == component.GateCleared {
		m.retireInnermost()
	}

	for _, g := range m.gates {
		switch g.ClassifySwept(ball.PrevPos, ball.Pos, ball.Radius) {
		case component.GateColliding:
			m.resolveTunnel(g, ball)
			return Interaction{
				Class:     component.GateColliding,
				Normal:    m.surfaceNormal(g, ball.Pos),
				GateIndex: g.Index,
				Radius:    g.CenterRadius,
			}
		case component.GateInside:
			// Outer gates are ordered by radius; nothing further can touch.
			return Interaction{Class: component.GateInside}
		}
	}
	return Interaction{Class: component.GateInside}
}

// Gates returns the active gates, innermost first.
func (m *GateManager) Gates() []*component.Gate {
	return m.gates
}

// Cleared returns the progression counter.
func (m *GateManager) Cleared() int {
	return m.cleared
}

// Difficulty returns the current difficulty scalar.
func (m *GateManager) Difficulty() float64 {
	return m.difficulty
}

func (m *GateManager) retireInnermost() {
	retired := m.gates[0]
	retired.Active = false
	m.gates = m.gates[1:]
	m.cleared++
	m.difficulty += m.cfg.ProgressionRate

	// Flip every surviving gate's rotation; keeps the field from being
	// readable as one steady sweep.
	for _, g := range m.gates {
		g.AngularVel = -g.AngularVel
	}

	m.gates = append(m.gates, m.newGate(m.maxRadius+m.nextSpacing))
	m.nextSpacing *= m.cfg.SpacingFactor

	m.events.Dispatch(event.Event{Type: event.GateCleared, Data: event.ClearPayload{
		Radius:    retired.CenterRadius,
		GateIndex: retired.Index,
		Cleared:   m.cleared,
	}})
}

// newGate creates a gate at the given radius. Gap width shrinks and
// rotation speeds up as difficulty rises, bounded by the configured
// minimum gap and the per-gate speed range.
func (m *GateManager) newGate(radius float64) *component.Gate {
	gap := m.rng.Range(m.cfg.MinGapWidth, m.cfg.MaxGapWidth) / m.difficulty
	if gap < m.cfg.MinGapWidth {
		gap = m.cfg.MinGapWidth
	}

	speed := m.rng.Range(m.cfg.MinAngularVel, m.cfg.MaxAngularVel)*m.difficulty +
		m.cfg.SpeedOffset*float64(m.nextIndex)

	g := &component.Gate{
		CenterRadius: radius,
		AngularVel:   m.rng.Sign() * speed,
		GapStart:     m.rng.Angle(),
		GapWidth:     gap,
		Thickness:    m.cfg.Thickness,
		Index:        m.nextIndex,
		Active:       true,
	}
	m.nextIndex++
	if radius > m.maxRadius {
		m.maxRadius = radius
	}
	return g
}

// resolveTunnel repositions a ball that stepped across the whole band
// in one tick at the contact point on the side it came from. Without
// this the reflected ball would be stranded on the far side of the
// ring.
func (m *GateManager) resolveTunnel(g *component.Gate, ball *component.Ball) {
	d := ball.Pos.Length()
	if d+ball.Radius >= g.InnerRadius() && d-ball.Radius <= g.OuterRadius() {
		// Still overlapping the band, the reflection nudge is enough.
		return
	}
	dir := ball.Pos.Normalize()
	if dir.Length() == 0 {
		dir = ball.PrevPos.Normalize()
	}
	if dir.Length() == 0 {
		return
	}
	contact := g.OuterRadius() + ball.Radius
	if ball.PrevPos.Length() <= g.CenterRadius {
		contact = g.InnerRadius() - ball.Radius
		if contact < 0 {
			contact = 0
		}
	}
	ball.Pos = dir.Scale(contact)
}

// surfaceNormal returns the unit normal of the struck ring wall, facing
// the ball's side of the band.
func (m *GateManager) surfaceNormal(g *component.Gate, pos utils.Vec2) utils.Vec2 {
	radial := pos.Normalize()
	if pos.Length() < g.CenterRadius {
		return radial.Scale(-1)
	}
	return radial
}
