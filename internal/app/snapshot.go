// internal/app/snapshot.go
package app

import (
	"go-ring-escape/internal/component"
	"go-ring-escape/internal/utils"
)

// Snapshot returns the read-only view built at the end of the last tick.
func (g *Game) Snapshot() component.Snapshot {
	return g.snapshot
}

func (g *Game) rebuildSnapshot() {
	s := component.Snapshot{
		Phase:      g.phase,
		Time:       g.gameTime,
		BallPos:    g.Ball.Pos,
		BallRadius: g.Ball.Radius,
		Cleared:    g.GateManager.Cleared(),
		Difficulty: g.GateManager.Difficulty(),
		Trail:      append([]utils.Vec2(nil), g.Ball.Trail...),
	}

	gates := g.GateManager.Gates()
	s.Gates = make([]component.GateView, 0, len(gates))
	for _, gate := range gates {
		start, width := gate.GapArc()
		s.Gates = append(s.Gates, component.GateView{
			CenterRadius: gate.CenterRadius,
			Angle:        gate.Angle,
			GapStart:     start,
			GapWidth:     width,
			Thickness:    gate.Thickness,
			Index:        gate.Index,
		})
	}

	particles := g.Particles.Particles()
	s.Particles = make([]component.ParticleView, 0, len(particles))
	for i := range particles {
		p := &particles[i]
		s.Particles = append(s.Particles, component.ParticleView{
			Pos:   p.Pos,
			Size:  p.Size,
			Alpha: p.LifeFraction(),
			Color: p.Color,
		})
	}

	g.snapshot = s
}
