// internal/component/snapshot.go
package component

import (
	"image/color"

	"go-ring-escape/internal/utils"
)

// GateView is the renderer-facing description of one gate.
type GateView struct {
	CenterRadius float64
	Angle        float64
	GapStart     float64 // current gap arc start, rotation applied
	GapWidth     float64
	Thickness    float64
	Index        int
}

// ParticleView is the renderer-facing description of one particle.
// Alpha is the remaining life fraction in [0, 1].
type ParticleView struct {
	Pos   utils.Vec2
	Size  float64
	Alpha float64
	Color color.RGBA
}

// Snapshot is the consistent end-of-tick view the simulation hands to
// the renderer. It never aliases live simulation state.
type Snapshot struct {
	Phase      Phase
	Time       float64
	BallPos    utils.Vec2
	BallRadius float64
	Trail      []utils.Vec2
	Gates      []GateView
	Particles  []ParticleView
	Cleared    int
	Difficulty float64
}
