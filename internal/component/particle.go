// internal/component/particle.go
package component

import (
	"image/color"

	"go-ring-escape/internal/utils"
)

// Particle is one short-lived spark. Alpha at render time derives from
// the remaining life fraction.
type Particle struct {
	Pos     utils.Vec2
	Vel     utils.Vec2
	Life    float64 // seconds remaining
	MaxLife float64
	Size    float64
	Color   color.RGBA
}

// LifeFraction returns remaining life in [0, 1].
func (p *Particle) LifeFraction() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	f := p.Life / p.MaxLife
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
