// internal/system/render.go
package system

import (
	"image/color"

	"go-ring-escape/internal/component"
	"go-ring-escape/internal/config"
	"go-ring-escape/internal/utils"
	"go-ring-escape/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RenderSystem draws an end-of-tick snapshot. It is a pure reader: the
// simulation never calls into it and it never mutates simulation state.
type RenderSystem struct {
	centerX float64
	centerY float64

	whiteImg *ebiten.Image
	vs       []ebiten.Vertex
	is       []uint16
}

func NewRenderSystem() *RenderSystem {
	whiteImg := ebiten.NewImage(3, 3)
	whiteImg.Fill(color.White)
	return &RenderSystem{
		centerX:  float64(config.ScreenWidth) / 2,
		centerY:  float64(config.ScreenHeight) / 2,
		whiteImg: whiteImg,
	}
}

// Draw paints the whole snapshot: gates outermost-first so inner rings
// sit on top, then trail, ball and particles.
func (r *RenderSystem) Draw(screen *ebiten.Image, snap component.Snapshot) {
	for i := len(snap.Gates) - 1; i >= 0; i-- {
		r.drawGate(screen, snap.Gates[i], len(snap.Gates))
	}
	r.drawTrail(screen, snap.Trail)
	bx, by := r.toScreen(snap.BallPos)
	vector.DrawFilledCircle(screen, bx, by, float32(snap.BallRadius), config.BallColor, true)
	for _, p := range snap.Particles {
		px, py := r.toScreen(p.Pos)
		vector.DrawFilledCircle(screen, px, py, float32(p.Size), render.Fade(p.Color, p.Alpha), true)
	}
}

// drawGate strokes the solid part of the ring: one arc running from the
// gap's end around to the gap's start.
func (r *RenderSystem) drawGate(screen *ebiten.Image, g component.GateView, total int) {
	clr := render.RingColor(g.Index, total, config.GateColors, config.GateColorMode)

	gapEnd := g.GapStart + g.GapWidth
	solidStart := gapEnd
	solidEnd := g.GapStart + utils.TwoPi
	if g.GapWidth <= 0 {
		solidStart = 0
		solidEnd = utils.TwoPi
	}

	var path vector.Path
	path.Arc(float32(r.centerX), float32(r.centerY), float32(g.CenterRadius),
		float32(solidStart), float32(solidEnd), vector.Clockwise)

	op := &vector.StrokeOptions{Width: float32(g.Thickness)}
	r.vs, r.is = path.AppendVerticesAndIndicesForStroke(r.vs[:0], r.is[:0], op)
	cr := float32(clr.R) / 255
	cg := float32(clr.G) / 255
	cb := float32(clr.B) / 255
	ca := float32(clr.A) / 255
	for i := range r.vs {
		r.vs[i].SrcX = 1
		r.vs[i].SrcY = 1
		r.vs[i].ColorR = cr
		r.vs[i].ColorG = cg
		r.vs[i].ColorB = cb
		r.vs[i].ColorA = ca
	}
	screen.DrawTriangles(r.vs, r.is, r.whiteImg, &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	})
}

// drawTrail paints the recent positions with opacity growing toward the
// newest one.
func (r *RenderSystem) drawTrail(screen *ebiten.Image, trail []utils.Vec2) {
	n := len(trail)
	if n < 2 {
		return
	}
	for i, pos := range trail {
		alpha := float64(i+1) / float64(n)
		x, y := r.toScreen(pos)
		vector.DrawFilledCircle(screen, x, y, 3, render.Fade(config.TrailColor, alpha), true)
	}
}

func (r *RenderSystem) toScreen(p utils.Vec2) (float32, float32) {
	return float32(r.centerX + p.X), float32(r.centerY + p.Y)
}
