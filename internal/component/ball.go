// internal/component/ball.go
package component

import (
	"go-ring-escape/internal/utils"
)

// separationEpsilon pushes the ball off the surface after a reflection so
// the next tick does not immediately re-collide.
const separationEpsilon = 0.5

// Ball is the falling ball: position, velocity and a trail of recent
// positions for the fading tail effect.
type Ball struct {
	Pos     utils.Vec2
	PrevPos utils.Vec2 // position at the start of the last Integrate
	Vel     utils.Vec2
	Radius  float64

	Trail    []utils.Vec2
	TrailCap int

	lastNormal utils.Vec2
}

func NewBall(pos, vel utils.Vec2, radius float64, trailCap int) *Ball {
	return &Ball{
		Pos:      pos,
		PrevPos:  pos,
		Vel:      vel,
		Radius:   radius,
		Trail:    make([]utils.Vec2, 0, trailCap),
		TrailCap: trailCap,
	}
}

// Integrate applies gravity for dt seconds, clamps speed to maxSpeed to
// keep the ball from tunneling through thin ring walls, moves the ball,
// and records the new position on the trail.
func (b *Ball) Integrate(dt float64, gravity utils.Vec2, maxSpeed float64) {
	b.PrevPos = b.Pos
	b.Vel = b.Vel.Add(gravity.Scale(dt)).ClampLength(maxSpeed)
	b.Pos = b.Pos.Add(b.Vel.Scale(dt))
	b.pushTrail(b.Pos)
}

// Reflect bounces the velocity off a surface with the given normal:
// v' = v - (1+e)(v·n)n. The position is then nudged along the normal to
// resolve penetration. A zero-length normal falls back to the last valid
// one, or straight up when none has been seen yet.
func (b *Ball) Reflect(normal utils.Vec2, restitution float64) {
	n := normal.Normalize()
	if n.Length() == 0 {
		n = b.lastNormal
		if n.Length() == 0 {
			n = utils.NewVec2(0, -1)
		}
	}
	b.lastNormal = n

	dot := b.Vel.Dot(n)
	b.Vel = b.Vel.Sub(n.Scale((1 + restitution) * dot))
	b.Pos = b.Pos.Add(n.Scale(separationEpsilon))
}

// Reset restores the spawn state and clears the trail.
func (b *Ball) Reset(pos, vel utils.Vec2) {
	b.Pos = pos
	b.PrevPos = pos
	b.Vel = vel
	b.Trail = b.Trail[:0]
	b.lastNormal = utils.Vec2{}
}

func (b *Ball) pushTrail(pos utils.Vec2) {
	if b.TrailCap <= 0 {
		return
	}
	b.Trail = append(b.Trail, pos)
	if len(b.Trail) > b.TrailCap {
		b.Trail = b.Trail[1:]
	}
}
