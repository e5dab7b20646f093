// internal/system/particles.go
package system

import (
	"image/color"

	"go-ring-escape/internal/component"
	"go-ring-escape/internal/config"
	"go-ring-escape/internal/utils"
)

// ParticleSystem owns every live particle. The pool is capped; when an
// emit would exceed the cap the oldest particles are evicted first.
type ParticleSystem struct {
	cfg       config.Config
	rng       *utils.PRNGService
	particles []component.Particle
}

func NewParticleSystem(cfg config.Config, rng *utils.PRNGService) *ParticleSystem {
	return &ParticleSystem{
		cfg:       cfg,
		rng:       rng,
		particles: make([]component.Particle, 0, cfg.MaxParticles),
	}
}

// Emit spawns count particles at origin with randomized direction,
// speed and lifetime.
func (ps *ParticleSystem) Emit(origin utils.Vec2, count int, clr color.RGBA) {
	for i := 0; i < count; i++ {
		dir := utils.FromAngle(ps.rng.Angle())
		speed := ps.rng.Range(ps.cfg.ParticleSpeedMin, ps.cfg.ParticleSpeedMax)
		ps.push(component.Particle{
			Pos:   origin,
			Vel:   dir.Scale(speed),
			Life:  ps.rng.Range(ps.cfg.ParticleLifeMin, ps.cfg.ParticleLifeMax),
			Size:  1 + ps.rng.Float64(),
			Color: clr,
		})
	}
}

// EmitRing spawns count particles spread around a ring of the given
// radius, flying outward with a little jitter. Used for the shatter
// burst when a gate is cleared.
func (ps *ParticleSystem) EmitRing(center utils.Vec2, radius float64, count int, clr color.RGBA) {
	for i := 0; i < count; i++ {
		angle := ps.rng.Angle()
		dir := utils.FromAngle(angle)
		speed := ps.rng.Range(ps.cfg.ParticleSpeedMin, ps.cfg.ParticleSpeedMax)
		j := ps.cfg.RingBurstJitter
		jitter := utils.NewVec2(ps.rng.Range(-j, j), ps.rng.Range(-j, j))
		ps.push(component.Particle{
			Pos:   center.Add(dir.Scale(radius)),
			Vel:   dir.Scale(speed).Add(jitter),
			Life:  ps.rng.Range(ps.cfg.ParticleLifeMin, ps.cfg.ParticleLifeMax),
			Size:  1 + ps.rng.Float64(),
			Color: clr,
		})
	}
}

// Update integrates particle motion with light drag, burns lifetime,
// and compacts away the expired.
func (ps *ParticleSystem) Update(dt float64) {
	alive := ps.particles[:0]
	drag := 1 - ps.cfg.ParticleDrag*dt
	if drag < 0 {
		drag = 0
	}
	for i := range ps.particles {
		p := ps.particles[i]
		p.Life -= dt
		if p.Life <= 0 {
			continue
		}
		p.Vel = p.Vel.Scale(drag)
		p.Pos = p.Pos.Add(p.Vel.Scale(dt))
		alive = append(alive, p)
	}
	ps.particles = alive
}

// Particles returns the live pool, oldest first.
func (ps *ParticleSystem) Particles() []component.Particle {
	return ps.particles
}

// Clear drops every particle, for run resets.
func (ps *ParticleSystem) Clear() {
	ps.particles = ps.particles[:0]
}

func (ps *ParticleSystem) push(p component.Particle) {
	p.MaxLife = p.Life
	if len(ps.particles) >= ps.cfg.MaxParticles {
		evict := len(ps.particles) - ps.cfg.MaxParticles + 1
		ps.particles = append(ps.particles[:0], ps.particles[evict:]...)
	}
	ps.particles = append(ps.particles, p)
}
