// internal/app/game.go
package app

import (
	"go-ring-escape/internal/component"
	"go-ring-escape/internal/config"
	"go-ring-escape/internal/event"
	"go-ring-escape/internal/system"
	"go-ring-escape/internal/utils"
	"go-ring-escape/pkg/render"
)

// Game is the simulation core: the ball, the gate field and the
// particle pool, advanced one synchronous tick at a time. Everything is
// owned by the caller's single loop; there is no internal concurrency.
type Game struct {
	Config          config.Config
	Ball            *component.Ball
	GateManager     *system.GateManager
	Particles       *system.ParticleSystem
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService

	phase    component.Phase
	gameTime float64
	gravity  utils.Vec2

	// fail policy bookkeeping
	lastHitGate     int
	consecutiveHits int

	snapshot component.Snapshot
}

// NewGame validates the config and builds a ready-to-run simulation.
func NewGame(cfg config.Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rng := utils.NewPRNGService(cfg.Seed)
	dispatcher := event.NewDispatcher()

	g := &Game{
		Config:          cfg,
		GateManager:     system.NewGateManager(cfg, rng, dispatcher),
		Particles:       system.NewParticleSystem(cfg, rng),
		EventDispatcher: dispatcher,
		Rng:             rng,
		phase:           component.PhaseRunning,
		gravity:         utils.NewVec2(0, cfg.Gravity),
		lastHitGate:     -1,
	}
	g.Ball = component.NewBall(g.spawnPos(), g.spawnVel(), cfg.BallRadius, cfg.TrailLength)

	// A cleared gate shatters into a ring of particles in its own color
	// and resets the consecutive-hit counter.
	dispatcher.Subscribe(event.GateCleared, event.ListenerFunc(func(e event.Event) {
		payload, ok := e.Data.(event.ClearPayload)
		if !ok {
			return
		}
		g.lastHitGate = -1
		g.consecutiveHits = 0
		clr := render.RingColor(payload.GateIndex, cfg.GateCount, config.GateColors, config.GateColorMode)
		g.Particles.EmitRing(utils.Vec2{}, payload.Radius, cfg.BurstParticles, clr)
	}))

	g.rebuildSnapshot()
	return g, nil
}

// Update advances the simulation by dt seconds. Order per tick: ball
// integration, gate rotation and collision, particle motion, snapshot.
// Oversized dt values (a stutter frame) are clamped for stability.
func (g *Game) Update(dt float64) {
	if g.phase != component.PhaseRunning || dt <= 0 {
		return
	}
	if dt > config.MaxDeltaTime {
		dt = config.MaxDeltaTime
	}
	g.gameTime += dt

	g.Ball.Integrate(dt, g.gravity, g.Config.MaxSpeed)

	inter := g.GateManager.Update(dt, g.Ball)
	if inter.Class == component.GateColliding {
		g.Ball.Reflect(inter.Normal, g.Config.Restitution)
		g.Particles.Emit(g.Ball.Pos, g.Config.BounceParticles, config.TrailColor)
		g.EventDispatcher.Dispatch(event.Event{Type: event.BallBounced, Data: event.BouncePayload{
			X:         g.Ball.Pos.X,
			Y:         g.Ball.Pos.Y,
			GateIndex: inter.GateIndex,
		}})
		g.recordHit(inter.GateIndex)
	}

	g.Particles.Update(dt)
	g.rebuildSnapshot()
}

// HandleCommand processes one discrete input command. Unrecognized
// commands are ignored.
func (g *Game) HandleCommand(cmd Command) {
	switch cmd.Type {
	case CmdStart:
		if g.phase == component.PhaseGameOver {
			g.reset()
		}
		g.phase = component.PhaseRunning
	case CmdPause:
		if g.phase == component.PhaseRunning {
			g.phase = component.PhasePaused
		}
	case CmdResume:
		if g.phase == component.PhasePaused {
			g.phase = component.PhaseRunning
		}
	case CmdReset:
		g.reset()
		g.phase = component.PhaseRunning
	case CmdNudge:
		if g.phase == component.PhaseRunning {
			axis := cmd.Axis
			if axis > 1 {
				axis = 1
			} else if axis < -1 {
				axis = -1
			}
			g.Ball.Vel.X += axis * g.Config.NudgeForce
		}
	}
	g.rebuildSnapshot()
}

// Phase returns the current lifecycle state.
func (g *Game) Phase() component.Phase {
	return g.phase
}

// GameTime returns accumulated simulation time in seconds.
func (g *Game) GameTime() float64 {
	return g.gameTime
}

func (g *Game) reset() {
	g.GateManager.Setup()
	g.Particles.Clear()
	g.Ball.Reset(g.spawnPos(), g.spawnVel())
	g.gameTime = 0
	g.lastHitGate = -1
	g.consecutiveHits = 0
	g.EventDispatcher.Dispatch(event.Event{Type: event.RunReset})
}

// recordHit applies the fail policy: HitsToFail consecutive collisions
// against the same gate, with no clear in between, end the run.
// HitsToFail == 0 disables failing.
func (g *Game) recordHit(gateIndex int) {
	if gateIndex == g.lastHitGate {
		g.consecutiveHits++
	} else {
		g.lastHitGate = gateIndex
		g.consecutiveHits = 1
	}
	if g.Config.HitsToFail > 0 && g.consecutiveHits >= g.Config.HitsToFail {
		g.phase = component.PhaseGameOver
		g.EventDispatcher.Dispatch(event.Event{Type: event.RunEnded, Data: g.GateManager.Cleared()})
	}
}

func (g *Game) spawnPos() utils.Vec2 {
	j := g.Config.SpawnJitter
	return utils.NewVec2(g.Rng.Range(-j, j), g.Rng.Range(-j, j))
}

func (g *Game) spawnVel() utils.Vec2 {
	return utils.FromAngle(g.Rng.Angle()).Scale(g.Config.BallSpeed)
}
