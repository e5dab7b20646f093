// internal/config/config.go
package config

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	ScreenWidth  = 800
	ScreenHeight = 600
	MaxDeltaTime = 0.06
)

var (
	BackgroundColor = color.RGBA{0, 0, 0, 255}
	BallColor       = color.RGBA{255, 255, 255, 255}
	TrailColor      = color.RGBA{220, 220, 220, 255}
	GateColors      = []color.RGBA{
		{255, 187, 0, 255}, // Amber
		{255, 0, 0, 255},   // Red
	}
	HUDTextColor  = color.RGBA{240, 240, 240, 255}
	OverlayColor  = color.RGBA{0, 0, 0, 128}
	GateColorMode = "gradient" // "gradient" or "alternating"
)

// Config holds every tunable simulation parameter. It is built once at
// startup, validated, and never mutated afterwards.
type Config struct {
	Seed int64

	// Physics
	Gravity     float64 // downward acceleration, px/s²
	Restitution float64 // bounce elasticity, (0,1]
	MaxSpeed    float64 // speed clamp, px/s

	// Ball
	BallRadius  float64
	BallSpeed   float64 // initial speed magnitude
	SpawnJitter float64 // spawn offset range around world center
	TrailLength int
	NudgeForce  float64 // horizontal impulse per nudge command

	// Gates
	GateCount     int
	BaseRadius    float64
	Spacing       float64
	SpacingFactor float64 // multiplicative spacing growth per gate
	Thickness     float64
	MinGapWidth   float64 // radians
	MaxGapWidth   float64 // radians
	MinAngularVel float64 // rad/s, magnitude
	MaxAngularVel float64 // rad/s, magnitude
	SpeedOffset   float64 // extra angular speed per gate index

	// Difficulty
	BaseDifficulty  float64
	ProgressionRate float64 // difficulty added per cleared gate
	HitsToFail      int     // consecutive hits on one gate ending the run; 0 = never

	// Particles
	MaxParticles     int
	BounceParticles  int
	BurstParticles   int
	ParticleSpeedMin float64
	ParticleSpeedMax float64
	ParticleLifeMin  float64 // seconds
	ParticleLifeMax  float64 // seconds
	ParticleDrag     float64
	RingBurstJitter  float64 // px/s added to each burst particle's velocity
}

// Default returns the stock tuning.
func Default() Config {
	return Config{
		Gravity:     180.0,
		Restitution: 1.0,
		MaxSpeed:    700.0,

		BallRadius:  5.0,
		BallSpeed:   150.0,
		SpawnJitter: 50.0,
		TrailLength: 8,
		NudgeForce:  60.0,

		GateCount:     6,
		BaseRadius:    45.0,
		Spacing:       36.0,
		SpacingFactor: 1.02,
		Thickness:     5.0,
		MinGapWidth:   0.25,
		MaxGapWidth:   0.6,
		MinAngularVel: 0.3,
		MaxAngularVel: 0.9,
		SpeedOffset:   0.015,

		BaseDifficulty:  1.0,
		ProgressionRate: 0.15,
		HitsToFail:      0,

		MaxParticles:     600,
		BounceParticles:  12,
		BurstParticles:   150,
		ParticleSpeedMin: 30.0,
		ParticleSpeedMax: 110.0,
		ParticleLifeMin:  0.6,
		ParticleLifeMax:  1.0,
		ParticleDrag:     0.4,
		RingBurstJitter:  20.0,
	}
}

// Load builds the config from defaults plus optional environment overrides.
// A .env file is honored when present.
func Load() (Config, error) {
	godotenv.Load()

	cfg := Default()
	envInt64(&cfg.Seed, "RING_SEED")
	envFloat(&cfg.Gravity, "RING_GRAVITY")
	envFloat(&cfg.Restitution, "RING_RESTITUTION")
	envFloat(&cfg.MaxSpeed, "RING_MAX_SPEED")
	envFloat(&cfg.BallRadius, "RING_BALL_RADIUS")
	envFloat(&cfg.BallSpeed, "RING_BALL_SPEED")
	envInt(&cfg.GateCount, "RING_GATE_COUNT")
	envFloat(&cfg.BaseRadius, "RING_BASE_RADIUS")
	envFloat(&cfg.Spacing, "RING_SPACING")
	envFloat(&cfg.MinGapWidth, "RING_MIN_GAP")
	envFloat(&cfg.MaxGapWidth, "RING_MAX_GAP")
	envInt(&cfg.HitsToFail, "RING_HITS_TO_FAIL")
	envInt(&cfg.MaxParticles, "RING_MAX_PARTICLES")
	envFloat(&cfg.RingBurstJitter, "RING_BURST_JITTER")

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects geometry and tuning the simulation cannot run with.
func (c Config) Validate() error {
	switch {
	case math.IsNaN(c.Gravity) || math.IsInf(c.Gravity, 0):
		return fmt.Errorf("config: gravity must be finite, got %v", c.Gravity)
	case c.Restitution <= 0 || c.Restitution > 1:
		return fmt.Errorf("config: restitution must be in (0,1], got %v", c.Restitution)
	case c.MaxSpeed <= 0:
		return fmt.Errorf("config: max speed must be positive, got %v", c.MaxSpeed)
	case c.BallRadius <= 0:
		return fmt.Errorf("config: ball radius must be positive, got %v", c.BallRadius)
	case c.TrailLength < 0:
		return fmt.Errorf("config: trail length must not be negative, got %d", c.TrailLength)
	case c.GateCount <= 0:
		return fmt.Errorf("config: gate count must be positive, got %d", c.GateCount)
	case c.BaseRadius <= 0:
		return fmt.Errorf("config: base radius must be positive, got %v", c.BaseRadius)
	case c.Spacing <= 0:
		return fmt.Errorf("config: gate spacing must be positive, got %v", c.Spacing)
	case c.SpacingFactor < 1:
		return fmt.Errorf("config: spacing factor must be >= 1, got %v", c.SpacingFactor)
	case c.Thickness <= 0:
		return fmt.Errorf("config: gate thickness must be positive, got %v", c.Thickness)
	case c.MinGapWidth <= 0:
		return fmt.Errorf("config: min gap width must be positive, got %v", c.MinGapWidth)
	case c.MaxGapWidth >= 2*math.Pi:
		return fmt.Errorf("config: max gap width must be below 2π, got %v", c.MaxGapWidth)
	case c.MinGapWidth > c.MaxGapWidth:
		return fmt.Errorf("config: gap width range inverted: [%v, %v]", c.MinGapWidth, c.MaxGapWidth)
	case c.MinAngularVel < 0 || c.MinAngularVel > c.MaxAngularVel:
		return fmt.Errorf("config: angular velocity range invalid: [%v, %v]", c.MinAngularVel, c.MaxAngularVel)
	case c.BaseDifficulty <= 0:
		return fmt.Errorf("config: base difficulty must be positive, got %v", c.BaseDifficulty)
	case c.ProgressionRate < 0:
		return fmt.Errorf("config: progression rate must not be negative, got %v", c.ProgressionRate)
	case c.HitsToFail < 0:
		return fmt.Errorf("config: hits-to-fail must not be negative, got %d", c.HitsToFail)
	case c.MaxParticles <= 0:
		return fmt.Errorf("config: particle cap must be positive, got %d", c.MaxParticles)
	case c.ParticleLifeMin <= 0 || c.ParticleLifeMin > c.ParticleLifeMax:
		return fmt.Errorf("config: particle life range invalid: [%v, %v]", c.ParticleLifeMin, c.ParticleLifeMax)
	case c.ParticleSpeedMin > c.ParticleSpeedMax:
		return fmt.Errorf("config: particle speed range inverted: [%v, %v]", c.ParticleSpeedMin, c.ParticleSpeedMax)
	case c.RingBurstJitter < 0:
		return fmt.Errorf("config: ring burst jitter must not be negative, got %v", c.RingBurstJitter)
	}
	return nil
}

func envFloat(dst *float64, key string) {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = f
		}
	}
}

func envInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func envInt64(dst *int64, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			*dst = n
		}
	}
}
