// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"
)

// PRNGService is a wrapper over the standard Go random generator that
// lets the whole game run on a predictable (seeded) stream.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService creates a new service with the given seed.
// A seed of 0 falls back to the current time.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Intn returns a random integer in [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Float64 returns a random float in [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// Range returns a random float in [min, max).
func (s *PRNGService) Range(min, max float64) float64 {
	return min + (max-min)*s.rng.Float64()
}

// Angle returns a random angle in [0, 2π).
func (s *PRNGService) Angle() float64 {
	return s.rng.Float64() * TwoPi
}

// Sign returns +1 or -1 with equal probability.
func (s *PRNGService) Sign() float64 {
	if s.rng.Intn(2) == 0 {
		return 1
	}
	return -1
}
