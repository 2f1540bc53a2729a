package rng

import (
	"math/rand"
)

// Seeded wraps math/rand with a fixed seed.
// This should only be used by tests that need a reproducible shuffle.
type Seeded struct {
	rng *rand.Rand
}

// NewSeeded returns a new seeded generator
func NewSeeded(seed int64) *Seeded {
	return &Seeded{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Intn returns a random number from 0 < n
func (s *Seeded) Intn(n int) int {
	return s.rng.Intn(n)
}
