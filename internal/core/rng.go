package core

import "math/rand"

// RNG supplies uniform random values. Obstacle generation calls it exactly once per
// obstacle, so a seeded implementation makes a whole session reproducible.
type RNG interface {
	// Uniform returns a value in [min, max).
	Uniform(min, max float64) float64
}

// Rand is the default RNG backed by a seeded math/rand source.
type Rand struct {
	r *rand.Rand
}

// NewRand creates a deterministic RNG from seed.
func NewRand(seed int64) *Rand {
	return &Rand{r: rand.New(rand.NewSource(seed))}
}

// Uniform returns a value in [min, max). If max <= min, min is returned.
func (r *Rand) Uniform(min, max float64) float64 {
	if max <= min {
		return min
	}
	return min + r.r.Float64()*(max-min)
}
