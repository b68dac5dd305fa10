// Package sample generates reproducible pseudo-random inputs for batch runs.
package sample

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// ErrInvalidRange is returned for a negative count or an empty [low, high) interval.
var ErrInvalidRange = errors.New("invalid sample range")

// Generator draws integers from a fixed seed. It is intended for reproducibility, not security.
type Generator struct {
	seed int64
}

// New creates a generator bound to seed.
func New(seed int64) *Generator {
	return &Generator{seed: seed}
}

// Seed returns the seed used by this generator.
func (g *Generator) Seed() int64 {
	return g.seed
}

// Generate returns count integers drawn uniformly from [low, high).
// Every call starts from the seed, so identical parameters yield identical sequences.
func (g *Generator) Generate(count int, low, high uint64) ([]uint64, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: negative count %d", ErrInvalidRange, count)
	}
	if high <= low {
		return nil, fmt.Errorf("%w: [%d, %d) is empty", ErrInvalidRange, low, high)
	}

	rng := rand.New(rand.NewPCG(uint64(g.seed), 0))
	span := high - low
	out := make([]uint64, count)
	for i := range out {
		out[i] = low + rng.Uint64N(span)
	}
	return out, nil
}
