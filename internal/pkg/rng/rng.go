// Package rng provides the randomness source used by character
// generation. The Roller interface exists so generation can be seeded
// deterministically in tests.
package rng

import (
	"math/rand/v2"
)

// Roller is the source of randomness for generation decisions
type Roller interface {
	// Intn returns a uniform int in [0, n). Panics if n <= 0.
	Intn(n int) int

	// Percentile returns a uniform int in [1, 100]
	Percentile() int

	// Norm returns a sample from the normal distribution with the
	// given mean and standard deviation
	Norm(mean, stddev float64) float64

	// Shuffle pseudo-randomizes the order of n elements using swap
	Shuffle(n int, swap func(i, j int))
}

type pcgRoller struct {
	rand *rand.Rand
}

// New returns a Roller seeded with the given value. The same seed
// always produces the same sequence.
func New(seed uint64) Roller {
	return &pcgRoller{rand: rand.New(rand.NewPCG(seed, seed))}
}

// NewRandom returns a Roller seeded from system entropy
func NewRandom() Roller {
	return &pcgRoller{rand: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

func (r *pcgRoller) Intn(n int) int {
	return r.rand.IntN(n)
}

func (r *pcgRoller) Percentile() int {
	return r.rand.IntN(100) + 1
}

func (r *pcgRoller) Norm(mean, stddev float64) float64 {
	return r.rand.NormFloat64()*stddev + mean
}

func (r *pcgRoller) Shuffle(n int, swap func(i, j int)) {
	r.rand.Shuffle(n, swap)
}
