// Package rngx provides the seedable uniform-integer source the generator
// draws mine placements from. It wraps math/rand/v2 directly rather than
// a third-party RNG, matching how terminal minesweeper implementations in
// Go typically seed their mine placement.
package rngx

import "math/rand/v2"

// Source draws uniform integers over [0, n). A Source created with the
// same seed always produces the same sequence, which deterministic replay
// and tests rely on.
type Source struct {
	r *rand.Rand
}

// New returns a Source seeded deterministically from seed.
func New(seed uint64) *Source {
	return &Source{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// FromEntropy returns a Source seeded from the runtime's default source,
// for non-deterministic generation (the board generator's normal path).
func FromEntropy() *Source {
	return &Source{r: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// IntN draws a uniform integer in [0, n). Panics if n <= 0.
func (s *Source) IntN(n int) int {
	return s.r.IntN(n)
}
