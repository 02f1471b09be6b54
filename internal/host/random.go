package host

import (
	"math/rand"
	"time"
)

// Rand implements RandomSource over math/rand. The harness passes a fixed
// seed for reproducible runs; a zero seed falls back to the wall clock.
type Rand struct {
	rng *rand.Rand
}

// NewRand builds a seeded random source.
func NewRand(seed int64) *Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Rand{rng: rand.New(rand.NewSource(seed))}
}

// UniformInt draws uniformly from [low, high). A degenerate range returns
// low rather than panicking.
func (r *Rand) UniformInt(low, high int) int {
	if high <= low {
		return low
	}
	return low + r.rng.Intn(high-low)
}
