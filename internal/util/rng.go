package util

import "math/rand"

// New returns a deterministic rng; seed 0 is mapped to 1 so "unset" still
// reproduces.
func New(seed int64) *rand.Rand {
	if seed == 0 {
		seed = 1
	}
	return rand.New(rand.NewSource(seed))
}
