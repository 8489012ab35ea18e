package engine

import (
	"math/rand"
	"time"
)

// RandomSource supplies the randomness used for probability assignment and
// remedy sampling. Kept behind an interface so tests can inject a
// deterministic stub.
type RandomSource interface {
	Float64() float64
}

// NewRandomSource returns a time-seeded source for production use.
func NewRandomSource() RandomSource {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// intBetween maps a random draw onto an integer in [lo, hi).
func intBetween(rng RandomSource, lo, hi int) int {
	return lo + int(rng.Float64()*float64(hi-lo))
}
