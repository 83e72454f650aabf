package t2048

import (
	"math/rand/v2"
	"time"
)

// RandomSource is the subset of *rand.Rand the engine needs.
// Tests replace it with scripted sequences.
type RandomSource interface {
	IntN(n int) int
	Float64() float64
}

// NewRandomSource returns a PCG-backed source. A zero seed is replaced with
// the current time.
func NewRandomSource(seed int64) RandomSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
}
