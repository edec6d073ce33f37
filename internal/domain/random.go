package domain

import (
	"math/rand/v2"
	"time"
)

// RandomSource is the generator stream shared by every mapper of a run.
// A single instance is created per run so draw order follows column and row order.
type RandomSource interface {
	Int64N(n int64) int64
	IntN(n int) int
}

// NewRandomSource returns a PCG generator seeded with seed, or with the
// clock when seed is nil.
func NewRandomSource(seed *uint64) RandomSource {
	var s uint64
	if seed != nil {
		s = *seed
	} else {
		s = uint64(time.Now().UnixNano())
	}

	return rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15))
}
