package lottery

import "math/rand/v2"

// RandomSource yields uniform integers in [0, n)
type RandomSource interface {
	IntN(n int) int
}

// globalRNG draws from the runtime-seeded math/rand/v2 source
type globalRNG struct{}

func (globalRNG) IntN(n int) int { return rand.IntN(n) }

// DefaultRNG returns the unseeded source used for real draws
func DefaultRNG() RandomSource { return globalRNG{} }

// NewSeededRNG returns a replayable source, used by -seed and tests
func NewSeededRNG(seed uint64) RandomSource {
	return rand.New(rand.NewPCG(seed, 0))
}
