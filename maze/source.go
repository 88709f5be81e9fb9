package maze

import "math/rand"

// Source supplies the randomness consumed by generation.
// *rand.Rand satisfies it. A Source must not be shared between concurrent generations.
type Source interface {
	// Intn returns a uniformly distributed integer in [0, n).
	Intn(n int) int
}

// NewSource returns an independent generator seeded with seed.
func NewSource(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// shuffleDirections performs an in-place Fisher–Yates shuffle of dirs using rng.
func shuffleDirections(dirs *[4]Direction, rng Source) {
	for i := len(dirs) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		dirs[i], dirs[j] = dirs[j], dirs[i]
	}
}
