package quiz

import "math/rand"

// Rand is the randomness used by the engine. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// NewRand returns a seeded source; equal seeds give equal permutations
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// shuffled returns a Fisher-Yates shuffled copy of items
func shuffled[T any](rng Rand, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)

	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})

	return out
}
