package rowgen

import "math/rand"

// Between draws a uniform integer in [lo, hi], inclusive on both ends.
// A single-element range (lo == hi) is legal and draws nothing from rng,
// so fixed counts don't disturb the random sequence.
func Between(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

// Pick returns a uniformly chosen element of items.
// Panics on an empty slice, same as rand.Intn on a non-positive argument.
func Pick[T any](rng *rand.Rand, items []T) T {
	return items[rng.Intn(len(items))]
}
