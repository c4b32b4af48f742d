package fake

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
)

// UUID returns a random version-4 UUID string drawn from rng.
func UUID(rng *rand.Rand) string {
	id, err := uuid.NewRandomFromReader(rng)
	if err != nil {
		// rand.Rand.Read never fails; keep the signature faker-shaped.
		panic(fmt.Sprintf("fake: uuid from rng: %v", err))
	}
	return id.String()
}

// IntRange returns a uniform integer in [lo, hi], inclusive.
func IntRange(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

// FloatRange returns a uniform float in [lo, hi).
func FloatRange(rng *rand.Rand, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + rng.Float64()*(hi-lo)
}

// Bool returns true with probability p.
func Bool(rng *rand.Rand, p float64) bool {
	return rng.Float64() < p
}

// OneOf returns a uniformly chosen element of choices.
func OneOf[T any](rng *rand.Rand, choices []T) T {
	return choices[rng.Intn(len(choices))]
}

// FirstName returns a random given name.
func FirstName(rng *rand.Rand) string {
	return OneOf(rng, firstNames)
}

// LastName returns a random family name.
func LastName(rng *rand.Rand) string {
	return OneOf(rng, lastNames)
}

// FullName returns "First Last".
func FullName(rng *rand.Rand) string {
	return FirstName(rng) + " " + LastName(rng)
}

// Email returns a plausible lowercase email address.
func Email(rng *rand.Rand) string {
	first := strings.ToLower(FirstName(rng))
	last := strings.ToLower(LastName(rng))
	domain := OneOf(rng, domains)
	return fmt.Sprintf("%s.%s%d@%s", first, last, rng.Intn(100), domain)
}

// Word returns a random lowercase word.
func Word(rng *rand.Rand) string {
	return OneOf(rng, words)
}

// Sentence returns n random words joined by spaces, capitalized, with a
// trailing period.
func Sentence(rng *rand.Rand, n int) string {
	if n <= 0 {
		n = 1
	}
	parts := make([]string, n)
	for i := range parts {
		parts[i] = Word(rng)
	}
	s := strings.Join(parts, " ")
	return strings.ToUpper(s[:1]) + s[1:] + "."
}

// Timestamp returns a random time in [from, to), truncated to seconds,
// in UTC.
func Timestamp(rng *rand.Rand, from, to time.Time) time.Time {
	if !to.After(from) {
		return from.UTC().Truncate(time.Second)
	}
	span := to.Unix() - from.Unix()
	return time.Unix(from.Unix()+rng.Int63n(span), 0).UTC()
}
