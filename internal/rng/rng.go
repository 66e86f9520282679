package rng

import "math/rand"

// Generator provides a simple random number
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}

// NewSeeded returns a deterministic Generator. The same seed always yields the same numbers.
func NewSeeded(seed int64) Generator {
	return rand.New(rand.NewSource(seed)) // nolint:gosec
}

// Pick returns a random element of choices. choices must not be empty.
func Pick[T any](g Generator, choices []T) T {
	return choices[g.Intn(len(choices))]
}
