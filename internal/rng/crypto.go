package rng

import (
	"crypto/rand"
	"math/big"
)

// Crypto is a Generator backed by crypto/rand.
// It is the default source of randomness whenever a seed was not configured.
type Crypto struct{}

// Intn returns a random number from 0 <= x < n
func (c Crypto) Intn(n int) int {
	if n <= 0 {
		panic("invalid argument to Intn")
	}

	b, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(err)
	}

	return int(b.Int64())
}
