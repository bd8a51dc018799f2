package random

import (
	"crypto/rand"
	"math/big"
)

// idAlphabet avoids characters that are easy to confuse when read back from a log
const idAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// Random provides random choices that can be mocked for testing
type Random interface {
	// Intn returns a random int in [0, n)
	Intn(n int) int

	// ID returns a random identifier of the given length
	ID(length int) string
}

// CryptoRandom implements Random using crypto/rand
type CryptoRandom struct{}

// New creates a new CryptoRandom
func New() *CryptoRandom {
	return &CryptoRandom{}
}

// Intn returns a cryptographically random int in [0, n)
func (r *CryptoRandom) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	result, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0
	}
	return int(result.Int64())
}

// ID returns a random identifier drawn from idAlphabet
func (r *CryptoRandom) ID(length int) string {
	if length <= 0 {
		return ""
	}
	result := make([]byte, length)
	for i := range result {
		result[i] = idAlphabet[r.Intn(len(idAlphabet))]
	}
	return string(result)
}
