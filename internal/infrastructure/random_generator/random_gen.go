package randomgenerator

import (
	"crypto/rand"
	"fmt"

	"github.com/mikiasgoitom/folio/internal/domain/contract"
)

const base36Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// largest multiple of 36 that fits in a byte; bytes at or above it are rejected to keep the draw uniform
const rejectAbove = 252

type RandomGenerator struct{}

func NewRandomGenerator() contract.IRandomGenerator {
	return &RandomGenerator{}
}

var _ (contract.IRandomGenerator) = (*RandomGenerator)(nil)

func (rg *RandomGenerator) GenerateSuffix(n int) (string, error) {
	if n <= 0 {
		return "", nil
	}
	out := make([]byte, 0, n)
	buf := make([]byte, n*2)
	for len(out) < n {
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("failed to generate random suffix: %w", err)
		}
		for _, b := range buf {
			if b >= rejectAbove {
				continue
			}
			out = append(out, base36Alphabet[int(b)%len(base36Alphabet)])
			if len(out) == n {
				break
			}
		}
	}
	return string(out), nil
}
