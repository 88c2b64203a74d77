// SPDX-License-Identifier: MIT
package sky

import (
	"math/rand"
)

const (
	slugAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	slugLength   = 6

	// Visitor stars land on integer percentages in [positionMin, positionMax].
	positionMin = 5
	positionMax = 94
)

// NewSlug returns a short base36 slug such as "k3x9qa".
func NewSlug(rng *rand.Rand) string {
	b := make([]byte, slugLength)
	for i := range b {
		b[i] = slugAlphabet[rng.Intn(len(slugAlphabet))]
	}

	return string(b)
}

// RandomPosition picks a star position away from the viewport edges.
func RandomPosition(rng *rand.Rand) (x, y float64) {
	span := positionMax - positionMin + 1
	return float64(rng.Intn(span) + positionMin), float64(rng.Intn(span) + positionMin)
}
