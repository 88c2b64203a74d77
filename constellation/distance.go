// SPDX-License-Identifier: MIT
// Package: zola/constellation
//
// distance.go — the distance oracle and its deterministic jitter.
//
// Contract:
//   • A DistanceFn is a pure function of its two points: same input, same
//     bits out. It must be symmetric and return a finite value ≥ 0.
//   • Euclidean is the identity transform (no jitter).
//   • Jittered scales Euclidean by JitterFactor, a function of the two IDs
//     only, so reruns on identical pages draw identical constellations.

package constellation

import (
	"math"
	"unicode/utf16"
)

// Jitter constants: factor = jitterBase + (hash mod jitterBuckets) / jitterScale.
// The factor therefore lies in [0.85, 1.14].
const (
	jitterBase    = 0.85
	jitterBuckets = 30
	jitterScale   = 100.0
	hashMul       = 31
)

// DistanceFn maps an unordered pair of points to the distance used for ranking.
type DistanceFn func(a, b Point) float64

// Euclidean is the plain straight-line distance between a and b.
// Complexity: O(1).
func Euclidean(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Jittered is Euclidean distance scaled by JitterFactor(a.ID, b.ID).
// It breaks the uniform nearest-neighbour look without randomness.
// Complexity: O(len(a.ID)+len(b.ID)).
func Jittered(a, b Point) float64 {
	return Euclidean(a, b) * JitterFactor(a.ID, b.ID)
}

// JitterFactor returns the deterministic distance multiplier for a pair of IDs.
// The pair is canonicalized (smaller ID first) and concatenated, then hashed
// with PairHash. Order of the arguments does not matter.
func JitterFactor(idA, idB string) float64 {
	lo, hi := canonical(idA, idB)
	bucket := PairHash(lo+hi) % jitterBuckets

	return jitterBase + float64(bucket)/jitterScale
}

// PairHash is the polynomial rolling hash h = h*31 + c over the UTF-16 code
// units of s, kept as an unsigned 32-bit value. UTF-16 units match the
// character codes the web client hashes, so both sides agree on the jitter.
func PairHash(s string) uint32 {
	var h uint32
	for _, unit := range utf16.Encode([]rune(s)) {
		h = h*hashMul + uint32(unit)
	}

	return h
}

// canonical orders two IDs lexicographically.
func canonical(a, b string) (string, string) {
	if b < a {
		return b, a
	}

	return a, b
}
