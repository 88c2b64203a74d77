// SPDX-License-Identifier: MIT
// Package: zola/constellation
//
// rank.go — candidate generation and ranking.
//
// Determinism:
//   • Candidates are ordered by (distance, lo ID, hi ID). IDs are unique, so
//     this is a total order and the result never depends on input order.

package constellation

import (
	"fmt"
	"math"
	"sort"
)

// candidate is an unordered pair of point indices with its ranking distance.
// lo indexes the point with the smaller ID.
type candidate struct {
	lo, hi int
	dist   float64
}

// rankCandidates builds all n(n-1)/2 pairs and sorts them ascending.
// Complexity: O(n² log n) time, O(n²) space.
func rankCandidates(points []Point, dist DistanceFn) ([]candidate, error) {
	n := len(points)
	cands := make([]candidate, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			lo, hi := i, j
			if points[hi].ID < points[lo].ID {
				lo, hi = hi, lo
			}
			d := dist(points[lo], points[hi])
			if math.IsNaN(d) || math.IsInf(d, 0) || d < 0 {
				return nil, fmt.Errorf("pair (%q,%q) got %g: %w", points[lo].ID, points[hi].ID, d, ErrInvalidDistance)
			}
			cands = append(cands, candidate{lo: lo, hi: hi, dist: d})
		}
	}

	sort.SliceStable(cands, func(a, b int) bool {
		ca, cb := cands[a], cands[b]
		if ca.dist != cb.dist {
			return ca.dist < cb.dist
		}
		if idA, idB := points[ca.lo].ID, points[cb.lo].ID; idA != idB {
			return idA < idB
		}
		return points[ca.hi].ID < points[cb.hi].ID
	})

	return cands, nil
}
