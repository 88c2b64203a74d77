// SPDX-License-Identifier: MIT
// Package: zola/constellation
//
// validate.go — input contract checks.
//
// Design:
//   • Deterministic, side-effect free; no logging.
//   • The first violation in input order is reported, wrapped with the
//     offending index and ID so callers can log it at the fetch boundary.

package constellation

import (
	"fmt"
	"math"
)

// Validate checks that every point has a non-empty, unique ID and finite
// coordinates. Data-fetch layers call it before handing records to Build;
// Build runs it as well.
// Complexity: O(n) time, O(n) space.
func Validate(points []Point) error {
	seen := make(map[string]int, len(points))
	for i, p := range points {
		if p.ID == "" {
			return fmt.Errorf("point %d: %w", i, ErrEmptyID)
		}
		if !finite(p.X) || !finite(p.Y) {
			return fmt.Errorf("point %d (%q) at (%g,%g): %w", i, p.ID, p.X, p.Y, ErrNonFiniteCoordinate)
		}
		if j, dup := seen[p.ID]; dup {
			return fmt.Errorf("points %d and %d share id %q: %w", j, i, p.ID, ErrDuplicateID)
		}
		seen[p.ID] = i
	}

	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
