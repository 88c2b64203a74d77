// SPDX-License-Identifier: MIT
// Package: zola/constellation
//
// types.go — points, edges and sentinel errors.
//
// Error policy (same as the rest of zola):
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Build attaches context with %w and never panics on caller input.
//   • Option constructors (WithX) panic on meaningless values.

package constellation

import (
	"errors"
	"math"
)

// ErrEmptyID indicates a point without an identifier.
var ErrEmptyID = errors.New("constellation: empty point id")

// ErrDuplicateID indicates two points sharing one identifier on the same page.
var ErrDuplicateID = errors.New("constellation: duplicate point id")

// ErrNonFiniteCoordinate indicates a NaN or ±Inf coordinate.
var ErrNonFiniteCoordinate = errors.New("constellation: non-finite coordinate")

// ErrInvalidPolicy indicates a Policy that cannot be applied (negative degree cap).
var ErrInvalidPolicy = errors.New("constellation: invalid degree policy")

// ErrInvalidDistance indicates that a DistanceFn produced a negative or
// non-finite value, which would make the ranking undefined.
var ErrInvalidDistance = errors.New("constellation: distance must be finite and non-negative")

// Point is one star on a page: a stable identifier and plane coordinates.
// The builder is coordinate-system agnostic; the product uses a 0..100
// percentage space.
type Point struct {
	ID string  `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

// Edge is an accepted constellation line. A carries the lexicographically
// smaller ID. Distance is the ranking distance (jittered when the policy
// enables it); Length reports the real Euclidean length.
type Edge struct {
	A        Point   `json:"a"`
	B        Point   `json:"b"`
	Distance float64 `json:"distance"`
}

// Length returns the un-jittered Euclidean length of the edge.
func (e Edge) Length() float64 {
	return math.Hypot(e.A.X-e.B.X, e.A.Y-e.B.Y)
}

// Result is the detailed outcome of BuildDetailed.
type Result struct {
	// Edges in acceptance order: greedy pass first, then repair pass.
	Edges []Edge
	// Greedy is the number of edges accepted under the degree policy.
	Greedy int
	// Repaired is the number of edges added by the connectivity repair pass.
	Repaired int
	// Hub is the ID of the point allowed to exceed MaxDegree, if any.
	Hub string
	// HasHub reports whether a hub was designated.
	HasHub bool
	// Length is the sum of real edge lengths.
	Length float64
}

// Degrees counts, for each point ID, the number of incident edges.
// Complexity: O(len(edges)).
func Degrees(edges []Edge) map[string]int {
	deg := make(map[string]int, len(edges)+1)
	for _, e := range edges {
		deg[e.A.ID]++
		deg[e.B.ID]++
	}

	return deg
}

// TotalLength sums the real Euclidean length of all edges.
func TotalLength(edges []Edge) float64 {
	var total float64
	for _, e := range edges {
		total += e.Length()
	}

	return total
}
