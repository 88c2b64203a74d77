// SPDX-License-Identifier: MIT

// Package constellation draws the lines between the stars of one sky page.
//
// What & Why
//
//   - What is a constellation here?
//     Given a handful of 2D points (a page of up to ~10–12 stars), a
//     constellation is a set of n−1 line segments that connects every star,
//     never closes a loop, and stays sparse enough to look hand-drawn.
//
//   - Why not a plain minimum spanning tree?
//     An MST of scattered points tends to grow "hairy" hubs: one central star
//     with five spokes. Capping the degree of each star during Kruskal keeps
//     the drawing line-like. The cap can leave the forest split, so a repair
//     pass reconnects it.
//
// Pipeline
//
//   - Distance oracle: Euclidean, or Jittered (Euclidean × a factor in
//     [0.85, 1.14] derived from a 31-polynomial hash of the two IDs). Any
//     DistanceFn may be plugged in with WithDistance.
//
//   - Edge ranker: all n(n−1)/2 pairs sorted ascending by oracle distance;
//     ties break on the canonical (smaller ID, larger ID) pair.
//
//   - Disjoint-set forest: array-backed union-find from package dsu, with
//     iterative path compression and union by rank.
//
//   - Constrained greedy selector: Kruskal that also rejects an edge when an
//     endpoint would exceed Policy.MaxDegree, except for one optional hub.
//
//   - Connectivity repair: the cheapest cross-component edges, policy ignored,
//     until a single component remains.
//
// Policies
//
//	ClassicPolicy()  — cap 2, no hub, no jitter.
//	HubPolicy()      — cap 2, one hub at 3, jitter.
//	WideHubPolicy()  — cap 3, one hub at 4, jitter.
//	TreePolicy()     — no cap (plain Euclidean MST).
//
// Error Conditions
//
//   - ErrEmptyID, ErrDuplicateID, ErrNonFiniteCoordinate — point contract.
//   - ErrInvalidPolicy — negative MaxDegree.
//   - ErrInvalidDistance — a custom DistanceFn returned NaN, ±Inf or < 0.
//
// Determinism
//
//	Identical points and policy produce bit-identical output, including edge
//	order, regardless of the order the points were supplied in.
//
// Complexity: O(n² log n) time and O(n²) space; n is small by product design.
package constellation
