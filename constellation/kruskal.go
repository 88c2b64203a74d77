// SPDX-License-Identifier: MIT
// Package: zola/constellation
//
// kruskal.go — degree-constrained Kruskal with connectivity repair.
//
// Contract:
//   • n < 2 ⇒ empty, non-nil result.
//   • n ≥ 2 ⇒ exactly n-1 edges forming one spanning tree.
//   • Greedy edges honor Policy.MaxDegree; at most one hub reaches MaxDegree+1.
//   • Repair edges ignore the policy. On the complete candidate graph repair
//     can only fire when MaxDegree == 1: any tree component has a leaf of
//     degree ≤ 1, so with a cap ≥ 2 greedy already yields one component.
//   • Never panics on caller input; returns sentinel errors from types.go.

package constellation

import (
	"github.com/armaan-choudhary/zola/dsu"
)

// noHub marks that no hub has been designated yet.
const noHub = -1

// Build computes the constellation lines for one page of points.
// It is BuildDetailed without the bookkeeping.
func Build(points []Point, policy Policy) ([]Edge, error) {
	res, err := BuildDetailed(points, policy)
	if err != nil {
		return nil, err
	}

	return res.Edges, nil
}

// BuildDetailed computes the constellation lines and reports how they were
// chosen.
//
// Steps:
//  1. Validate policy and points.
//  2. Rank all pairs by the policy's distance oracle.
//  3. Greedy pass: Kruskal under the degree policy.
//  4. Repair pass: cheapest cross-component edges until one component is left.
//  5. Record the hub and total length.
//
// Complexity: O(n² log n) time, O(n²) space. Each call owns its forest and
// degree counters, so concurrent calls share nothing.
func BuildDetailed(points []Point, policy Policy) (Result, error) {
	// 1. Validate inputs; report the first violation.
	if err := policy.Validate(); err != nil {
		return Result{}, err
	}
	if err := Validate(points); err != nil {
		return Result{}, err
	}

	n := len(points)
	res := Result{Edges: []Edge{}}
	if n < 2 {
		// Zero or one star: nothing to connect.
		return res, nil
	}

	// 2. Rank candidates; ties break on canonical ID pairs.
	cands, err := rankCandidates(points, policy.distanceFn())
	if err != nil {
		return Result{}, err
	}

	forest := dsu.New(n)             // one singleton set per star
	res.Edges = make([]Edge, 0, n-1) // a spanning tree has exactly n-1 lines

	// 3. Greedy pass under the degree policy.
	sel := newSelector(policy, n) // degree counters and hub, scratch per call
	for _, c := range cands {
		// Every star already connected: no later candidate can be useful.
		if forest.Components() == 1 {
			break
		}
		if forest.Connected(c.lo, c.hi) {
			// Same component: the edge would close a cycle.
			continue
		}
		// Degree cap (or the single hub) refuses this line; try the next one.
		if !sel.admit(c.lo, c.hi) {
			continue
		}
		// Accepted: merge the two components and keep the line.
		forest.Union(c.lo, c.hi)
		res.Edges = append(res.Edges, edgeOf(points, c))
	}
	res.Greedy = len(res.Edges) // lines chosen under the policy

	// 4. Repair: the ranked list is already sorted, so one forward scan picks
	//    the cheapest cross-component edge at every step.
	for _, c := range cands {
		// Stop as soon as the forest is a single tree.
		if forest.Components() == 1 {
			break
		}
		// Union is false for same-component pairs; degrees are ignored here.
		if forest.Union(c.lo, c.hi) {
			res.Edges = append(res.Edges, edgeOf(points, c))
		}
	}
	res.Repaired = len(res.Edges) - res.Greedy // lines that bypassed the cap

	// 5. Report the hub, if one was designated, and the drawn length.
	if sel.hub != noHub {
		res.Hub, res.HasHub = points[sel.hub].ID, true
	}
	res.Length = TotalLength(res.Edges)

	return res, nil
}

// selector tracks degrees and the hub for the greedy pass.
type selector struct {
	maxDegree int
	allowHub  bool
	degree    []int
	hub       int
}

func newSelector(p Policy, n int) *selector {
	return &selector{
		maxDegree: p.MaxDegree,
		allowHub:  p.HubAllowance,
		degree:    make([]int, n),
		hub:       noHub,
	}
}

// admit decides whether edge (u,v) may be accepted and, if so, records it.
//
// An endpoint overflows when its degree would exceed maxDegree. With no
// overflow the edge is accepted. With exactly one overflowing endpoint the
// edge is accepted only under hub allowance, when that endpoint already is
// the hub (and stays within maxDegree+1) or no hub exists yet, in which
// case it becomes the hub. Two overflowing endpoints are always rejected:
// only one hub may exist.
func (s *selector) admit(u, v int) bool {
	if s.maxDegree != Unbounded {
		overU := s.degree[u]+1 > s.maxDegree
		overV := s.degree[v]+1 > s.maxDegree

		switch {
		case overU && overV:
			return false
		case overU:
			if !s.claimHub(u) {
				return false
			}
		case overV:
			if !s.claimHub(v) {
				return false
			}
		}
	}

	s.degree[u]++
	s.degree[v]++

	return true
}

// claimHub reports whether x may take one line beyond the cap, designating
// it as the hub when none exists.
func (s *selector) claimHub(x int) bool {
	if !s.allowHub || s.degree[x]+1 > s.maxDegree+1 {
		return false
	}
	switch s.hub {
	case x:
		return true
	case noHub:
		s.hub = x
		return true
	default:
		return false
	}
}

func edgeOf(points []Point, c candidate) Edge {
	return Edge{A: points[c.lo], B: points[c.hi], Distance: c.dist}
}
