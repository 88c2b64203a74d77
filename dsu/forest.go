// SPDX-License-Identifier: MIT
// Package: zola/dsu
//
// forest.go — array-backed disjoint-set forest (union-find).
//
// Contract:
//   • Elements are dense indices 0..n-1 assigned by the caller.
//   • Find is iterative with path compression (no recursion depth concerns).
//   • Union merges by rank and reports whether two components were joined.
//   • Out-of-range indices are caller bugs and panic like a slice access.
//
// Determinism:
//   • Union attaches the lower-rank root under the higher-rank root; on equal
//     rank the root of j goes under the root of i. The resulting partition is
//     identical for any sequence of unions; only root identities differ.

// Package dsu provides a compact disjoint-set forest over dense integer
// indices. It backs the constellation builder and the connectivity checks
// in its tests.
package dsu

// Forest is a disjoint-set forest over the indices 0..Len()-1.
// A Forest is scratch state: it is not safe for concurrent use and is meant
// to be discarded after one computation.
type Forest struct {
	parent     []int // parent[i] == i for roots
	rank       []int // upper bound on tree height, valid for roots only
	components int   // number of disjoint sets
}

// New returns a Forest of n singleton sets.
// Complexity: O(n) time and space.
func New(n int) *Forest {
	if n < 0 {
		// Negative sizes have no meaning; treat as empty forest.
		n = 0
	}
	f := &Forest{
		parent:     make([]int, n),
		rank:       make([]int, n),
		components: n,
	}
	for i := range f.parent {
		f.parent[i] = i
	}

	return f
}

// Len reports the number of elements in the forest.
func (f *Forest) Len() int { return len(f.parent) }

// Components reports the current number of disjoint sets.
func (f *Forest) Components() int { return f.components }

// Find returns the root of the set containing i.
//
// Two passes: walk up to the root, then point every node on the path
// directly at it (full path compression).
// Complexity: O(α(n)) amortized.
func (f *Forest) Find(i int) int {
	root := i
	for f.parent[root] != root {
		root = f.parent[root]
	}
	for f.parent[i] != root {
		next := f.parent[i]
		f.parent[i] = root
		i = next
	}

	return root
}

// Union merges the sets containing i and j. It returns false when i and j
// were already in the same set.
// Complexity: O(α(n)) amortized.
func (f *Forest) Union(i, j int) bool {
	ri, rj := f.Find(i), f.Find(j)
	if ri == rj {
		return false
	}

	// Attach smaller-rank tree under larger-rank root.
	switch {
	case f.rank[ri] < f.rank[rj]:
		f.parent[ri] = rj
	case f.rank[ri] > f.rank[rj]:
		f.parent[rj] = ri
	default:
		f.parent[rj] = ri
		f.rank[ri]++
	}
	f.components--

	return true
}

// Connected reports whether i and j belong to the same set.
func (f *Forest) Connected(i, j int) bool {
	return f.Find(i) == f.Find(j)
}

// Roots returns the distinct roots in ascending index order.
// Complexity: O(n α(n)).
func (f *Forest) Roots() []int {
	roots := make([]int, 0, f.components)
	for i := range f.parent {
		if f.Find(i) == i {
			roots = append(roots, i)
		}
	}

	return roots
}
