// SPDX-License-Identifier: MIT
package constellation_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/armaan-choudhary/zola/constellation"
	"github.com/armaan-choudhary/zola/dsu"
)

// randomPoints returns n points with IDs "s0".."s{n-1}" scattered over the
// 0..100 percentage space, reproducible for a given seed.
func randomPoints(n int, seed int64) []constellation.Point {
	r := rand.New(rand.NewSource(seed))
	pts := make([]constellation.Point, n)
	for i := range pts {
		pts[i] = constellation.Point{
			ID: fmt.Sprintf("s%d", i),
			X:  float64(r.Intn(90) + 5),
			Y:  float64(r.Intn(90) + 5),
		}
	}

	return pts
}

// requireSpanningTree checks the structural output contract: n-1 edges,
// no self or duplicate edges, endpoints drawn from the input, one component.
func requireSpanningTree(t *testing.T, points []constellation.Point, edges []constellation.Edge) {
	t.Helper()

	if len(points) < 2 {
		require.NotNil(t, edges)
		require.Empty(t, edges)
		return
	}
	require.Len(t, edges, len(points)-1)

	index := make(map[string]int, len(points))
	for i, p := range points {
		index[p.ID] = i
	}

	seen := make(map[[2]string]struct{}, len(edges))
	f := dsu.New(len(points))
	for _, e := range edges {
		require.NotEqual(t, e.A.ID, e.B.ID, "self edge")
		require.Less(t, e.A.ID, e.B.ID, "edge endpoints must be canonical")

		key := [2]string{e.A.ID, e.B.ID}
		_, dup := seen[key]
		require.False(t, dup, "duplicate edge %v", key)
		seen[key] = struct{}{}

		ia, okA := index[e.A.ID]
		ib, okB := index[e.B.ID]
		require.True(t, okA && okB, "edge endpoint not in input")
		require.Equal(t, points[ia], e.A, "edge must carry real coordinates")
		require.Equal(t, points[ib], e.B, "edge must carry real coordinates")

		require.True(t, f.Union(ia, ib), "edge %v closes a cycle", key)
	}
	require.Equal(t, 1, f.Components())
}

// edgeNames renders edges as "A-B" tokens for compact comparisons.
func edgeNames(edges []constellation.Edge) []string {
	out := make([]string, len(edges))
	for i, e := range edges {
		out[i] = e.A.ID + "-" + e.B.ID
	}

	return out
}

// primLength computes the Euclidean MST weight with the O(n²) dense Prim
// used for metric TSP bounds.
func primLength(points []constellation.Point) float64 {
	n := len(points)
	if n < 2 {
		return 0
	}
	inTree := make([]bool, n)
	best := make([]float64, n)
	for i := range best {
		best[i] = math.Inf(1)
	}
	best[0] = 0

	var total float64
	for it := 0; it < n; it++ {
		u := -1
		for v := 0; v < n; v++ {
			if !inTree[v] && (u < 0 || best[v] < best[u]) {
				u = v
			}
		}
		inTree[u] = true
		total += best[u]
		for v := 0; v < n; v++ {
			if d := constellation.Euclidean(points[u], points[v]); !inTree[v] && d < best[v] {
				best[v] = d
			}
		}
	}

	return total
}
