// SPDX-License-Identifier: MIT
package dsu_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/armaan-choudhary/zola/dsu"
)

// TestNew_Singletons verifies that a fresh forest holds n singleton sets.
func TestNew_Singletons(t *testing.T) {
	f := dsu.New(5)
	assert.Equal(t, 5, f.Len())
	assert.Equal(t, 5, f.Components())
	for i := 0; i < 5; i++ {
		assert.Equal(t, i, f.Find(i))
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4}, f.Roots())
}

// TestNew_NegativeSize treats negative sizes as an empty forest.
func TestNew_NegativeSize(t *testing.T) {
	f := dsu.New(-3)
	assert.Zero(t, f.Len())
	assert.Zero(t, f.Components())
	assert.Empty(t, f.Roots())
}

// TestUnion_ReportsMerge checks the boolean contract of Union.
func TestUnion_ReportsMerge(t *testing.T) {
	f := dsu.New(4)

	assert.True(t, f.Union(0, 1))
	assert.False(t, f.Union(1, 0), "already joined")
	assert.True(t, f.Union(2, 3))
	assert.Equal(t, 2, f.Components())

	assert.True(t, f.Connected(0, 1))
	assert.False(t, f.Connected(1, 2))

	assert.True(t, f.Union(1, 3))
	assert.Equal(t, 1, f.Components())
	assert.Len(t, f.Roots(), 1)
	for i := 0; i < 4; i++ {
		assert.True(t, f.Connected(0, i))
	}
}

// TestFind_PathCompression builds a long chain and checks that every node
// points at the root after a single Find from the tail.
func TestFind_PathCompression(t *testing.T) {
	const n = 1 << 12
	f := dsu.New(n)
	// Chain unions keep rank small, but many finds over a long forest must
	// not recurse; this also exercises the iterative walk.
	for i := 1; i < n; i++ {
		require.True(t, f.Union(i-1, i))
	}
	root := f.Find(n - 1)
	for i := 0; i < n; i++ {
		assert.Equal(t, root, f.Find(i))
	}
	assert.Equal(t, 1, f.Components())
}

// TestUnion_MatchesNaivePartition compares the forest against a naive
// label-relabel partition under a random sequence of unions.
func TestUnion_MatchesNaivePartition(t *testing.T) {
	const n = 64
	r := rand.New(rand.NewSource(42))
	f := dsu.New(n)

	label := make([]int, n)
	for i := range label {
		label[i] = i
	}
	relabel := func(from, to int) {
		for i := range label {
			if label[i] == from {
				label[i] = to
			}
		}
	}

	for step := 0; step < 200; step++ {
		a, b := r.Intn(n), r.Intn(n)
		wantMerge := label[a] != label[b]
		if wantMerge {
			relabel(label[a], label[b])
		}
		assert.Equal(t, wantMerge, f.Union(a, b), "step %d union(%d,%d)", step, a, b)
	}

	distinct := map[int]struct{}{}
	for i := 0; i < n; i++ {
		distinct[label[i]] = struct{}{}
		for j := 0; j < n; j++ {
			assert.Equal(t, label[i] == label[j], f.Connected(i, j))
		}
	}
	assert.Equal(t, len(distinct), f.Components())
}
