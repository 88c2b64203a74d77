// SPDX-License-Identifier: MIT
package dsu_test

import (
	"testing"

	"github.com/armaan-choudhary/zola/dsu"
)

// BenchmarkUnionFind measures a full chain of unions followed by finds.
func BenchmarkUnionFind(b *testing.B) {
	const n = 1024
	for i := 0; i < b.N; i++ {
		f := dsu.New(n)
		for j := 1; j < n; j++ {
			f.Union(j-1, j)
		}
		for j := 0; j < n; j++ {
			_ = f.Find(j)
		}
	}
}
