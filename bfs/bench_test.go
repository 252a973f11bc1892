package bfs_test

import (
	"testing"

	"github.com/katalvlaran/autograph/bfs"
)

// BenchmarkBFS_Complete measures BFS on a complete graph of N vertices.
func BenchmarkBFS_Complete(b *testing.B) {
	const N = 500
	g := bfs.FuncGraph{N: N, Edge: func(u, v int) bool { return u != v }}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0)
	}
}

// BenchmarkBFS_Chain measures BFS on a path graph, the worst case for depth.
func BenchmarkBFS_Chain(b *testing.B) {
	const N = 500
	g := bfs.FuncGraph{N: N, Edge: func(u, v int) bool { return u-v == 1 || v-u == 1 }}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.BFS(g, 0)
	}
}
