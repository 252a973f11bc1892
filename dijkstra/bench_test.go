package dijkstra_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/autograph/dijkstra"
	"github.com/katalvlaran/autograph/matrix"
)

// BenchmarkDijkstra_Dense200 measures a single-source run on a complete
// 200-vertex weight table.
func BenchmarkDijkstra_Dense200(b *testing.B) {
	const n = 200
	rng := rand.New(rand.NewSource(1))
	m, _ := matrix.NewSquare(n)
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			w := rng.Float64()
			_ = m.Set(u, v, w)
			_ = m.Set(v, u, w)
		}
	}
	g := dijkstra.DenseGraph{M: m}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = dijkstra.Dijkstra(g, dijkstra.Source(0), dijkstra.WithReturnPath())
	}
}
