package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/autograph/bfs"
)

// ExampleBFS checks connectivity of a graph given by a weight table and a
// threshold, the way the affinity threshold search does.
func ExampleBFS() {
	w := [][]float64{
		{0, 0.9, 0.1},
		{0.9, 0, 0.4},
		{0.1, 0.4, 0},
	}
	g := bfs.FuncGraph{N: 3, Edge: func(u, v int) bool { return w[u][v] > 0.3 }}
	res, _ := bfs.BFS(g, 0)
	fmt.Println(res.Order, res.Reached() == g.Order())
	// Output: [0 1 2] true
}
