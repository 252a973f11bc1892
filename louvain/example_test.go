package louvain_test

import (
	"fmt"

	"github.com/katalvlaran/autograph/louvain"
	"github.com/katalvlaran/autograph/matrix"
)

// ExampleLouvain separates two tight pairs joined by weak bridges.
func ExampleLouvain() {
	w, _ := matrix.FromRows([][]float64{
		{0, 1, 0.01, 0},
		{1, 0, 0, 0.01},
		{0.01, 0, 0, 1},
		{0, 0.01, 1, 0},
	})
	res, _ := louvain.Louvain(w)
	fmt.Println(res.Partition.Labels(), res.Levels)
	// Output: [0 0 1 1] 1
}
