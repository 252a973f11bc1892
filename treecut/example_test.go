package treecut_test

import (
	"fmt"

	"github.com/katalvlaran/autograph/treecut"
)

// ExampleCut splits the leaves at the start of a long high ridge.
func ExampleCut() {
	bps, _ := treecut.Cut([]float64{1, 1, 9, 9, 9, 1, 1}, treecut.WithMinRunLength(2))
	fmt.Println(bps)
	// Output: [0 3 8]
}
