package rmsd_test

import (
	"fmt"

	"github.com/katalvlaran/autograph/rmsd"
)

// ExampleRMSD compares a two-atom fragment with a stretched copy placed
// elsewhere in space.
func ExampleRMSD() {
	a := rmsd.Frame{{0, 0, 0}, {1, 0, 0}}
	b := rmsd.Frame{{5, 5, 5}, {5, 7, 5}}
	d, _ := rmsd.RMSD(a, b)
	fmt.Printf("%.3f\n", d)
	// Output: 0.500
}
