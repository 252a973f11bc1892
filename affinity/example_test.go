package affinity_test

import (
	"fmt"

	"github.com/katalvlaran/autograph/affinity"
	"github.com/katalvlaran/autograph/matrix"
)

// ExampleThreshold finds the strictest connected threshold of a three
// conformer chain and reports it as an RMSD bound.
func ExampleThreshold() {
	d, _ := matrix.FromRows([][]float64{
		{0, 1, 3},
		{1, 0, 2},
		{3, 2, 0},
	})
	a, _ := affinity.Matrix(d)
	tau, _ := affinity.Threshold(a)
	bound, _ := affinity.DistanceBound(tau)
	fmt.Printf("tau=%.6f bound=%.2f\n", tau, bound)
	// Output: tau=0.000123 bound=3.00
}
