package centroid_test

import (
	"fmt"

	"github.com/katalvlaran/autograph/centroid"
	"github.com/katalvlaran/autograph/matrix"
	"github.com/katalvlaran/autograph/partition"
)

func ExampleMedoids() {
	d, _ := matrix.FromRows([][]float64{
		{0, 1, 2, 9},
		{1, 0, 1, 9},
		{2, 1, 0, 9},
		{9, 9, 9, 0},
	})
	p, _ := partition.New([]int{0, 0, 0, 1})
	reps, _ := centroid.Medoids(d, p)
	fmt.Println(reps)
	// Output: [1 3]
}
