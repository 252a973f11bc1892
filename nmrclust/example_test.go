package nmrclust_test

import (
	"fmt"

	"github.com/katalvlaran/autograph/matrix"
	"github.com/katalvlaran/autograph/nmrclust"
)

func ExampleCluster() {
	d, _ := matrix.FromRows([][]float64{
		{0, 0.1, 5, 5},
		{0.1, 0, 5, 5},
		{5, 5, 0, 0.1},
		{5, 5, 0.1, 0},
	})
	res, _ := nmrclust.Cluster(d)
	for _, s := range res.Steps {
		fmt.Printf("clusters=%d penalty=%.0f\n", s.Clusters, s.Penalty)
	}
	fmt.Println(res.Partition.Labels())
	// Output:
	// clusters=2 penalty=3
	// clusters=1 penalty=5
	// [0 0 1 1]
}
