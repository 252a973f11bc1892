package treecut

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/autograph/matrix"
)

func pathLength(dg *Dendrogram, d *matrix.Dense) float64 {
	leaves := dg.Leaves()
	var s float64
	for p := 1; p < len(leaves); p++ {
		s += d.RawRowView(leaves[p-1])[leaves[p]]
	}

	return s
}

// bruteForce tries every combination of child flips.
func bruteForce(dg *Dendrogram, d *matrix.Dense) float64 {
	internal := len(dg.Nodes) - dg.n
	best := math.Inf(1)
	for mask := 0; mask < 1<<internal; mask++ {
		c := &Dendrogram{Nodes: append([]Node(nil), dg.Nodes...), n: dg.n}
		for k := 0; k < internal; k++ {
			if mask&(1<<k) != 0 {
				nd := &c.Nodes[dg.n+k]
				nd.Left, nd.Right = nd.Right, nd.Left
			}
		}
		best = math.Min(best, pathLength(c, d))
	}

	return best
}

func TestOptimalOrder_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	for trial := 0; trial < 12; trial++ {
		n := 3 + rng.Intn(6)
		rows := make([][]float64, n)
		for i := range rows {
			rows[i] = make([]float64, n)
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				v := 0.1 + rng.Float64()*5
				rows[i][j], rows[j][i] = v, v
			}
		}
		d, err := matrix.FromRows(rows)
		require.NoError(t, err)
		dg, err := Ward(d)
		require.NoError(t, err)

		want := bruteForce(dg, d)
		before := pathLength(dg, d)
		require.NoError(t, dg.OptimalOrder(d))
		got := pathLength(dg, d)
		assert.InDelta(t, want, got, 1e-9, "trial %d", trial)
		assert.LessOrEqual(t, got, before+1e-9)
	}
}

func TestRuns(t *testing.T) {
	h := []float64{0, 5, 5, 0, 5, 0, 5}
	assert.Equal(t, []int{11, 14}, runs(h, 10, 1, 0))
	assert.Equal(t, []int{11}, runs(h, 10, 1, 1))
	assert.Empty(t, runs(h, 0, 6, 0))
}
