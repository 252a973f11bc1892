package nmrclust_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/autograph/matrix"
	"github.com/katalvlaran/autograph/nmrclust"
)

func twoPairs(t *testing.T) *matrix.Dense {
	t.Helper()
	d, err := matrix.FromRows([][]float64{
		{0, 0.1, 5, 5},
		{0.1, 0, 5, 5},
		{5, 5, 0, 0.1},
		{5, 5, 0.1, 0},
	})
	require.NoError(t, err)

	return d
}

// pointTable returns the distance table of points on a line.
func pointTable(t *testing.T, xs []float64) *matrix.Dense {
	t.Helper()
	n := len(xs)
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			d := xs[i] - xs[j]
			if d < 0 {
				d = -d
			}
			rows[i][j] = d
		}
	}
	d, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return d
}

func TestCluster_TwoPairs(t *testing.T) {
	res, err := nmrclust.Cluster(twoPairs(t))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 1, 1}, res.Partition.Canonical().Labels())

	require.Len(t, res.Steps, 2)
	assert.Equal(t, 2, res.Steps[0].Clusters)
	assert.InDelta(t, 0.1, res.Steps[0].Spread, 1e-12)
	assert.Equal(t, 1.0, res.Steps[0].Normalized)
	assert.Equal(t, 4.0, res.Steps[1].Normalized)
	assert.Equal(t, 0, res.Chosen)
}

func TestCluster_IdenticalConformers(t *testing.T) {
	d, err := matrix.NewSquare(6)
	require.NoError(t, err)
	res, err := nmrclust.Cluster(d)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Partition.NumClusters())
	for _, s := range res.Steps {
		assert.Equal(t, 1.0, s.Normalized)
	}
}

func TestCluster_OneClusterLostPerMerge(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	xs := make([]float64, 15)
	for i := range xs {
		xs[i] = rng.Float64() * 10
	}
	prev := len(xs)
	merges := 0
	_, err := nmrclust.Cluster(pointTable(t, xs), nmrclust.WithOnMerge(func(a, b int, link float64, clusters int) {
		assert.Less(t, a, b)
		assert.GreaterOrEqual(t, link, 0.0)
		assert.Equal(t, prev-1, clusters)
		prev = clusters
		merges++
	}))
	require.NoError(t, err)
	assert.Equal(t, len(xs)-1, merges)
}

func TestCluster_ThreeGroups(t *testing.T) {
	xs := []float64{0, 0.1, 0.2, 10, 10.1, 10.2, 20, 20.1, 20.2}
	res, err := nmrclust.Cluster(pointTable(t, xs))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0, 1, 1, 1, 2, 2, 2}, res.Partition.Canonical().Labels())
	assert.Equal(t, 3, res.Steps[res.Chosen].Clusters)
}

func TestCluster_Errors(t *testing.T) {
	d, err := matrix.NewSquare(2)
	require.NoError(t, err)
	_, err = nmrclust.Cluster(d)
	require.ErrorIs(t, err, nmrclust.ErrInsufficientData)

	bad, err := matrix.FromRows([][]float64{{0, 1, 2}, {1, 0, 1}, {3, 1, 0}})
	require.NoError(t, err)
	_, err = nmrclust.Cluster(bad)
	require.ErrorIs(t, err, matrix.ErrAsymmetry)
}
