package partition_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/autograph/matrix"
	"github.com/katalvlaran/autograph/partition"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_CopiesInput(t *testing.T) {
	labels := []int{7, 7, 3}
	p, err := partition.New(labels)
	require.NoError(t, err)
	labels[0] = 99
	assert.Equal(t, 7, p.Label(0))

	_, err = partition.New(nil)
	require.ErrorIs(t, err, partition.ErrEmpty)
}

func TestFromClusters_Coverage(t *testing.T) {
	p, err := partition.FromClusters(4, [][]int{{2, 0}, {1, 3}})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 0, 1}, p.Labels())

	_, err = partition.FromClusters(3, [][]int{{0, 1}, {1, 2}})
	require.ErrorIs(t, err, partition.ErrCoverage)
	_, err = partition.FromClusters(3, [][]int{{0, 1}})
	require.ErrorIs(t, err, partition.ErrCoverage)
	_, err = partition.FromClusters(3, [][]int{{0, 1, 5}})
	require.ErrorIs(t, err, partition.ErrCoverage)
}

func TestCanonicalAndClusters(t *testing.T) {
	p, err := partition.New([]int{5, 2, 5, 9, 2})
	require.NoError(t, err)
	assert.Equal(t, 3, p.NumClusters())
	assert.Equal(t, []int{0, 1, 0, 2, 1}, p.Canonical().Labels())

	cs := p.Clusters()
	require.Len(t, cs, 3)
	assert.Equal(t, partition.Cluster{Label: 5, Members: []int{0, 2}}, cs[0])
	assert.Equal(t, partition.Cluster{Label: 9, Members: []int{3}}, cs[2])
}

// TestClusters_CoverEveryIndexOnce checks coverage on random labelings.
func TestClusters_CoverEveryIndexOnce(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 20; trial++ {
		n := 1 + rng.Intn(30)
		labels := make([]int, n)
		for i := range labels {
			labels[i] = rng.Intn(6) - 2
		}
		p, err := partition.New(labels)
		require.NoError(t, err)

		seen := make([]int, n)
		for _, c := range p.BySize() {
			for _, i := range c.Members {
				seen[i]++
			}
		}
		for i, s := range seen {
			assert.Equal(t, 1, s, "trial %d index %d", trial, i)
		}
	}
}

func TestBySize_TiesByLabel(t *testing.T) {
	p, err := partition.New([]int{4, 1, 1, 4, 0, 2, 2, 2})
	require.NoError(t, err)
	var order []int
	for _, c := range p.BySize() {
		order = append(order, c.Label)
	}
	assert.Equal(t, []int{2, 1, 4, 0}, order)
}

func TestSame(t *testing.T) {
	a, _ := partition.New([]int{0, 0, 1})
	b, _ := partition.New([]int{8, 8, 3})
	c, _ := partition.New([]int{8, 3, 3})
	assert.True(t, partition.Same(a, b))
	assert.False(t, partition.Same(a, c))
}

func TestStats(t *testing.T) {
	d, err := matrix.FromRows([][]float64{
		{0, 0.1, 5, 5, 6},
		{0.1, 0, 5, 5, 6},
		{5, 5, 0, 0.2, 6},
		{5, 5, 0.2, 0, 6},
		{6, 6, 6, 6, 0},
	})
	require.NoError(t, err)
	p, _ := partition.New([]int{0, 0, 1, 1, 2})

	rows, err := partition.Stats(d, p, []int{0, 3, 4})
	require.NoError(t, err)
	require.Len(t, rows, 5)

	assert.Equal(t, partition.Stat{Name: "cluster0", Size: 2, Diameter: 0.1, MeanRMSD: 0.1}, rows[0])
	assert.Equal(t, "cluster1", rows[1].Name)
	assert.InDelta(t, 0.2, rows[1].MeanRMSD, 1e-12)
	assert.Equal(t, partition.Stat{Name: "cluster2", Size: 1}, rows[2])

	assert.Equal(t, partition.GlobalRow, rows[3].Name)
	assert.Equal(t, 5, rows[3].Size)
	assert.Equal(t, 6.0, rows[3].Diameter)

	assert.Equal(t, partition.CentersRow, rows[4].Name)
	assert.Equal(t, 3, rows[4].Size)
	assert.InDelta(t, (5.0+6+6)/3, rows[4].MeanRMSD, 1e-12)

	short, _ := partition.New([]int{0, 0})
	_, err = partition.Stats(d, short, nil)
	require.ErrorIs(t, err, partition.ErrLength)
}
