package louvain_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/community"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/autograph/louvain"
	"github.com/katalvlaran/autograph/matrix"
	"github.com/katalvlaran/autograph/partition"
)

func mustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// randomWeights builds a symmetric table with a zero diagonal and roughly
// half the pairs connected.
func randomWeights(rng *rand.Rand, n int) [][]float64 {
	w := make([][]float64, n)
	for i := range w {
		w[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < 0.5 {
				v := rng.Float64()
				w[i][j], w[j][i] = v, v
			}
		}
	}
	// Keep the graph weighted.
	w[0][1], w[1][0] = 1, 1

	return w
}

// gonumQ evaluates modularity with gonum for a zero-diagonal table.
func gonumQ(w [][]float64, p partition.Partition, gamma float64) float64 {
	g := simple.NewWeightedUndirectedGraph(0, 0)
	for i := range w {
		g.AddNode(simple.Node(i))
	}
	for i := range w {
		for j := i + 1; j < len(w); j++ {
			if w[i][j] > 0 {
				g.SetWeightedEdge(g.NewWeightedEdge(simple.Node(i), simple.Node(j), w[i][j]))
			}
		}
	}
	var comms [][]graph.Node
	for _, c := range p.Clusters() {
		var nodes []graph.Node
		for _, i := range c.Members {
			nodes = append(nodes, simple.Node(i))
		}
		comms = append(comms, nodes)
	}

	return community.Q(g, comms, gamma)
}

func TestLouvain_CompleteGraphCollapses(t *testing.T) {
	w := mustRows(t, [][]float64{
		{0, 1, 1, 1},
		{1, 0, 1, 1},
		{1, 1, 0, 1},
		{1, 1, 1, 0},
	})
	res, err := louvain.Louvain(w)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 0, 0}, res.Partition.Labels())
	assert.InDelta(t, -0.25, res.Modularity[0], 1e-12)
	assert.InDelta(t, 0, res.Q(), 1e-12)
}

func TestLouvain_TwoPairs(t *testing.T) {
	w := mustRows(t, [][]float64{
		{0, 1, 0.01, 0},
		{1, 0, 0, 0.01},
		{0.01, 0, 0, 1},
		{0, 0.01, 1, 0},
	})
	res, err := louvain.Louvain(w)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 1, 1}, res.Partition.Labels())
	assert.Equal(t, 1, res.Levels)
}

func TestLouvain_MatchesGonumModularity(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 15; trial++ {
		n := 3 + rng.Intn(20)
		rows := randomWeights(rng, n)
		w := mustRows(t, rows)

		res, err := louvain.Louvain(w)
		require.NoError(t, err)
		assert.InDelta(t, gonumQ(rows, res.Partition, 1), res.Q(), 1e-9, "trial %d", trial)

		q, err := louvain.Modularity(w, res.Partition, 1)
		require.NoError(t, err)
		assert.InDelta(t, res.Q(), q, 1e-9)
	}
}

func TestLouvain_ModularityNonDecreasing(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 15; trial++ {
		w := mustRows(t, randomWeights(rng, 5+rng.Intn(25)))
		var levels []int
		res, err := louvain.Louvain(w, louvain.WithOnLevel(func(level, _ int, _ float64) {
			levels = append(levels, level)
		}))
		require.NoError(t, err)
		require.Len(t, res.Modularity, res.Levels+1)
		assert.Len(t, levels, res.Levels)
		for l := 1; l < len(res.Modularity); l++ {
			assert.GreaterOrEqual(t, res.Modularity[l], res.Modularity[l-1]-1e-12)
		}
	}
}

func TestLouvain_ResolutionSplits(t *testing.T) {
	w := mustRows(t, [][]float64{
		{0, 1, 1, 1},
		{1, 0, 1, 1},
		{1, 1, 0, 1},
		{1, 1, 1, 0},
	})
	res, err := louvain.Louvain(w, louvain.WithResolution(10))
	require.NoError(t, err)
	assert.Greater(t, res.Partition.NumClusters(), 1)
}

func TestLouvain_Errors(t *testing.T) {
	zero := mustRows(t, [][]float64{{0, 0}, {0, 0}})
	_, err := louvain.Louvain(zero)
	require.ErrorIs(t, err, louvain.ErrZeroWeight)

	w := mustRows(t, [][]float64{{0, 1}, {1, 0}})
	_, err = louvain.Louvain(w, louvain.WithResolution(0))
	require.ErrorIs(t, err, louvain.ErrBadResolution)
	_, err = louvain.Louvain(w, louvain.WithMaxIter(0))
	require.ErrorIs(t, err, louvain.ErrOptionViolation)
	_, err = louvain.Louvain(w, louvain.WithThreshold(-1))
	require.ErrorIs(t, err, louvain.ErrOptionViolation)

	asym := mustRows(t, [][]float64{{0, 1}, {2, 0}})
	_, err = louvain.Louvain(asym)
	require.ErrorIs(t, err, matrix.ErrAsymmetry)

	neg := mustRows(t, [][]float64{{0, -1}, {-1, 0}})
	_, err = louvain.Louvain(neg)
	require.ErrorIs(t, err, matrix.ErrNegative)
}

func TestLouvain_DoesNotMutate(t *testing.T) {
	rows := [][]float64{{0, 1, 0.2}, {1, 0, 0.3}, {0.2, 0.3, 0}}
	w := mustRows(t, rows)
	before := w.Clone()
	_, err := louvain.Louvain(w)
	require.NoError(t, err)
	assert.True(t, matrix.EqualApprox(before, w, 0))
}
