package bfs_test

import (
	"errors"
	"math/rand"
	"sort"
	"testing"

	"github.com/katalvlaran/autograph/bfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// undirected builds a FuncGraph from an edge list.
func undirected(n int, edges [][2]int) bfs.FuncGraph {
	adj := make([][]bool, n)
	for i := range adj {
		adj[i] = make([]bool, n)
	}
	for _, e := range edges {
		adj[e[0]][e[1]] = true
		adj[e[1]][e[0]] = true
	}
	return bfs.FuncGraph{N: n, Edge: func(u, v int) bool { return adj[u][v] }}
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, 0)
	require.ErrorIs(t, err, bfs.ErrGraphNil)

	g := undirected(2, nil)
	_, err = bfs.BFS(g, 2)
	require.ErrorIs(t, err, bfs.ErrStartOutOfRange)

	_, err = bfs.BFS(g, 0, bfs.WithMaxDepth(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)

	_, err = bfs.Components(nil)
	require.ErrorIs(t, err, bfs.ErrGraphNil)
}

// TestBFS_CycleAndDepths covers a 5-cycle.
func TestBFS_CycleAndDepths(t *testing.T) {
	g := undirected(5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}})
	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 4, 2, 3}, res.Order)
	assert.Equal(t, []int{0, 1, 2, 2, 1}, res.Depth)
	assert.Equal(t, 5, res.Reached())

	path, err := res.PathTo(3)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 4, 3}, path)
}

func TestBFS_Unreachable(t *testing.T) {
	g := undirected(4, [][2]int{{0, 1}, {2, 3}})
	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Reached())
	assert.Equal(t, -1, res.Depth[2])

	_, err = res.PathTo(3)
	require.Error(t, err)
}

func TestBFS_MaxDepthAndFilter(t *testing.T) {
	g := undirected(5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}})
	res, err := bfs.BFS(g, 0, bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, res.Order)

	res, err = bfs.BFS(g, 0, bfs.WithFilterNeighbor(func(_, nbr int) bool { return nbr != 2 }))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, res.Order)
}

func TestBFS_Hooks(t *testing.T) {
	g := undirected(3, [][2]int{{0, 1}, {1, 2}})
	var enq, deq []int
	stop := errors.New("stop")
	_, err := bfs.BFS(g, 0,
		bfs.WithOnEnqueue(func(v, _ int) { enq = append(enq, v) }),
		bfs.WithOnDequeue(func(v, _ int) { deq = append(deq, v) }),
		bfs.WithOnVisit(func(v, _ int) error {
			if v == 1 {
				return stop
			}
			return nil
		}),
	)
	require.ErrorIs(t, err, stop)
	assert.Equal(t, []int{0, 1}, enq)
	assert.Equal(t, []int{0, 1}, deq)
}

// TestComponents_MatchesGonum cross-checks component discovery on random
// sparse graphs against gonum's topo.ConnectedComponents.
func TestComponents_MatchesGonum(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for trial := 0; trial < 10; trial++ {
		n := 15
		var edges [][2]int
		ug := simple.NewUndirectedGraph()
		for v := 0; v < n; v++ {
			ug.AddNode(simple.Node(v))
		}
		for u := 0; u < n; u++ {
			for v := u + 1; v < n; v++ {
				if rng.Float64() < 0.08 {
					edges = append(edges, [2]int{u, v})
					ug.SetEdge(simple.Edge{F: simple.Node(u), T: simple.Node(v)})
				}
			}
		}

		got, err := bfs.Components(undirected(n, edges))
		require.NoError(t, err)

		var want [][]int
		for _, cc := range topo.ConnectedComponents(ug) {
			ids := make([]int, 0, len(cc))
			for _, nd := range cc {
				ids = append(ids, int(nd.ID()))
			}
			sort.Ints(ids)
			want = append(want, ids)
		}
		sort.Slice(want, func(i, j int) bool { return want[i][0] < want[j][0] })

		for i := range got {
			sort.Ints(got[i])
		}
		assert.Equal(t, want, got, "trial %d", trial)
	}
}
