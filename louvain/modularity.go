package louvain

import (
	"fmt"
	"math"

	"github.com/katalvlaran/autograph/matrix"
	"github.com/katalvlaran/autograph/partition"
)

// graph is one level of the hierarchy: a dense symmetric weight table whose
// diagonal holds self-loop weight.
type graph struct {
	n    int
	w    [][]float64
	k    []float64 // strength, self-loop counted twice
	m2   float64   // 2m = Σ k
	nbrs [][]int   // j ≠ i with w_ij > 0, ascending
}

func newGraph(w [][]float64) *graph {
	n := len(w)
	g := &graph{n: n, w: w, k: make([]float64, n), nbrs: make([][]int, n)}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				g.k[i] += 2 * w[i][i]
				continue
			}
			if w[i][j] > 0 {
				g.k[i] += w[i][j]
				g.nbrs[i] = append(g.nbrs[i], j)
			}
		}
		g.m2 += g.k[i]
	}

	return g
}

// fromDense copies a validated table into a level-0 graph.
func fromDense(m *matrix.Dense) *graph {
	w := m.ToRows()

	return newGraph(w)
}

// modularity evaluates Q for labels comm (values in [0, n)).
func (g *graph) modularity(comm []int, gamma float64) float64 {
	in := make([]float64, g.n)
	tot := make([]float64, g.n)
	var i, j int
	for i = 0; i < g.n; i++ {
		c := comm[i]
		tot[c] += g.k[i]
		in[c] += 2 * g.w[i][i]
		for _, j = range g.nbrs[i] {
			if comm[j] == c {
				in[c] += g.w[i][j]
			}
		}
	}
	var q float64
	for c := 0; c < g.n; c++ {
		if tot[c] == 0 && in[c] == 0 {
			continue
		}
		f := tot[c] / g.m2
		q += in[c]/g.m2 - gamma*f*f
	}

	return q
}

// Modularity returns Q of partition p over the weight table w at resolution
// gamma, using the same self-loop convention as Louvain.
func Modularity(w *matrix.Dense, p partition.Partition, gamma float64) (float64, error) {
	if err := matrix.ValidateAffinity(w); err != nil {
		return 0, err
	}
	if !(gamma > 0) || math.IsInf(gamma, 0) {
		return 0, fmt.Errorf("%w: got %v", ErrBadResolution, gamma)
	}
	if p.Len() != w.Rows() {
		return 0, fmt.Errorf("%w: table %d, partition %d", partition.ErrLength, w.Rows(), p.Len())
	}
	g := fromDense(w)
	if g.m2 == 0 {
		return 0, ErrZeroWeight
	}

	return g.modularity(p.Canonical().Labels(), gamma), nil
}
