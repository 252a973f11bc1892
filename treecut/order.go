package treecut

import (
	"fmt"
	"math"

	"github.com/katalvlaran/autograph/matrix"
)

// span is the half-open range of a subtree's leaves in the pre-order walk.
type span struct{ lo, hi int }

func (s span) has(pos int) bool { return s.lo <= pos && pos < s.hi }

// orderer holds the optimal leaf ordering tables. cost[i][j] is the minimal
// sum of adjacent distances of the subtree rooted at lca(i, j) when ordered
// from leaf i to leaf j; inner[i][j] and outer[i][j] are the adjacent pair
// (k on i's side, m on j's side) where that ordering crosses the root.
type orderer struct {
	dg    *Dendrogram
	d     [][]float64
	order []int
	pos   []int
	spans []span
	cost  [][]float64
	inner [][]int
	outer [][]int
}

// OptimalOrder flips children of dg in place so that the sum of d over
// adjacent leaves of Leaves() is minimal. d must be the table dg was built
// from.
//
// Complexity: O(N³) time, O(N²) memory.
func (dg *Dendrogram) OptimalOrder(d *matrix.Dense) error {
	if err := matrix.ValidateSquare(d); err != nil {
		return err
	}
	if d.Rows() != dg.n {
		return fmt.Errorf("treecut: table %d for %d leaves: %w", d.Rows(), dg.n, matrix.ErrDimensionMismatch)
	}
	if dg.n < 3 {
		return nil
	}

	o := newOrderer(dg, d.ToRows())
	o.fill()
	o.apply()

	return nil
}

func newOrderer(dg *Dendrogram, d [][]float64) *orderer {
	n := dg.n
	o := &orderer{
		dg:    dg,
		d:     d,
		order: dg.Leaves(),
		pos:   make([]int, n),
		spans: make([]span, len(dg.Nodes)),
		cost:  make([][]float64, n),
		inner: make([][]int, n),
		outer: make([][]int, n),
	}
	for p, leaf := range o.order {
		o.pos[leaf] = p
		o.spans[leaf] = span{p, p + 1}
	}
	// Children precede parents in the arena.
	for v := n; v < len(dg.Nodes); v++ {
		nd := dg.Nodes[v]
		o.spans[v] = span{o.spans[nd.Left].lo, o.spans[nd.Right].hi}
	}
	for i := 0; i < n; i++ {
		o.cost[i] = make([]float64, n)
		o.inner[i] = make([]int, n)
		o.outer[i] = make([]int, n)
	}

	return o
}

func (o *orderer) leaves(v int) []int {
	s := o.spans[v]
	return o.order[s.lo:s.hi]
}

// far returns the leaves of the child of c that does not contain leaf i,
// or c itself when c is a leaf.
func (o *orderer) far(c, i int) []int {
	if o.dg.IsLeaf(c) {
		return o.order[o.spans[c].lo:o.spans[c].hi]
	}
	nd := o.dg.Nodes[c]
	if o.spans[nd.Left].has(o.pos[i]) {
		return o.leaves(nd.Right)
	}

	return o.leaves(nd.Left)
}

func (o *orderer) fill() {
	n := o.dg.n
	via := make([]float64, n)
	viaK := make([]int, n)
	for v := n; v < len(o.dg.Nodes); v++ {
		l, r := o.dg.Nodes[v].Left, o.dg.Nodes[v].Right
		right := o.leaves(r)
		for _, i := range o.leaves(l) {
			ks := o.far(l, i)
			// via[m] = min_k cost(i→k) + d(k, m) for every m under r.
			for _, m := range right {
				via[m] = math.Inf(1)
				for _, k := range ks {
					if c := o.cost[i][k] + o.d[k][m]; c < via[m] {
						via[m], viaK[m] = c, k
					}
				}
			}
			for _, j := range right {
				best, bestM := math.Inf(1), -1
				for _, m := range o.far(r, j) {
					if c := via[m] + o.cost[m][j]; c < best {
						best, bestM = c, m
					}
				}
				o.cost[i][j], o.cost[j][i] = best, best
				o.inner[i][j], o.outer[i][j] = viaK[bestM], bestM
				o.inner[j][i], o.outer[j][i] = bestM, viaK[bestM]
			}
		}
	}
}

// apply picks the cheapest end pair at the root and flips children top-down
// so that every subtree runs from its chosen first leaf to its last.
func (o *orderer) apply() {
	root := o.dg.Root()
	l, r := o.dg.Nodes[root].Left, o.dg.Nodes[root].Right
	bi, bj := -1, -1
	best := math.Inf(1)
	for _, i := range o.leaves(l) {
		for _, j := range o.leaves(r) {
			if bi < 0 || o.cost[i][j] < best {
				bi, bj, best = i, j, o.cost[i][j]
			}
		}
	}

	type frame struct{ v, first, last int }
	stack := []frame{{root, bi, bj}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if o.dg.IsLeaf(f.v) {
			continue
		}
		nd := &o.dg.Nodes[f.v]
		if !o.spans[nd.Left].has(o.pos[f.first]) {
			nd.Left, nd.Right = nd.Right, nd.Left
		}
		k, m := o.inner[f.first][f.last], o.outer[f.first][f.last]
		stack = append(stack, frame{nd.Left, f.first, k}, frame{nd.Right, m, f.last})
	}
}
