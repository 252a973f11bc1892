package treecut

import (
	"fmt"
	"math"

	"github.com/katalvlaran/autograph/matrix"
)

// Dendrogram is a binary merge tree stored as an arena.
type Dendrogram struct {
	Nodes []Node
	n     int
}

// Len returns the number of leaves.
func (dg *Dendrogram) Len() int { return dg.n }

// Root returns the index of the root node.
func (dg *Dendrogram) Root() int { return len(dg.Nodes) - 1 }

// IsLeaf reports whether v is a leaf.
func (dg *Dendrogram) IsLeaf(v int) bool { return v < dg.n }

// Ward builds the Ward dendrogram of the distance table d.
// Ties go to the first minimal pair in row-major order of the active slots.
//
// Complexity: O(N³) time, O(N²) memory.
func Ward(d *matrix.Dense) (*Dendrogram, error) {
	if err := matrix.ValidateDistance(d); err != nil {
		return nil, err
	}
	n := d.Rows()
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInsufficientData, n)
	}

	dist := d.ToRows()
	dg := &Dendrogram{Nodes: make([]Node, n, 2*n-1), n: n}
	slot := make([]int, n) // slot → node id
	size := make([]float64, n)
	alive := make([]bool, n)
	for i := 0; i < n; i++ {
		dg.Nodes[i] = Node{Left: -1, Right: -1, Size: 1}
		slot[i] = i
		size[i] = 1
		alive[i] = true
	}

	var i, j int
	for step := 0; step < n-1; step++ {
		s, t := -1, -1
		best := math.Inf(1)
		for i = 0; i < n; i++ {
			if !alive[i] {
				continue
			}
			for j = i + 1; j < n; j++ {
				if alive[j] && (s < 0 || dist[i][j] < best) {
					s, t, best = i, j, dist[i][j]
				}
			}
		}

		ns, nt := size[s], size[t]
		for v := 0; v < n; v++ {
			if !alive[v] || v == s || v == t {
				continue
			}
			nv := size[v]
			total := nv + ns + nt
			sq := ((nv+ns)*dist[v][s]*dist[v][s] +
				(nv+nt)*dist[v][t]*dist[v][t] -
				nv*best*best) / total
			nd := math.Sqrt(math.Max(sq, 0))
			dist[v][s], dist[s][v] = nd, nd
		}

		dg.Nodes = append(dg.Nodes, Node{
			Left:   slot[s],
			Right:  slot[t],
			Height: best,
			Size:   int(ns + nt),
		})
		slot[s] = len(dg.Nodes) - 1
		size[s] = ns + nt
		alive[t] = false
	}

	return dg, nil
}

// Leaves returns the leaves in pre-order (left before right).
func (dg *Dendrogram) Leaves() []int {
	out := make([]int, 0, dg.n)
	stack := []int{dg.Root()}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if dg.IsLeaf(v) {
			out = append(out, v)
			continue
		}
		stack = append(stack, dg.Nodes[v].Right, dg.Nodes[v].Left)
	}

	return out
}

// Heights returns the internal-node heights in in-order, so heights[i] is
// the merge joining the leaves at positions i and i+1 of Leaves().
func (dg *Dendrogram) Heights() []float64 {
	out := make([]float64, 0, dg.n-1)
	var stack []int
	cur := dg.Root()
	for cur >= 0 || len(stack) > 0 {
		for cur >= 0 {
			stack = append(stack, cur)
			if dg.IsLeaf(cur) {
				cur = -1
			} else {
				cur = dg.Nodes[cur].Left
			}
		}
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !dg.IsLeaf(v) {
			out = append(out, dg.Nodes[v].Height)
			cur = dg.Nodes[v].Right
		}
	}

	return out
}
