// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted
// index graphs.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all edges (O(V²)) to detect negative weights and fail fast.
//   - We treat any edge with weight ≥ InfEdgeThreshold as an impassable “wall”.
//   - We stop exploring once the minimum distance in the heap exceeds MaxDistance.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"
)

// Dijkstra computes shortest distances from the source vertex (Options.Source)
// to all other vertices of g.
//
// Preconditions and validation (in order):
//  1. options are valid (ErrBadMaxDistance, ErrBadInfThreshold).
//  2. Source is set (ErrNoSource).
//  3. g is non-nil (ErrNilGraph).
//  4. Source is a vertex (ErrVertexNotFound).
//  5. No edge has negative weight (ErrNegativeWeight).
//
// Complexity: O(V² + E log V) time, O(V + E) space.
func Dijkstra(g Graph, opts ...Option) ([]float64, []int, error) {
	// 1) Build and validate Options
	cfg := DefaultOptions(-1)
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, nil, cfg.err
	}

	// 2) Validate Source is provided
	if cfg.Source < 0 {
		return nil, nil, ErrNoSource
	}

	// 3) Validate graph is non-nil
	if g == nil {
		return nil, nil, ErrNilGraph
	}

	// 4) Validate Source exists in the graph
	n := g.Order()
	if cfg.Source >= n {
		return nil, nil, fmt.Errorf("%w: %d not in [0,%d)", ErrVertexNotFound, cfg.Source, n)
	}

	// 5) Pre-scan all edges to detect negative weights.
	var u, v int
	for u = 0; u < n; u++ {
		for v = 0; v < n; v++ {
			if w, ok := g.Weight(u, v); ok && w < 0 {
				return nil, nil, fmt.Errorf("%w: edge %d→%d weight=%g", ErrNegativeWeight, u, v, w)
			}
		}
	}

	r := &runner{
		g:       g,
		n:       n,
		options: cfg,
		dist:    make([]float64, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	r.init()
	r.process()

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       Graph     // The input graph; read-only within Dijkstra.
	n       int       // Number of vertices.
	options Options   // Configuration options (Source, thresholds, etc.).
	dist    []float64 // Current best distance from Source per vertex.
	prev    []int     // Predecessor on the shortest path per vertex.
	visited []bool    // Tracks if a vertex's distance is finalized.
	pq      nodePQ    // Min-heap of *nodeItem for lazy priority queue.
}

// init sets dist to +Inf, prev to -1, and pushes Source=0 into the heap.
func (r *runner) init() {
	for v := 0; v < r.n; v++ {
		r.dist[v] = math.Inf(1)
		r.prev[v] = -1
	}
	r.dist[r.options.Source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process repeatedly extracts the vertex with the minimum distance and relaxes
// its outgoing edges, until the heap is empty or MaxDistance is exceeded.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// Skip stale heap entries.
		if r.visited[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.visited[u] = true
		r.relax(u)
	}
}

// relax examines each edge u→v and improves dist[v] when a strictly shorter
// path is found, recording u as the predecessor of v.
func (r *runner) relax(u int) {
	var (
		v       int
		w       float64
		ok      bool
		newDist float64
	)
	for v = 0; v < r.n; v++ {
		if v == u || r.visited[v] {
			continue
		}
		if w, ok = r.g.Weight(u, v); !ok {
			continue
		}
		if w >= r.options.InfEdgeThreshold {
			continue
		}

		newDist = r.dist[u] + w
		if newDist > r.options.MaxDistance {
			continue
		}
		// Strict "<" keeps the first-found predecessor on ties.
		if newDist >= r.dist[v] {
			continue
		}

		r.dist[v] = newDist
		r.prev[v] = u
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}
}

// nodeItem represents a vertex and its current distance from the source.
type nodeItem struct {
	id   int     // vertex index
	dist float64 // distance from source
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending, with the
// vertex index as tie-breaker so that the settle order is deterministic.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance, then by vertex index.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
