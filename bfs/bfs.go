// Package bfs provides breadth-first search over an index Graph,
// returning unweighted shortest-path distances, parent links, and visit order.
package bfs

import (
	"fmt"
)

// queueItem pairs a vertex with its BFS depth.
type queueItem struct {
	v     int
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   Graph
	n       int
	opts    BFSOptions
	queue   []queueItem
	visited []bool
	res     *Result
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartOutOfRange for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
func BFS(g Graph, start int, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := g.Order()
	if start < 0 || start >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrStartOutOfRange, start, n)
	}

	w := &walker{
		graph:   g,
		n:       n,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		res: &Result{
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
	}
	for v := 0; v < n; v++ {
		w.res.Depth[v] = -1
		w.res.Parent[v] = -1
	}

	// Seed queue with start vertex (no parent)
	w.enqueue(start, 0, -1)

	return w.res, w.loop()
}

// enqueue marks v visited at depth d, records its parent, calls OnEnqueue,
// and adds it to the queue.
func (w *walker) enqueue(v, d, parent int) {
	w.visited[v] = true
	w.res.Depth[v] = d
	w.res.Parent[v] = parent
	w.opts.OnEnqueue(v, d)
	w.queue = append(w.queue, queueItem{v: v, depth: d})
}

// loop processes the queue until empty or a hook error.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.v, item.depth)

	return item
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.v)
	if err := w.opts.OnVisit(item.v, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", item.v, err)
	}

	return nil
}

// enqueueNeighbors scans candidate neighbors in index order, applies
// filtering and MaxDepth, and enqueues each unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for nbr := 0; nbr < w.n; nbr++ {
		if w.visited[nbr] || nbr == item.v {
			continue
		}
		if !w.graph.Adjacent(item.v, nbr) || !w.opts.FilterNeighbor(item.v, nbr) {
			continue
		}
		w.enqueue(nbr, nextDepth, item.v)
	}
}

// Components partitions the vertices of an undirected g into connected
// components. Components are ordered by their smallest vertex and each
// component lists vertices in BFS visit order.
func Components(g Graph) ([][]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	n := g.Order()
	seen := make([]bool, n)
	var out [][]int
	for s := 0; s < n; s++ {
		if seen[s] {
			continue
		}
		res, err := BFS(g, s, WithFilterNeighbor(func(_, nbr int) bool { return !seen[nbr] }))
		if err != nil {
			return nil, err
		}
		for _, v := range res.Order {
			seen[v] = true
		}
		out = append(out, res.Order)
	}

	return out, nil
}
