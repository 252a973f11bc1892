// Package bfs provides breadth-first search over dense index graphs,
// returning unweighted shortest-path depths, parent links, and visit order.
//
// What
//
//   - Explore vertices 0..Order()-1 in non-decreasing distance (edge count)
//     from a start vertex, following Graph.Adjacent.
//   - Returns a Result containing:
//   - Order:  visit sequence
//   - Depth:  per-vertex distance from start (-1 when unreached)
//   - Parent: per-vertex predecessor in the BFS tree (-1 for start/unreached)
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a vertex is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - Connectivity of a thresholded similarity graph is the inner test of the
//     affinity threshold search; Components gives the component breakdown
//     used in diagnostics.
//
// Determinism
//
//	Neighbors are scanned in ascending index order, so the visit sequence is
//	fully reproducible.
//
// Complexity (V = Order())
//
//   - Time:   O(V²)  (adjacency is probed for every ordered pair once)
//   - Memory: O(V)
//
// Usage
//
//	res, err := bfs.BFS(g, 0)
//	if err != nil {
//	    // ErrGraphNil, ErrStartOutOfRange, ErrOptionViolation, or hook errors
//	}
//	connected := res.Reached() == g.Order()
//
// Errors
//
//   - ErrGraphNil         if the graph is nil.
//   - ErrStartOutOfRange  if the start vertex is not in 0..Order()-1.
//   - ErrOptionViolation  if invalid Option (e.g. negative MaxDepth).
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
