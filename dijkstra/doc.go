// Package dijkstra implements Dijkstra's single-source shortest paths on
// dense index graphs with non-negative float64 edge weights.
//
// Overview:
//
//   - Vertices are the indices 0..Order()-1; Graph.Weight reports whether an
//     edge u→v exists and its weight.
//   - A lazy decrease-key min-heap always expands the next-closest vertex.
//   - Supports optional predecessor recovery, distance caps, and “impassable”
//     edge thresholds.
//
// In autograph the graph is a cluster of conformers whose edges are the RMSD
// values below the threshold-derived distance bound; eccentricity and
// betweenness representatives are read off the resulting distance and
// predecessor slices.
//
// Performance and complexity:
//
//   - Time:  O(V² + E log V); adjacency is scanned densely per settled vertex.
//   - Space: O(V + E) including heap entries under lazy decrease-key.
//
// Error handling (sentinel errors):
//
//   - ErrNoSource:        Source was not set.
//   - ErrNilGraph:        nil graph.
//   - ErrVertexNotFound:  Source is not a vertex index.
//   - ErrNegativeWeight:  a negative weight was found by the upfront scan.
//   - ErrBadMaxDistance:  MaxDistance < 0 or NaN.
//   - ErrBadInfThreshold: InfEdgeThreshold <= 0 or NaN.
//
// API reference:
//
//	func Dijkstra(g Graph, opts ...Option) (dist []float64, prev []int, err error)
//
//	  - dist[v] = minimal distance from Source to v, or +Inf if unreachable.
//	  - prev[v] = predecessor of v on one shortest path, -1 for Source and
//	    unreachable vertices. Nil unless WithReturnPath() is given.
package dijkstra
