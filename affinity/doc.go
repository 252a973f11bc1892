// Package affinity turns an RMSD distance table into a similarity graph and
// finds the strictest similarity threshold that keeps that graph connected.
//
// Kernel:
//
//	A[i][j] = exp(-(ε·D[i][j])²), ε = 1 by default; the diagonal is forced
//	to 0 so graph algorithms never see self-loops.
//
// Threshold search:
//
//	The distinct upper-triangle similarities are sorted in descending order
//	and a sentinel 0 is appended. Index k stands for the graph whose edges are
//	the pairs with A > v[k]. Index 0 (the largest value) is always
//	disconnected for N ≥ 2; the sentinel index is checked once and must be
//	connected, otherwise ErrDisconnected is returned. A binary search keeps
//	"lo disconnected, hi connected" until the indices are adjacent and returns
//	v[hi]. Connectivity is a BFS from vertex 0 that must reach all N vertices.
//
// Derived tables:
//
//	Filter keeps affinities > τ. DistanceBound converts τ back into an RMSD
//	bound sqrt(-ln τ)/ε (+Inf for τ = 0); FilterDistances keeps distances
//	below that bound. Both return new matrices.
//
// Complexity: Matrix O(N²); Threshold O(N² log N) (sort) + O(N² log N)
// (BFS per bisection step).
package affinity
