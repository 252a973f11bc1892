// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on weighted index graphs.
package dijkstra

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/autograph/matrix"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNoSource indicates that no source vertex was configured.
	ErrNoSource = errors.New("dijkstra: source vertex not set")

	// ErrNilGraph indicates that a nil Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source index is not a vertex.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was negative or NaN.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was zero, negative or NaN,
	// which would treat every edge (including zero-weight edges) as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Graph is a weighted graph over vertices 0..Order()-1.
type Graph interface {
	// Order returns the number of vertices.
	Order() int

	// Weight returns the weight of edge u→v and whether the edge exists.
	Weight(u, v int) (float64, bool)
}

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – starting vertex index (must be in 0..Order()-1).
// ReturnPath       – if true, return the predecessor slice; otherwise prev is nil.
// MaxDistance      – vertices farther than this are not settled. Default +Inf.
// InfEdgeThreshold – edges with weight ≥ this threshold are impassable. Default +Inf.
type Options struct {
	Source           int     // index of the source vertex, -1 when unset
	ReturnPath       bool    // whether to return the predecessor slice
	MaxDistance      float64 // maximum distance to explore
	InfEdgeThreshold float64 // weight threshold at or above which edges are non-traversable

	err error // first invalid option, surfaced by Dijkstra
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex index.
func Source(v int) Option {
	return func(o *Options) {
		o.Source = v
	}
}

// WithReturnPath enables generation of the predecessor slice in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold. Vertices whose
// shortest distance would exceed this value are not explored.
// Negative or NaN values make Dijkstra return ErrBadMaxDistance.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			o.err = fmt.Errorf("%w: got %v", ErrBadMaxDistance, max)
			return
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold at or above which edges are
// considered non-traversable. Zero, negative or NaN values make Dijkstra
// return ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if threshold <= 0 || math.IsNaN(threshold) {
			o.err = fmt.Errorf("%w: got %v", ErrBadInfThreshold, threshold)
			return
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct initialized with defaults for the
// given source vertex.
//
// Defaults:
//   - ReturnPath:       false
//   - MaxDistance:      +Inf (explore all reachable)
//   - InfEdgeThreshold: +Inf (no edge treated as impassable)
func DefaultOptions(source int) Options {
	return Options{
		Source:           source,
		ReturnPath:       false,
		MaxDistance:      math.Inf(1),
		InfEdgeThreshold: math.Inf(1),
	}
}

// PathTo rebuilds the vertex sequence source → … → dest from a predecessor
// slice returned with WithReturnPath. It returns nil when dest is unreachable
// (dist[dest] is +Inf).
func PathTo(dist []float64, prev []int, dest int) []int {
	if dest < 0 || dest >= len(dist) || math.IsInf(dist[dest], 1) {
		return nil
	}
	var path []int
	for cur := dest; cur >= 0; cur = prev[cur] {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// DenseGraph exposes a square weight table as a Graph. Edge decides which
// off-diagonal entries are edges; a nil Edge treats every off-diagonal entry
// as an edge. Diagonal entries are never edges.
type DenseGraph struct {
	M    *matrix.Dense
	Edge func(u, v int, w float64) bool
}

// Order returns the table dimension.
func (g DenseGraph) Order() int { return g.M.Rows() }

// Weight returns M[u][v] when (u, v) is an edge.
func (g DenseGraph) Weight(u, v int) (float64, bool) {
	if u == v {
		return 0, false
	}
	w := g.M.RawRowView(u)[v]
	if g.Edge != nil && !g.Edge(u, v, w) {
		return 0, false
	}

	return w, true
}
