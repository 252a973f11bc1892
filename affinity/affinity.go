package affinity

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/autograph/bfs"
	"github.com/katalvlaran/autograph/matrix"
)

// Kernel returns the Gaussian similarity exp(-(eps·d)²) for one distance.
func Kernel(d, eps float64) float64 {
	x := eps * d
	return math.Exp(-x * x)
}

func buildOptions(opts []Option) (Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if !(cfg.Epsilon > 0) || math.IsInf(cfg.Epsilon, 0) {
		return cfg, fmt.Errorf("%w: got %v", ErrBadEpsilon, cfg.Epsilon)
	}

	return cfg, nil
}

// Matrix maps a distance table to its affinity table with a zero diagonal.
// The input is validated as a distance table and left untouched.
func Matrix(d *matrix.Dense, opts ...Option) (*matrix.Dense, error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if err = matrix.ValidateDistance(d); err != nil {
		return nil, err
	}

	return matrix.Apply(d, func(i, j int, v float64) float64 {
		if i == j {
			return 0
		}
		return Kernel(v, cfg.Epsilon)
	})
}

// thresholdGraph is the graph of pairs with affinity strictly above tau.
type thresholdGraph struct {
	a   *matrix.Dense
	tau float64
}

func (g thresholdGraph) Order() int { return g.a.Rows() }

func (g thresholdGraph) Adjacent(u, v int) bool { return g.a.RawRowView(u)[v] > g.tau }

// Connected reports whether the graph with edges A > tau has one component.
func Connected(a *matrix.Dense, tau float64) (bool, error) {
	if err := matrix.ValidateSquare(a); err != nil {
		return false, err
	}
	res, err := bfs.BFS(thresholdGraph{a: a, tau: tau}, 0)
	if err != nil {
		return false, err
	}

	return res.Reached() == a.Rows(), nil
}

// Components returns the connected components of the graph with edges A > tau.
func Components(a *matrix.Dense, tau float64) ([][]int, error) {
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, err
	}

	return bfs.Components(thresholdGraph{a: a, tau: tau})
}

// Values returns the distinct upper-triangle entries of a, sorted in
// descending order, followed by the sentinel 0 when 0 is not already the
// smallest value.
func Values(a *matrix.Dense) []float64 {
	n := a.Rows()
	vals := make([]float64, 0, n*(n-1)/2+1)
	for i := 0; i < n; i++ {
		row := a.RawRowView(i)
		vals = append(vals, row[i+1:]...)
	}
	slices.Sort(vals)
	vals = slices.Compact(vals)
	slices.Reverse(vals)
	if len(vals) == 0 || vals[len(vals)-1] != 0 {
		vals = append(vals, 0)
	}

	return vals
}

// Threshold returns the largest similarity τ, taken from the entries of a
// (or the sentinel 0), such that the graph with edges A > τ is connected.
// For a 1×1 table it returns 0.
func Threshold(a *matrix.Dense) (float64, error) {
	if err := matrix.ValidateAffinity(a); err != nil {
		return 0, err
	}
	if a.Rows() == 1 {
		return 0, nil
	}

	vals := Values(a)
	lo, hi := 0, len(vals)-1
	ok, err := Connected(a, vals[hi])
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, fmt.Errorf("%w (N=%d)", ErrDisconnected, a.Rows())
	}

	// Invariant: vals[lo] disconnected, vals[hi] connected.
	for hi-lo > 1 {
		mid := lo + (hi-lo)/2
		if ok, err = Connected(a, vals[mid]); err != nil {
			return 0, err
		}
		if ok {
			hi = mid
		} else {
			lo = mid
		}
	}

	return vals[hi], nil
}

// Filter returns a new table keeping the entries of a strictly above tau and
// zeroing the rest.
func Filter(a *matrix.Dense, tau float64) (*matrix.Dense, error) {
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, err
	}

	return matrix.Apply(a, func(_, _ int, v float64) float64 {
		if v > tau {
			return v
		}
		return 0
	})
}

// DistanceBound converts a similarity threshold back into the RMSD bound
// sqrt(-ln tau)/eps. An affinity above tau is equivalent to a distance below
// the bound. tau <= 0 yields +Inf and tau >= 1 yields 0.
func DistanceBound(tau float64, opts ...Option) (float64, error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return 0, err
	}
	switch {
	case tau <= 0:
		return math.Inf(1), nil
	case tau >= 1:
		return 0, nil
	}

	return math.Sqrt(-math.Log(tau)) / cfg.Epsilon, nil
}

// InGraph reports whether the pair (i, j), i != j, with distance d is an edge
// of the thresholded distance graph.
func InGraph(d, bound float64) bool {
	return d < bound
}

// FilterDistances returns a new table keeping the distances strictly below
// bound and zeroing the rest (the diagonal stays 0). Zero-distance pairs are
// indistinguishable from removed pairs in the result; graph algorithms that
// need that distinction use InGraph on the unfiltered table.
func FilterDistances(d *matrix.Dense, bound float64) (*matrix.Dense, error) {
	if err := matrix.ValidateSquare(d); err != nil {
		return nil, err
	}

	return matrix.Apply(d, func(i, j int, v float64) float64 {
		if i != j && InGraph(v, bound) {
			return v
		}
		return 0
	})
}
