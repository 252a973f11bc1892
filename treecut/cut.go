package treecut

import (
	"fmt"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/autograph/matrix"
	"github.com/katalvlaran/autograph/partition"
)

func buildOptions(opts []Option) (Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.MinRunLength < 0 {
		return cfg, fmt.Errorf("%w: min run length %d", ErrOptionViolation, cfg.MinRunLength)
	}

	return cfg, nil
}

// runs returns the absolute start offsets of the runs of h above level that
// are directly followed by a value at or below level and are longer than tau.
// h starts at offset base.
func runs(h []float64, base int, level float64, tau int) []int {
	var out []int
	start := -1
	for x, v := range h {
		if v-level > 0 {
			if start < 0 {
				start = x
			}
			continue
		}
		if start >= 0 && x-start > tau {
			out = append(out, base+start)
		}
		start = -1
	}

	return out
}

// adaptive tries the mean level, then below and above it.
func adaptive(h []float64, base, tau int) []int {
	if len(h) == 0 {
		return nil
	}
	mean := stat.Mean(h, nil)
	lo, hi := floats.Min(h), floats.Max(h)
	for _, level := range []float64{mean, (mean + lo) / 2, (mean + hi) / 2} {
		if bps := runs(h, base, level, tau); len(bps) > 0 {
			return bps
		}
	}

	return nil
}

// Cut returns the sorted breakpoints for the in-order merge heights of a
// dendrogram over len(heights)+1 leaves. The first breakpoint is 0 and the
// last is the leaf count.
func Cut(heights []float64, opts ...Option) ([]int, error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	return cut(heights, cfg), nil
}

func cut(heights []float64, cfg Options) []int {
	n := len(heights) + 1
	all := make([]float64, 0, n+1)
	all = append(all, 0)
	all = append(all, heights...)
	all = append(all, 0)

	bps := []int{0, n}
	for round := 1; ; round++ {
		var added []int
		for s := 0; s+1 < len(bps); s++ {
			lo, hi := bps[s], bps[s+1]
			for _, b := range adaptive(all[lo:hi], lo, cfg.MinRunLength) {
				if _, found := slices.BinarySearch(bps, b); !found {
					added = append(added, b)
				}
			}
		}
		if len(added) == 0 {
			return bps
		}
		bps = append(bps, added...)
		slices.Sort(bps)
		bps = slices.Compact(bps)
		if cfg.OnRound != nil {
			cfg.OnRound(round, slices.Clone(bps))
		}
	}
}

// Cluster builds the Ward dendrogram of d, optionally reorders it and cuts it.
func Cluster(d *matrix.Dense, opts ...Option) (*Result, error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	dg, err := Ward(d)
	if err != nil {
		return nil, err
	}
	if cfg.OptimalOrdering {
		if err = dg.OptimalOrder(d); err != nil {
			return nil, err
		}
	}

	leaves := dg.Leaves()
	bps := cut(dg.Heights(), cfg)
	clusters := make([][]int, 0, len(bps)-1)
	for s := 0; s+1 < len(bps); s++ {
		clusters = append(clusters, leaves[bps[s]:bps[s+1]])
	}
	p, err := partition.FromClusters(dg.n, clusters)
	if err != nil {
		return nil, err
	}

	return &Result{Partition: p, Dendrogram: dg, Breakpoints: bps}, nil
}
