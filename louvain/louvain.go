package louvain

import (
	"fmt"
	"math"

	"github.com/katalvlaran/autograph/matrix"
	"github.com/katalvlaran/autograph/partition"
)

// runner carries the options through one invocation.
type runner struct {
	opts Options
}

func buildOptions(opts []Option) (Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if !(cfg.Resolution > 0) || math.IsInf(cfg.Resolution, 0) {
		return cfg, fmt.Errorf("%w: got %v", ErrBadResolution, cfg.Resolution)
	}
	if cfg.Threshold < 0 || math.IsNaN(cfg.Threshold) {
		return cfg, fmt.Errorf("%w: threshold %v", ErrOptionViolation, cfg.Threshold)
	}
	if cfg.MaxIter <= 0 {
		return cfg, fmt.Errorf("%w: max iterations %d", ErrOptionViolation, cfg.MaxIter)
	}

	return cfg, nil
}

// Louvain detects communities in the weight table w.
// The table is not modified.
func Louvain(w *matrix.Dense, opts ...Option) (*Result, error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if err = matrix.ValidateAffinity(w); err != nil {
		return nil, err
	}
	g := fromDense(w)
	if g.m2 == 0 {
		return nil, ErrZeroWeight
	}

	r := &runner{opts: cfg}

	return r.run(g)
}

func (r *runner) run(g *graph) (*Result, error) {
	n := g.n
	labels := make([]int, n)
	for i := range labels {
		labels[i] = i
	}
	q := g.modularity(labels, r.opts.Resolution)
	res := &Result{Modularity: []float64{q}}

	for level := 1; level <= r.opts.MaxIter; level++ {
		comm, k, nq := r.localPhase(g)
		if k == g.n {
			break
		}
		// Simultaneous substitution: every leaf follows its super-node.
		for i := range labels {
			labels[i] = comm[labels[i]]
		}
		res.Levels = level
		res.Modularity = append(res.Modularity, nq)
		if r.opts.OnLevel != nil {
			r.opts.OnLevel(level, k, nq)
		}
		if nq-q <= r.opts.Threshold || k == 1 {
			break
		}
		q = nq
		g = aggregate(g, comm, k)
	}

	p, err := partition.New(labels)
	if err != nil {
		return nil, err
	}
	res.Partition = p.Canonical()

	return res, nil
}

// localPhase moves nodes between communities until a pass stops paying off.
// It returns canonical labels, the community count and the resulting Q.
func (r *runner) localPhase(g *graph) ([]int, int, float64) {
	gamma := r.opts.Resolution
	comm := make([]int, g.n)
	tot := make([]float64, g.n)
	for i := range comm {
		comm[i] = i
		tot[i] = g.k[i]
	}
	q := g.modularity(comm, gamma)

	// Scratch for neighbour-community weights, reset after each node.
	link := make([]float64, g.n)
	order := make([]int, 0, g.n)
	seen := make([]bool, g.n)

	gain := func(kIn, totC, ki float64) float64 {
		return 2*kIn/g.m2 - 2*gamma*totC*ki/(g.m2*g.m2)
	}

	for pass := 0; pass < r.opts.MaxIter; pass++ {
		moved := false
		for i := 0; i < g.n; i++ {
			own := comm[i]
			ki := g.k[i]
			for _, j := range g.nbrs[i] {
				c := comm[j]
				if !seen[c] {
					seen[c] = true
					order = append(order, c)
				}
				link[c] += g.w[i][j]
			}

			tot[own] -= ki
			best := own
			bestGain := gain(link[own], tot[own], ki)
			for _, c := range order {
				if c == own {
					continue
				}
				if gv := gain(link[c], tot[c], ki); gv > bestGain {
					best, bestGain = c, gv
				}
			}
			tot[best] += ki
			if best != own {
				comm[i] = best
				moved = true
			}

			for _, c := range order {
				link[c] = 0
				seen[c] = false
			}
			order = order[:0]
		}
		if !moved {
			break
		}
		nq := g.modularity(comm, gamma)
		gained := nq - q
		q = nq
		if gained <= r.opts.Threshold {
			break
		}
	}

	k := canonicalize(comm)

	return comm, k, g.modularity(comm, gamma)
}

// canonicalize relabels comm in place to 0..k-1 by first appearance and
// returns k.
func canonicalize(comm []int) int {
	remap := make(map[int]int, len(comm))
	for i, c := range comm {
		v, ok := remap[c]
		if !ok {
			v = len(remap)
			remap[c] = v
		}
		comm[i] = v
	}

	return len(remap)
}

// aggregate contracts g by the canonical labels comm into a k-node graph.
func aggregate(g *graph, comm []int, k int) *graph {
	w := make([][]float64, k)
	for c := range w {
		w[c] = make([]float64, k)
	}
	var i, j int
	for i = 0; i < g.n; i++ {
		ci := comm[i]
		w[ci][ci] += g.w[i][i]
		for _, j = range g.nbrs[i] {
			cj := comm[j]
			if ci != cj {
				w[ci][cj] += g.w[i][j]
			} else if i < j {
				w[ci][ci] += g.w[i][j]
			}
		}
	}

	return newGraph(w)
}
