package nmrclust

import (
	"fmt"

	"github.com/katalvlaran/autograph/matrix"
	"github.com/katalvlaran/autograph/partition"
)

// merger holds the agglomeration state. Cluster ids are the indices of
// their first member; absorbed ids are removed from active.
type merger struct {
	link    [][]float64
	members [][]int
	intra   []float64 // Σ of intra-cluster pairwise RMSD, unordered pairs
	active  []int
	opts    Options
}

func newMerger(d *matrix.Dense, opts Options) *merger {
	n := d.Rows()
	m := &merger{
		link:    d.ToRows(),
		members: make([][]int, n),
		intra:   make([]float64, n),
		active:  make([]int, n),
		opts:    opts,
	}
	for i := 0; i < n; i++ {
		m.members[i] = []int{i}
		m.active[i] = i
	}

	return m
}

func (m *merger) hasSingleton() bool {
	for _, c := range m.active {
		if len(m.members[c]) == 1 {
			return true
		}
	}

	return false
}

// merge joins the closest pair of active clusters.
func (m *merger) merge() {
	ai, bi := 0, 1
	best := m.link[m.active[0]][m.active[1]]
	var x, y int
	for x = 0; x < len(m.active); x++ {
		row := m.link[m.active[x]]
		for y = x + 1; y < len(m.active); y++ {
			if v := row[m.active[y]]; v < best {
				best, ai, bi = v, x, y
			}
		}
	}
	a, b := m.active[ai], m.active[bi]
	sa, sb := float64(len(m.members[a])), float64(len(m.members[b]))

	for _, c := range m.active {
		if c == a || c == b {
			continue
		}
		v := (sa*m.link[a][c] + sb*m.link[b][c]) / (sa + sb)
		m.link[a][c] = v
		m.link[c][a] = v
	}
	m.intra[a] += m.intra[b] + best*sa*sb
	m.members[a] = append(m.members[a], m.members[b]...)
	m.members[b] = nil
	m.active = append(m.active[:bi], m.active[bi+1:]...)

	if m.opts.OnMerge != nil {
		m.opts.OnMerge(a, b, best, len(m.active))
	}
}

// spread is the mean over active clusters of the mean intra-cluster RMSD.
func (m *merger) spread() float64 {
	var s float64
	for _, c := range m.active {
		k := float64(len(m.members[c]))
		if k > 1 {
			s += m.intra[c] / (k * (k - 1) / 2)
		}
	}

	return s / float64(len(m.active))
}

func (m *merger) snapshot() [][]int {
	out := make([][]int, len(m.active))
	for k, c := range m.active {
		out[k] = append([]int(nil), m.members[c]...)
	}

	return out
}

// Cluster runs NMRCLUST on the distance table d.
func Cluster(d *matrix.Dense, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := matrix.ValidateDistance(d); err != nil {
		return nil, err
	}
	n := d.Rows()
	if n < 3 {
		return nil, fmt.Errorf("%w: got %d", ErrInsufficientData, n)
	}

	m := newMerger(d, cfg)
	for m.hasSingleton() && len(m.active) > 2 {
		m.merge()
	}

	var (
		steps     []Step
		snapshots [][][]int
	)
	record := func() {
		steps = append(steps, Step{Clusters: len(m.active), Spread: m.spread()})
		snapshots = append(snapshots, m.snapshot())
	}
	if !m.hasSingleton() {
		record()
	}
	for len(m.active) > 1 {
		m.merge()
		record()
	}

	chosen := penalize(steps, n)
	p, err := partition.FromClusters(n, snapshots[chosen])
	if err != nil {
		return nil, err
	}

	return &Result{Partition: p, Steps: steps, Chosen: chosen}, nil
}

// penalize rescales the spreads into [1, n], fills in the penalties and
// returns the index of the first minimum.
func penalize(steps []Step, n int) int {
	lo, hi := steps[0].Spread, steps[0].Spread
	for _, s := range steps[1:] {
		lo = min(lo, s.Spread)
		hi = max(hi, s.Spread)
	}
	chosen := 0
	for k := range steps {
		norm := 1.0
		if hi > lo {
			norm = float64(n-1)/(hi-lo)*(steps[k].Spread-lo) + 1
		}
		steps[k].Normalized = norm
		steps[k].Penalty = norm + float64(steps[k].Clusters)
		if steps[k].Penalty < steps[chosen].Penalty {
			chosen = k
		}
	}

	return chosen
}
