package rckmeans

import (
	"fmt"

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
	if cfg.Restarts <= 0 || cfg.MaxIter <= 0 || cfg.Window <= 0 {
		return cfg, fmt.Errorf("%w: restarts=%d max_iter=%d window=%d",
			ErrOptionViolation, cfg.Restarts, cfg.MaxIter, cfg.Window)
	}
	if cfg.Rand == nil {
		cfg.Rand = rngFromSeed(0)
	}

	return cfg, nil
}

// sma is the mean of the last w values, or -1 while fewer than w exist.
func sma(curve []float64, w int) float64 {
	if len(curve) < w {
		return -1
	}

	return stat.Mean(curve[len(curve)-w:], nil)
}

// Cluster runs the k search on the distance table d.
// A table without any non-zero distance yields a single cluster.
func Cluster(d *matrix.Dense, opts ...Option) (*Result, error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if err = matrix.ValidateDistance(d); err != nil {
		return nil, err
	}
	rows := d.ToRows()
	n := len(rows)

	if allZero(rows) {
		p, err := partition.New(make([]int, n))
		if err != nil {
			return nil, err
		}
		return &Result{Partition: p, Medoids: []int{0}, K: 1, Curve: []float64{0, 0}}, nil
	}

	curve := []float64{0, 0}
	best := make([]Clustering, 2, n)
	prev := -1.0
	for k := 2; k < n; k++ {
		var kept Clustering
		for r := 0; r < cfg.Restarts; r++ {
			cl := KMedoids(rows, k, cfg.MaxIter, cfg.Rand)
			if r == 0 || cl.MSQw < kept.MSQw {
				kept = cl
			}
		}
		curve = append(curve, kept.MSQb)
		best = append(best, kept)

		curr := sma(curve, cfg.Window)
		if cfg.OnK != nil {
			cfg.OnK(k, kept.MSQb, curr)
		}
		if curr < prev {
			return finish(curve, best)
		}
		prev = curr
	}

	return nil, fmt.Errorf("%w: N=%d", ErrInsufficientData, n)
}

func finish(curve []float64, best []Clustering) (*Result, error) {
	// Indices 0 and 1 are padding.
	k := 2 + floats.MaxIdx(curve[2:])
	cl := best[k]
	p, err := partition.New(cl.Labels)
	if err != nil {
		return nil, err
	}

	return &Result{
		Partition: p.Canonical(),
		Medoids:   cl.Medoids,
		K:         k,
		Curve:     curve,
	}, nil
}

func allZero(rows [][]float64) bool {
	for _, row := range rows {
		for _, v := range row {
			if v != 0 {
				return false
			}
		}
	}

	return true
}
