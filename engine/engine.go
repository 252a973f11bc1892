package engine

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/autograph/affinity"
	"github.com/katalvlaran/autograph/centroid"
	"github.com/katalvlaran/autograph/louvain"
	"github.com/katalvlaran/autograph/matrix"
	"github.com/katalvlaran/autograph/nmrclust"
	"github.com/katalvlaran/autograph/partition"
	"github.com/katalvlaran/autograph/rckmeans"
	"github.com/katalvlaran/autograph/rmsd"
	"github.com/katalvlaran/autograph/subset"
	"github.com/katalvlaran/autograph/treecut"
)

// Input is one ensemble. IDs are required; D, when set, is used instead of
// computing RMSD from Frames.
type Input struct {
	IDs      []string
	Frames   []rmsd.Frame
	D        *matrix.Dense
	Energies map[string]float64
}

// Result is the outcome of a run. Matrices are fresh values owned by the
// caller. For subset runs D, A, FilteredA and FilteredD cover the sample
// only and Stats is nil.
type Result struct {
	RunID    uuid.UUID
	Strategy Strategy
	Centroid centroid.Kind
	IDs      []string

	D         *matrix.Dense
	A         *matrix.Dense
	FilteredA *matrix.Dense
	FilteredD *matrix.Dense
	Tau       float64
	Bound     float64

	Partition       partition.Partition
	Representatives []int
	Stats           []partition.Stat

	// Sampled lists the indices clustered directly in a subset run.
	Sampled []int
}

// Engine runs the pipeline with a fixed configuration.
type Engine struct {
	cfg Config
	obs Observer
}

// New validates cfg. A nil observer discards events.
func New(cfg Config, obs Observer) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if obs == nil {
		obs = NopObserver{}
	}

	return &Engine{cfg: cfg, obs: obs}, nil
}

// stage times fn and reports its boundaries.
func (e *Engine) stage(name string, fields map[string]any, fn func() error) error {
	e.obs.Observe(Event{Stage: name, Kind: StageStart, Message: name + " started", Fields: fields})
	start := time.Now()
	if err := fn(); err != nil {
		return err
	}
	e.obs.Observe(Event{Stage: name, Kind: StageDone, Message: name + " done", Fields: fields, Elapsed: time.Since(start)})

	return nil
}

func (e *Engine) progress(name, msg string, fields map[string]any) {
	e.obs.Observe(Event{Stage: name, Kind: Progress, Message: msg, Fields: fields})
}

func checkInput(in Input) error {
	n := len(in.IDs)
	if n == 0 {
		return fmt.Errorf("%w: no conformers", ErrMalformedInput)
	}
	if in.D == nil && len(in.Frames) != n {
		return fmt.Errorf("%w: %d ids, %d frames", ErrMalformedInput, n, len(in.Frames))
	}
	if in.D != nil && (in.D.Rows() != n || in.D.Cols() != n) {
		return fmt.Errorf("%w: %d ids, %dx%d table", ErrMalformedInput, n, in.D.Rows(), in.D.Cols())
	}

	return nil
}

// Run clusters the full ensemble.
func (e *Engine) Run(in Input) (*Result, error) {
	if err := checkInput(in); err != nil {
		return nil, stageErr(StageInput, len(in.IDs), err)
	}
	res := &Result{
		RunID:    uuid.New(),
		Strategy: e.cfg.Strategy,
		Centroid: e.cfg.Centroid,
		IDs:      append([]string(nil), in.IDs...),
		Bound:    math.Inf(1),
	}
	n := len(in.IDs)
	e.progress(StageInput, "run started", map[string]any{
		"run_id": res.RunID.String(), "n": n, "strategy": e.cfg.Strategy.String(), "centroid": e.cfg.Centroid.String(),
	})

	if err := e.stage(StageDistance, map[string]any{"n": n}, func() (err error) {
		res.D, err = e.distances(in)
		return err
	}); err != nil {
		return nil, stageErr(StageDistance, n, err)
	}

	if e.cfg.needsGraph() {
		if err := e.stage(StageAffinity, map[string]any{"n": n}, func() error {
			return e.graph(res)
		}); err != nil {
			return nil, stageErr(StageAffinity, n, err)
		}
	}

	if err := e.stage(StagePartition, map[string]any{"n": n}, func() (err error) {
		res.Partition, err = e.partition(res)
		return err
	}); err != nil {
		return nil, stageErr(StagePartition, n, err)
	}
	e.progress(StagePartition, "clusters found", map[string]any{"clusters": res.Partition.NumClusters()})

	if err := e.stage(StageRepresentatives, nil, func() (err error) {
		res.Representatives, err = centroid.Select(e.cfg.Centroid, res.Partition, centroid.Tables{
			D:        res.D,
			A:        res.FilteredA,
			Bound:    res.Bound,
			IDs:      res.IDs,
			Energies: in.Energies,
		})
		return err
	}); err != nil {
		return nil, stageErr(StageRepresentatives, n, err)
	}

	if err := e.stage(StageStats, nil, func() (err error) {
		res.Stats, err = partition.Stats(res.D, res.Partition, res.Representatives)
		return err
	}); err != nil {
		return nil, stageErr(StageStats, n, err)
	}

	return res, nil
}

func (e *Engine) distances(in Input) (*matrix.Dense, error) {
	if in.D != nil {
		if err := matrix.ValidateDistance(in.D); err != nil {
			return nil, err
		}
		return in.D.Clone(), nil
	}

	return rmsd.Matrix(in.Frames)
}

// graph fills A, τ, the filtered tables and the distance bound.
func (e *Engine) graph(res *Result) error {
	eps := affinity.WithEpsilon(e.cfg.Epsilon)
	a, err := affinity.Matrix(res.D, eps)
	if err != nil {
		return err
	}
	tau, err := affinity.Threshold(a)
	if err != nil {
		return err
	}
	fa, err := affinity.Filter(a, tau)
	if err != nil {
		return err
	}
	bound, err := affinity.DistanceBound(tau, eps)
	if err != nil {
		return err
	}
	fd, err := affinity.FilterDistances(res.D, bound)
	if err != nil {
		return err
	}
	res.A, res.Tau, res.FilteredA, res.Bound, res.FilteredD = a, tau, fa, bound, fd
	e.progress(StageAffinity, "threshold found", map[string]any{"tau": tau, "bound": bound})

	return nil
}

// partition dispatches to the configured strategy. A single conformer is
// its own cluster under every strategy.
func (e *Engine) partition(res *Result) (partition.Partition, error) {
	n := res.D.Rows()
	if n == 1 {
		return partition.New([]int{0})
	}

	switch e.cfg.Strategy {
	case Louvain:
		lc := e.cfg.Louvain
		r, err := louvain.Louvain(res.FilteredA,
			louvain.WithResolution(lc.Resolution),
			louvain.WithThreshold(lc.Threshold),
			louvain.WithMaxIter(lc.MaxIter),
			louvain.WithOnLevel(func(level, communities int, q float64) {
				e.progress(StagePartition, "louvain level", map[string]any{"level": level, "communities": communities, "q": q})
			}))
		if err != nil {
			return partition.Partition{}, err
		}
		return r.Partition, nil

	case NMRClust:
		r, err := nmrclust.Cluster(res.D, nmrclust.WithOnMerge(func(a, b int, link float64, clusters int) {
			e.progress(StagePartition, "nmrclust merge", map[string]any{"a": a, "b": b, "link": link, "clusters": clusters})
		}))
		if err != nil {
			return partition.Partition{}, err
		}
		return r.Partition, nil

	case TreeCut:
		tc := e.cfg.TreeCut
		r, err := treecut.Cluster(res.D,
			treecut.WithMinRunLength(tc.MinRunLength),
			treecut.WithOptimalOrdering(tc.OptimalOrdering),
			treecut.WithOnRound(func(round int, bps []int) {
				e.progress(StagePartition, "tree cut round", map[string]any{"round": round, "breakpoints": len(bps)})
			}))
		if err != nil {
			return partition.Partition{}, err
		}
		return r.Partition, nil

	case RCKmeans:
		r, err := rckmeans.Cluster(res.D,
			rckmeans.WithRestarts(e.cfg.RCKmeans.Restarts),
			rckmeans.WithRand(e.rand()),
			rckmeans.WithOnK(func(k int, msqb, sma float64) {
				e.progress(StagePartition, "rckmeans k", map[string]any{"k": k, "msqb": msqb, "sma": sma})
			}))
		if err != nil {
			return partition.Partition{}, err
		}
		return r.Partition, nil

	default:
		return partition.Partition{}, fmt.Errorf("%w: %v", ErrUnrecognizedStrategy, e.cfg.Strategy)
	}
}

func (e *Engine) rand() *rand.Rand {
	return subset.NewRand(e.cfg.Seed)
}

// RunSubset clusters k randomly sampled conformers and assigns the rest to
// the nearest representative by RMSD. k >= N is a plain Run.
func (e *Engine) RunSubset(in Input, k int) (*Result, error) {
	if err := checkInput(in); err != nil {
		return nil, stageErr(StageInput, len(in.IDs), err)
	}
	n := len(in.IDs)
	if k >= n {
		return e.Run(in)
	}
	sampled, err := subset.Sample(n, k, e.rand())
	if err != nil {
		return nil, stageErr(StageInput, n, err)
	}

	sub := Input{IDs: make([]string, k), Energies: in.Energies}
	for s, i := range sampled {
		sub.IDs[s] = in.IDs[i]
	}
	if in.D != nil {
		if sub.D, err = matrix.Submatrix(in.D, sampled); err != nil {
			return nil, stageErr(StageInput, n, err)
		}
	} else {
		sub.Frames = make([]rmsd.Frame, k)
		for s, i := range sampled {
			sub.Frames[s] = in.Frames[i]
		}
	}

	res, err := e.Run(sub)
	if err != nil {
		return nil, err
	}

	reps := make([]int, len(res.Representatives))
	for r, s := range res.Representatives {
		reps[r] = sampled[s]
	}
	dist := func(i, j int) (float64, error) {
		if in.D != nil {
			return in.D.At(i, j)
		}
		return rmsd.RMSD(in.Frames[j], in.Frames[i])
	}

	var labels []int
	if err = e.stage(StageAssign, map[string]any{"n": n, "sampled": k}, func() (err error) {
		labels, err = subset.AssignNearest(n, sampled, res.Partition.Labels(), reps, dist)
		return err
	}); err != nil {
		return nil, stageErr(StageAssign, n, err)
	}
	p, err := partition.New(labels)
	if err != nil {
		return nil, stageErr(StageAssign, n, err)
	}

	res.IDs = append([]string(nil), in.IDs...)
	res.Partition = p
	res.Representatives = reps
	res.Stats = nil
	res.Sampled = sampled

	return res, nil
}
