package rckmeans

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/autograph/partition"
)

// Sentinel errors.
var (
	// ErrInsufficientData indicates that k ran out before the moving average
	// turned down, which always happens for small ensembles.
	ErrInsufficientData = errors.New("rckmeans: moving average never decreased; too few conformers")

	// ErrOptionViolation indicates a non-positive restart, iteration or window count.
	ErrOptionViolation = errors.New("rckmeans: invalid option")
)

// Defaults.
const (
	DefaultRestarts = 100
	DefaultMaxIter  = 100
	DefaultWindow   = 10
)

// Option configures Cluster.
type Option func(*Options)

// Options holds the search parameters.
type Options struct {
	Restarts int
	MaxIter  int
	Window   int

	// Rand is the only source of randomness; nil selects a fixed seed.
	Rand *rand.Rand

	// OnK, if non-nil, is called after each k with its MSQb and moving average.
	OnK func(k int, msqb, sma float64)
}

// DefaultOptions returns the package defaults.
func DefaultOptions() Options {
	return Options{Restarts: DefaultRestarts, MaxIter: DefaultMaxIter, Window: DefaultWindow}
}

// WithRestarts sets the number of k-medoids restarts per k.
func WithRestarts(n int) Option {
	return func(o *Options) { o.Restarts = n }
}

// WithMaxIter caps the k-medoids iterations of one restart.
func WithMaxIter(n int) Option {
	return func(o *Options) { o.MaxIter = n }
}

// WithWindow sets the moving-average window.
func WithWindow(w int) Option {
	return func(o *Options) { o.Window = w }
}

// WithRand sets the random source.
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) { o.Rand = rng }
}

// WithOnK registers a per-k hook.
func WithOnK(fn func(k int, msqb, sma float64)) Option {
	return func(o *Options) { o.OnK = fn }
}

// Clustering is one k-medoids outcome.
type Clustering struct {
	Labels  []int // cluster index per conformer
	Medoids []int
	MSQw    float64
	MSQb    float64
}

// Result is the outcome of Cluster.
type Result struct {
	Partition partition.Partition
	Medoids   []int
	// K is the chosen number of medoids.
	K int
	// Curve[k] is the MSQb recorded for k; Curve[0] = Curve[1] = 0.
	Curve []float64
}
