package louvain

import (
	"errors"

	"github.com/katalvlaran/autograph/partition"
)

// Sentinel errors.
var (
	// ErrZeroWeight indicates a graph with total edge weight 0.
	ErrZeroWeight = errors.New("louvain: graph has zero total weight")

	// ErrBadResolution indicates a resolution that is not positive and finite.
	ErrBadResolution = errors.New("louvain: resolution must be positive and finite")

	// ErrOptionViolation indicates an invalid Threshold or MaxIter.
	ErrOptionViolation = errors.New("louvain: invalid option")
)

// Defaults.
const (
	DefaultResolution = 1.0
	DefaultThreshold  = 0.0
	DefaultMaxIter    = 50
)

// Option configures Louvain.
type Option func(*Options)

// Options holds the tunables of one run.
type Options struct {
	// Resolution is γ in the modularity formula.
	Resolution float64

	// Threshold is the minimum modularity gain for another pass or level.
	Threshold float64

	// MaxIter caps both local passes per level and the number of levels.
	MaxIter int

	// OnLevel, if non-nil, is called after each level with the level index
	// (1-based), the number of communities and the modularity.
	OnLevel func(level, communities int, q float64)
}

// DefaultOptions returns Options with the package defaults.
func DefaultOptions() Options {
	return Options{
		Resolution: DefaultResolution,
		Threshold:  DefaultThreshold,
		MaxIter:    DefaultMaxIter,
	}
}

// WithResolution sets γ.
func WithResolution(gamma float64) Option {
	return func(o *Options) { o.Resolution = gamma }
}

// WithThreshold sets the minimum modularity gain.
func WithThreshold(t float64) Option {
	return func(o *Options) { o.Threshold = t }
}

// WithMaxIter caps passes and levels.
func WithMaxIter(n int) Option {
	return func(o *Options) { o.MaxIter = n }
}

// WithOnLevel registers a per-level hook.
func WithOnLevel(fn func(level, communities int, q float64)) Option {
	return func(o *Options) { o.OnLevel = fn }
}

// Result is the outcome of Louvain.
type Result struct {
	// Partition holds canonical community labels of the input nodes.
	Partition partition.Partition

	// Modularity[0] is Q of the all-singletons partition; Modularity[l] is Q
	// after level l.
	Modularity []float64

	// Levels is the number of aggregation levels that merged at least one pair.
	Levels int
}

// Q returns the final modularity.
func (r *Result) Q() float64 {
	return r.Modularity[len(r.Modularity)-1]
}
