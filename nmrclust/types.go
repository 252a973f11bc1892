package nmrclust

import (
	"errors"

	"github.com/katalvlaran/autograph/partition"
)

// ErrInsufficientData indicates fewer than three conformers.
var ErrInsufficientData = errors.New("nmrclust: at least 3 conformers required")

// Option configures Cluster.
type Option func(*Options)

// Options holds the hooks of one run.
type Options struct {
	// OnMerge, if non-nil, is called after every merge with the surviving and
	// absorbed cluster ids, their average linkage and the cluster count left.
	OnMerge func(a, b int, link float64, clusters int)
}

// DefaultOptions returns Options with no hooks.
func DefaultOptions() Options {
	return Options{}
}

// WithOnMerge registers a per-merge hook.
func WithOnMerge(fn func(a, b int, link float64, clusters int)) Option {
	return func(o *Options) { o.OnMerge = fn }
}

// Step is one recorded state of the second phase.
type Step struct {
	Clusters   int
	Spread     float64
	Normalized float64
	Penalty    float64
}

// Result is the outcome of Cluster.
type Result struct {
	Partition partition.Partition
	Steps     []Step
	// Chosen indexes Steps.
	Chosen int
}
