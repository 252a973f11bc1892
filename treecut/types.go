package treecut

import (
	"errors"

	"github.com/katalvlaran/autograph/partition"
)

// Sentinel errors.
var (
	// ErrInsufficientData indicates fewer than two conformers.
	ErrInsufficientData = errors.New("treecut: at least 2 conformers required")

	// ErrOptionViolation indicates an invalid option value.
	ErrOptionViolation = errors.New("treecut: invalid option")
)

// DefaultMinRunLength is the default τ.
const DefaultMinRunLength = 5

// Option configures Cluster and Cut.
type Option func(*Options)

// Options holds the cut parameters.
type Options struct {
	// MinRunLength is τ: a run of high merges must be longer than this.
	MinRunLength int

	// OptimalOrdering enables optimal leaf ordering before the cut.
	OptimalOrdering bool

	// OnRound, if non-nil, is called after every cut round with the round
	// number (1-based) and the sorted breakpoints so far.
	OnRound func(round int, breakpoints []int)
}

// DefaultOptions returns τ = DefaultMinRunLength with optimal ordering on.
func DefaultOptions() Options {
	return Options{MinRunLength: DefaultMinRunLength, OptimalOrdering: true}
}

// WithMinRunLength sets τ.
func WithMinRunLength(tau int) Option {
	return func(o *Options) { o.MinRunLength = tau }
}

// WithOptimalOrdering toggles optimal leaf ordering.
func WithOptimalOrdering(on bool) Option {
	return func(o *Options) { o.OptimalOrdering = on }
}

// WithOnRound registers a per-round hook.
func WithOnRound(fn func(round int, breakpoints []int)) Option {
	return func(o *Options) { o.OnRound = fn }
}

// Node is one dendrogram vertex. Leaves have Left = Right = -1.
type Node struct {
	Left, Right int
	Height      float64
	Size        int
}

// Result is the outcome of Cluster.
type Result struct {
	Partition   partition.Partition
	Dendrogram  *Dendrogram
	Breakpoints []int
}
