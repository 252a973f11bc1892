package rmsd

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the rmsd package.
var (
	// ErrEmptyFrame indicates a coordinate frame with zero atoms.
	ErrEmptyFrame = errors.New("rmsd: frame has no atoms")

	// ErrAtomCountMismatch indicates two frames whose atom counts differ, so no
	// position-wise atom correspondence exists.
	ErrAtomCountMismatch = errors.New("rmsd: atom count mismatch")

	// ErrNoFrames indicates that Matrix was called without frames.
	ErrNoFrames = errors.New("rmsd: no frames")

	// ErrSVDFailed indicates that the SVD of the covariance matrix failed.
	ErrSVDFailed = errors.New("rmsd: SVD factorisation failed")
)

// Point is one atom position in Ångström.
type Point [3]float64

// Frame is the ordered atom positions of one conformer. Frames of the same
// conformer set correspond atom-by-atom by position.
type Frame []Point

// Clone returns an independent copy of f.
func (f Frame) Clone() Frame {
	return append(Frame(nil), f...)
}

// Option configures Matrix.
type Option func(*Options)

// Options holds the Matrix hooks.
type Options struct {
	// OnPair is called after each unordered pair (i < j) is computed.
	OnPair func(i, j int, d float64)
}

// DefaultOptions returns Options with a no-op OnPair hook.
func DefaultOptions() Options {
	return Options{OnPair: func(int, int, float64) {}}
}

// WithOnPair registers a progress callback invoked once per unordered pair.
func WithOnPair(fn func(i, j int, d float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPair = fn
		}
	}
}

// checkPair validates that a and b can be compared atom-by-atom.
func checkPair(a, b Frame) error {
	if len(a) == 0 || len(b) == 0 {
		return ErrEmptyFrame
	}
	if len(a) != len(b) {
		return fmt.Errorf("%w: %d vs %d atoms", ErrAtomCountMismatch, len(a), len(b))
	}

	return nil
}
