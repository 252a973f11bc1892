package engine

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/autograph/louvain"
	"github.com/katalvlaran/autograph/matrix"
	"github.com/katalvlaran/autograph/nmrclust"
	"github.com/katalvlaran/autograph/partition"
	"github.com/katalvlaran/autograph/rckmeans"
	"github.com/katalvlaran/autograph/rmsd"
	"github.com/katalvlaran/autograph/subset"
	"github.com/katalvlaran/autograph/treecut"
)

// Taxonomy sentinels.
var (
	// ErrMalformedInput covers inconsistent ids, frames or tables.
	ErrMalformedInput = errors.New("engine: malformed input")

	// ErrInsufficientData covers ensembles too small for the chosen strategy.
	ErrInsufficientData = errors.New("engine: insufficient data")

	// ErrUnrecognizedStrategy indicates an unknown strategy name or value.
	ErrUnrecognizedStrategy = errors.New("engine: unrecognized strategy")

	// ErrInvalidConfig indicates an out-of-range configuration value.
	ErrInvalidConfig = errors.New("engine: invalid config")
)

var malformed = []error{
	matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrAsymmetry, matrix.ErrNonZeroDiagonal,
	matrix.ErrNaNInf, matrix.ErrNegative, matrix.ErrDimensionMismatch, matrix.ErrBadShape,
	rmsd.ErrEmptyFrame, rmsd.ErrAtomCountMismatch, rmsd.ErrNoFrames,
	partition.ErrEmpty, partition.ErrLength, subset.ErrIndex,
}

var insufficient = []error{
	nmrclust.ErrInsufficientData, treecut.ErrInsufficientData,
	rckmeans.ErrInsufficientData, louvain.ErrZeroWeight,
}

// StageError reports the pipeline stage that failed and the size of the
// table it was working on.
type StageError struct {
	Stage string
	Rows  int
	Cols  int
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("engine: stage %s (%dx%d): %v", e.Stage, e.Rows, e.Cols, e.Err)
}

// Unwrap returns the underlying error.
func (e *StageError) Unwrap() error { return e.Err }

// Is maps package errors onto the taxonomy sentinels.
func (e *StageError) Is(target error) bool {
	var group []error
	switch target {
	case ErrMalformedInput:
		group = malformed
	case ErrInsufficientData:
		group = insufficient
	default:
		return false
	}
	for _, g := range group {
		if errors.Is(e.Err, g) {
			return true
		}
	}

	return false
}

func stageErr(stage string, n int, err error) error {
	return &StageError{Stage: stage, Rows: n, Cols: n, Err: err}
}
