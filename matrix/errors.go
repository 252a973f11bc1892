// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All functions return these sentinels (optionally wrapped with context via
// fmt.Errorf("...: %w", ErrX)); callers match with errors.Is.

package matrix

import "errors"

var (
	// ErrBadShape is returned when requested shape is invalid (r<=0 or c<=0)
	// or when row slices of a literal have unequal lengths.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated symmetry
	// within the configured epsilon.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNonZeroDiagonal signals that a diagonal entry is not ~0 within eps.
	ErrNonZeroDiagonal = errors.New("matrix: diagonal not zero within eps")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNegative signals a negative entry in a matrix that must be non-negative
	// (distances, affinities).
	ErrNegative = errors.New("matrix: negative entry")

	// ErrNilMatrix indicates that a nil matrix was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
