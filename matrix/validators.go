// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for the shape checks every clustering
//    stage performs on its input tables.
//  - Return sentinel errors wrapped with the validator tag so call sites can
//    match with errors.Is and still read which check failed.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Symmetry check runs O(n²) on the upper triangle only.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
// Complexity: O(1).
func ValidateSquare(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.r != m.c {
		return validatorErrorf(fmt.Sprintf("ValidateSquare(%dx%d)", m.r, m.c), ErrNonSquare)
	}

	return nil
}

// ValidateSymmetric checks |m[i][j] - m[j][i]| <= eps for all i < j.
// Assumes m is square (call ValidateSquare first).
// Complexity: O(n²).
func ValidateSymmetric(m *Dense, eps float64) error {
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = i + 1; j < m.c; j++ {
			if math.Abs(m.data[i*m.c+j]-m.data[j*m.c+i]) > eps {
				return validatorErrorf(fmt.Sprintf("ValidateSymmetric(%d,%d)", i, j), ErrAsymmetry)
			}
		}
	}

	return nil
}

// ValidateZeroDiagonal checks |m[i][i]| <= eps for all i.
// Complexity: O(n).
func ValidateZeroDiagonal(m *Dense, eps float64) error {
	for i := 0; i < m.r && i < m.c; i++ {
		if math.Abs(m.data[i*m.c+i]) > eps {
			return validatorErrorf(fmt.Sprintf("ValidateZeroDiagonal(%d)", i), ErrNonZeroDiagonal)
		}
	}

	return nil
}

// ValidateFinite rejects NaN and ±Inf entries.
// Complexity: O(r*c).
func ValidateFinite(m *Dense) error {
	for k, v := range m.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return validatorErrorf(fmt.Sprintf("ValidateFinite(%d,%d)", k/m.c, k%m.c), ErrNaNInf)
		}
	}

	return nil
}

// ValidateNonNegative rejects negative entries.
// Complexity: O(r*c).
func ValidateNonNegative(m *Dense) error {
	for k, v := range m.data {
		if v < 0 {
			return validatorErrorf(fmt.Sprintf("ValidateNonNegative(%d,%d)", k/m.c, k%m.c), ErrNegative)
		}
	}

	return nil
}

// ValidateDistance runs the full check sequence for a pairwise distance table:
// NotNil → Square → Finite → NonNegative → Symmetric → ZeroDiagonal.
func ValidateDistance(m *Dense) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	if err := ValidateFinite(m); err != nil {
		return err
	}
	if err := ValidateNonNegative(m); err != nil {
		return err
	}
	if err := ValidateSymmetric(m, DefaultEpsilon); err != nil {
		return err
	}

	return ValidateZeroDiagonal(m, DefaultEpsilon)
}

// ValidateAffinity checks a similarity / weight table: square, finite,
// non-negative and symmetric. The diagonal may carry self-loop weight.
func ValidateAffinity(m *Dense) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	if err := ValidateFinite(m); err != nil {
		return err
	}
	if err := ValidateNonNegative(m); err != nil {
		return err
	}

	return ValidateSymmetric(m, DefaultEpsilon)
}
