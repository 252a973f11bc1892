// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/autograph/matrix"
	"github.com/stretchr/testify/require"
)

func mustRows(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)
	return m
}

// TestValidateDistance walks the check sequence with one violation per case.
func TestValidateDistance(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		m       *matrix.Dense
		wantErr error
	}{
		{"nil", nil, matrix.ErrNilMatrix},
		{"non-square", mustRows(t, [][]float64{{0, 1, 2}, {1, 0, 3}}), matrix.ErrNonSquare},
		{"nan", mustRows(t, [][]float64{{0, math.NaN()}, {1, 0}}), matrix.ErrNaNInf},
		{"negative", mustRows(t, [][]float64{{0, -1}, {-1, 0}}), matrix.ErrNegative},
		{"asymmetric", mustRows(t, [][]float64{{0, 1}, {2, 0}}), matrix.ErrAsymmetry},
		{"diagonal", mustRows(t, [][]float64{{1, 1}, {1, 0}}), matrix.ErrNonZeroDiagonal},
		{"ok", mustRows(t, [][]float64{{0, 1.5}, {1.5, 0}}), nil},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateDistance(tc.m)
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.Truef(t, errors.Is(err, tc.wantErr), "expected errors.Is(%v, %v)", err, tc.wantErr)
		})
	}
}

func TestValidateAffinity_AllowsDiagonal(t *testing.T) {
	m := mustRows(t, [][]float64{{2, 1}, {1, 3}})
	require.NoError(t, matrix.ValidateAffinity(m))
	require.ErrorIs(t, matrix.ValidateDistance(m), matrix.ErrNonZeroDiagonal)
}
