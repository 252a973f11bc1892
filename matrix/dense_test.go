// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/autograph/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDense_BadShape(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	require.ErrorIs(t, err, matrix.ErrBadShape)
	_, err = matrix.FromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestDense_AtSetBounds(t *testing.T) {
	m, err := matrix.NewSquare(2)
	require.NoError(t, err)
	require.NoError(t, m.Set(1, 0, 4.5))

	v, err := m.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 4.5, v)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
}

func TestDense_CloneIsIndependent(t *testing.T) {
	m := mustRows(t, [][]float64{{0, 1}, {1, 0}})
	c := m.Clone()
	require.NoError(t, c.Set(0, 1, 9))

	v, _ := m.At(0, 1)
	assert.Equal(t, 1.0, v)
	assert.Equal(t, [][]float64{{0, 9}, {1, 0}}, c.ToRows())
}

func TestSubmatrix(t *testing.T) {
	m := mustRows(t, [][]float64{
		{0, 1, 2},
		{1, 0, 3},
		{2, 3, 0},
	})
	sub, err := matrix.Submatrix(m, []int{2, 0})
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 2}, {2, 0}}, sub.ToRows())

	_, err = matrix.Submatrix(m, []int{3})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = matrix.Submatrix(m, nil)
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestApply_ReturnsNewMatrix(t *testing.T) {
	m := mustRows(t, [][]float64{{0, 2}, {2, 0}})
	out, err := matrix.Apply(m, func(i, j int, v float64) float64 { return v * 10 })
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{0, 20}, {20, 0}}, out.ToRows())
	assert.Equal(t, [][]float64{{0, 2}, {2, 0}}, m.ToRows())
	assert.Equal(t, 2.0, matrix.RowSum(m, 0, []int{0, 1}))
}

func TestEqualApprox(t *testing.T) {
	a := mustRows(t, [][]float64{{0, 1}, {1, 0}})
	b := mustRows(t, [][]float64{{0, 1 + 1e-12}, {1, 0}})
	assert.True(t, matrix.EqualApprox(a, b, 1e-9))
	assert.False(t, matrix.EqualApprox(a, mustRows(t, [][]float64{{0, 2}, {1, 0}}), 1e-9))
	assert.False(t, matrix.EqualApprox(a, mustRows(t, [][]float64{{0}}), 1e-9))
}
