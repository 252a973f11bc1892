// SPDX-License-Identifier: MIT

package matrix

// Matrix is the read/write surface shared by Dense and any caller-supplied
// table. Algorithm packages accept *Dense directly; the interface exists so
// validators can be reused on foreign implementations.
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i or j is outside the matrix.
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error
}

// DefaultEpsilon is the symmetry / zero-diagonal tolerance used by
// ValidateDistance and ValidateAffinity.
const DefaultEpsilon = 1e-9
