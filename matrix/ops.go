// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// Submatrix returns the k×k table m[idx][idx] as a new Dense, with rows and
// columns in the order given by idx.
// Complexity: O(k²).
func Submatrix(m *Dense, idx []int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	if len(idx) == 0 {
		return nil, fmt.Errorf("Submatrix: empty index set: %w", ErrBadShape)
	}
	for _, i := range idx {
		if i < 0 || i >= m.r || i >= m.c {
			return nil, fmt.Errorf("Submatrix: index %d: %w", i, ErrOutOfRange)
		}
	}
	k := len(idx)
	out := &Dense{r: k, c: k, data: make([]float64, k*k)}
	for a, i := range idx {
		row := m.data[i*m.c : (i+1)*m.c]
		for b, j := range idx {
			out.data[a*k+b] = row[j]
		}
	}

	return out, nil
}

// Apply returns a new matrix whose (i, j) entry is fn(i, j, m[i][j]).
// Complexity: O(r*c).
func Apply(m *Dense, fn func(i, j int, v float64) float64) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	out := &Dense{r: m.r, c: m.c, data: make([]float64, len(m.data))}
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			out.data[i*m.c+j] = fn(i, j, m.data[i*m.c+j])
		}
	}

	return out, nil
}

// EqualApprox reports whether a and b share shape and every entry differs by
// at most eps. Infinite entries must match exactly.
func EqualApprox(a, b *Dense, eps float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	for k := range a.data {
		x, y := a.data[k], b.data[k]
		if math.IsInf(x, 0) || math.IsInf(y, 0) {
			if x != y {
				return false
			}
			continue
		}
		if math.Abs(x-y) > eps {
			return false
		}
	}

	return true
}

// RowSum returns Σ_j m[i][j] over the given column subset.
// Complexity: O(len(cols)).
func RowSum(m *Dense, i int, cols []int) float64 {
	row := m.RawRowView(i)
	var s float64
	for _, j := range cols {
		s += row[j]
	}

	return s
}
