package rmsd

import (
	"fmt"

	"github.com/katalvlaran/autograph/matrix"
)

// Matrix computes the N×N table of pairwise RMSD values for frames.
//
// Each unordered pair (i < j) is aligned exactly once and written to both
// triangles, so the result is symmetric by construction and its diagonal is
// exactly zero. Frames are centred once up front.
//
// Complexity: O(N²·n) time, O(N² + N·n) memory.
func Matrix(frames []Frame, opts ...Option) (*matrix.Dense, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	n := len(frames)
	if n == 0 {
		return nil, ErrNoFrames
	}
	atoms := len(frames[0])
	centred := make([]Frame, n)
	for i, f := range frames {
		if len(f) == 0 {
			return nil, fmt.Errorf("%w: frame %d", ErrEmptyFrame, i)
		}
		if len(f) != atoms {
			return nil, fmt.Errorf("%w: frame %d has %d atoms, frame 0 has %d", ErrAtomCountMismatch, i, len(f), atoms)
		}
		centred[i] = Center(f)
	}

	d, err := matrix.NewSquare(n)
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			r, err := rotationCentered(centred[i], centred[j])
			if err != nil {
				return nil, fmt.Errorf("pair (%d,%d): %w", i, j, err)
			}
			v := aligned(centred[i], centred[j], r)
			_ = d.Set(i, j, v)
			_ = d.Set(j, i, v)
			cfg.OnPair(i, j, v)
		}
	}

	return d, nil
}
