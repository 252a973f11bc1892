// Package subset supports clustering a random sample of an ensemble and
// extending the result to the remaining conformers.
package subset

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
)

// Sentinel errors.
var (
	// ErrBadSample indicates a sample size below 1.
	ErrBadSample = errors.New("subset: sample size must be positive")

	// ErrIndex indicates an index outside 0..n-1 or inconsistent lengths.
	ErrIndex = errors.New("subset: index out of range")
)

// defaultRNGSeed is used when seed 0 is requested.
const defaultRNGSeed int64 = 1

// NewRand returns a deterministic *rand.Rand; seed 0 maps to a fixed default.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// Shuffle returns a permutation of 0..n-1 drawn with a Fisher–Yates shuffle.
func Shuffle(n int, rng *rand.Rand) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	var j int
	for i := n - 1; i > 0; i-- {
		j = rng.Intn(i + 1)
		p[i], p[j] = p[j], p[i]
	}

	return p
}

// Sample returns k distinct indices from 0..n-1 in ascending order.
// k >= n returns every index.
func Sample(n, k int, rng *rand.Rand) ([]int, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadSample, k)
	}
	if k >= n {
		all := make([]int, n)
		for i := range all {
			all[i] = i
		}
		return all, nil
	}
	out := Shuffle(n, rng)[:k]
	sort.Ints(out)

	return out, nil
}

// AssignNearest extends a clustering of the sampled indices to all n.
// labels[s] is the label of sampled[s]; reps are indices into 0..n-1 of the
// representatives, all of which must be sampled. Every unsampled index takes
// the label of the representative with the smallest dist (first on ties).
func AssignNearest(n int, sampled, labels, reps []int, dist func(i, j int) (float64, error)) ([]int, error) {
	if len(sampled) != len(labels) {
		return nil, fmt.Errorf("%w: %d sampled, %d labels", ErrIndex, len(sampled), len(labels))
	}
	out := make([]int, n)
	known := make([]bool, n)
	for s, i := range sampled {
		if i < 0 || i >= n {
			return nil, fmt.Errorf("%w: sampled %d", ErrIndex, i)
		}
		out[i] = labels[s]
		known[i] = true
	}
	if len(reps) == 0 {
		return nil, fmt.Errorf("%w: no representatives", ErrIndex)
	}
	for _, r := range reps {
		if r < 0 || r >= n || !known[r] {
			return nil, fmt.Errorf("%w: representative %d not sampled", ErrIndex, r)
		}
	}

	for i := 0; i < n; i++ {
		if known[i] {
			continue
		}
		best, bestD := reps[0], 0.0
		for k, r := range reps {
			v, err := dist(i, r)
			if err != nil {
				return nil, fmt.Errorf("conformer %d vs %d: %w", i, r, err)
			}
			if k == 0 || v < bestD {
				best, bestD = r, v
			}
		}
		out[i] = out[best]
	}

	return out, nil
}
