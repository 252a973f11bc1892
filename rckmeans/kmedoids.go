package rckmeans

import (
	"math/rand"
	"slices"
)

// KMedoids partitions the rows of d around k medoids drawn from rng.
// Points go to their nearest medoid (first on ties); each medoid then moves
// to the member with the smallest in-cluster distance sum. An empty cluster
// keeps its medoid. Iteration stops when the medoids are stable or after
// maxIter updates.
func KMedoids(d [][]float64, k, maxIter int, rng *rand.Rand) Clustering {
	n := len(d)
	medoids := sample(n, k, rng)
	labels := make([]int, n)
	members := make([][]int, k)

	assign := func() {
		for c := range members {
			members[c] = members[c][:0]
		}
		for i := 0; i < n; i++ {
			best := 0
			for c := 1; c < k; c++ {
				if d[i][medoids[c]] < d[i][medoids[best]] {
					best = c
				}
			}
			labels[i] = best
			members[best] = append(members[best], i)
		}
	}

	next := make([]int, k)
	for iter := 0; iter < maxIter; iter++ {
		assign()
		for c := range next {
			next[c] = medoids[c]
			bestSum := -1.0
			for _, x := range members[c] {
				var s float64
				for _, y := range members[c] {
					s += d[x][y]
				}
				if bestSum < 0 || s < bestSum {
					next[c], bestSum = x, s
				}
			}
		}
		if slices.Equal(next, medoids) {
			break
		}
		copy(medoids, next)
	}
	assign()

	cl := Clustering{Labels: labels, Medoids: medoids}
	cl.MSQw = msqw(d, members)
	cl.MSQb = msqb(d, medoids)

	return cl
}

// msqw is the mean over non-empty clusters of the mean intra-cluster
// pairwise distance; singletons count as 0.
func msqw(d [][]float64, members [][]int) float64 {
	var tally float64
	nonEmpty := 0
	for _, ms := range members {
		if len(ms) == 0 {
			continue
		}
		nonEmpty++
		if len(ms) == 1 {
			continue
		}
		var s float64
		for a := 0; a < len(ms); a++ {
			for b := a + 1; b < len(ms); b++ {
				s += d[ms[a]][ms[b]]
			}
		}
		tally += s / float64(len(ms)*(len(ms)-1)/2)
	}

	return tally / float64(nonEmpty)
}

// msqb is the mean pairwise distance between medoids.
func msqb(d [][]float64, medoids []int) float64 {
	k := len(medoids)
	if k < 2 {
		return 0
	}
	var s float64
	for a := 0; a < k; a++ {
		for b := a + 1; b < k; b++ {
			s += d[medoids[a]][medoids[b]]
		}
	}

	return s / float64(k*(k-1)/2)
}
