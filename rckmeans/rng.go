package rckmeans

import "math/rand"

// defaultRNGSeed is used when no random source is supplied.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand; seed 0 maps to
// defaultRNGSeed.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}

// sample draws k distinct indices from 0..n-1 with a partial Fisher–Yates
// shuffle.
func sample(n, k int, rng *rand.Rand) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	var j int
	for i := 0; i < k; i++ {
		j = i + rng.Intn(n-i)
		p[i], p[j] = p[j], p[i]
	}

	return p[:k]
}
