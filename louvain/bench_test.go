package louvain_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/autograph/louvain"
	"github.com/katalvlaran/autograph/matrix"
)

func BenchmarkLouvain(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	w, _ := matrix.FromRows(randomWeights(rng, 200))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = louvain.Louvain(w)
	}
}
