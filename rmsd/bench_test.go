package rmsd_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/autograph/rmsd"
)

func BenchmarkRMSD_50Atoms(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	x, y := randomFrame(rng, 50), randomFrame(rng, 50)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = rmsd.RMSD(x, y)
	}
}

func BenchmarkMatrix_40x30(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	frames := make([]rmsd.Frame, 40)
	for i := range frames {
		frames[i] = randomFrame(rng, 30)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = rmsd.Matrix(frames)
	}
}
