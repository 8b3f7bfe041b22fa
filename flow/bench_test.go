package flow_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/splitflow/builder"
	"github.com/katalvlaran/splitflow/flow"
)

// benchNetwork builds a reproducible sparse debt network with n vertices.
func benchNetwork(b *testing.B, n int, p float64) *flow.Network {
	b.Helper()
	nw, err := builder.BuildNetwork(n,
		[]builder.BuilderOption{builder.WithSeed(42), builder.WithUniformAmount(1, 1000)},
		builder.RandomSparse(p))
	if err != nil {
		b.Fatal(err)
	}
	return nw
}

// BenchmarkMaxFlow compares the three solvers on growing networks.
func BenchmarkMaxFlow(b *testing.B) {
	sizes := []int{16, 64, 256}
	for _, n := range sizes {
		nw := benchNetwork(b, n, 0.1)
		for _, algo := range algorithms {
			b.Run(fmt.Sprintf("%s/n=%d", algo, n), func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					if _, err := nw.MaxFlow(0, n-1, flow.WithAlgorithm(algo)); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

// BenchmarkMinimizeDebtChains rebuilds the network each iteration because
// the simplifier mutates it.
func BenchmarkMinimizeDebtChains(b *testing.B) {
	for _, n := range []int{16, 64} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				nw := benchNetwork(b, n, 0.1)
				b.StartTimer()
				if _, err := nw.MinimizeDebtChains(); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
