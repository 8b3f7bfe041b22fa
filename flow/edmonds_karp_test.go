package flow_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/splitflow/builder"
	"github.com/katalvlaran/splitflow/flow"
)

// crossCheck runs algo and Dinic on the same generated network and requires
// equal values.
func crossCheck(t *testing.T, algo flow.Algorithm, n int, p float64, seeds int64) {
	t.Helper()
	for seed := int64(1); seed <= seeds; seed++ {
		nw, err := builder.BuildNetwork(n,
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithUniformAmount(1, 50)},
			builder.RandomSparse(p))
		require.NoError(t, err)

		want, err := nw.MaxFlow(0, n-1)
		require.NoError(t, err)
		got, err := nw.MaxFlow(0, n-1, flow.WithAlgorithm(algo))
		require.NoError(t, err)
		require.Equal(t, want, got, "seed=%d", seed)
		requireValidFlow(t, nw, 0, n-1, got)
	}
}

func TestEdmondsKarp_MatchesDinic(t *testing.T) {
	crossCheck(t, flow.EdmondsKarp, 10, 0.3, 30)
}

func TestEdmondsKarp_DenseNetwork(t *testing.T) {
	nw, err := builder.BuildNetwork(6,
		[]builder.BuilderOption{builder.WithConstantAmount(3)},
		builder.Complete())
	require.NoError(t, err)

	// every vertex but the source forwards into the sink: 5 edges of 3
	got, err := nw.MaxFlow(0, 5, flow.WithAlgorithm(flow.EdmondsKarp))
	require.NoError(t, err)
	require.EqualValues(t, 15, got)
}
