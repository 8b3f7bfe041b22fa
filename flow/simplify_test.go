package flow_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/splitflow/builder"
	"github.com/katalvlaran/splitflow/flow"
)

// netPositions returns, per vertex, what it is owed minus what it owes.
func netPositions(nw *flow.Network) []int64 {
	out := make([]int64, nw.VertexCount())
	for _, s := range nw.Settlements() {
		out[s.From] -= s.Amount
		out[s.To] += s.Amount
	}
	return out
}

func TestMinimizeDebtChains_CollapsesChain(t *testing.T) {
	nw, err := builder.BuildNetwork(4,
		[]builder.BuilderOption{builder.WithConstantAmount(100)},
		builder.Path())
	require.NoError(t, err)

	before, err := nw.MaxFlow(0, 3)
	require.NoError(t, err)
	require.EqualValues(t, 100, before)

	stats, err := nw.MinimizeDebtChains()
	require.NoError(t, err)
	require.Equal(t, flow.SimplifyStats{
		Passes:        2,
		StartVertices: 2,
		Collapses:     1,
		EdgesBefore:   3,
		EdgesAfter:    1,
	}, stats)

	require.Equal(t, []flow.Settlement{{From: 0, To: 3, Amount: 100}}, nw.Settlements())
	edges, err := nw.EdgesForVertex(0)
	require.NoError(t, err)
	require.Len(t, edges, 1)
	require.Equal(t, flow.NoReverse, edges[0].Rev)

	after, err := nw.MaxFlow(0, 3)
	require.NoError(t, err)
	require.EqualValues(t, 100, after)
}

func TestMinimizeDebtChains_Idempotent(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		nw, err := builder.BuildNetwork(8,
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithUniformAmount(1, 30)},
			builder.RandomSparse(0.3))
		require.NoError(t, err)

		_, err = nw.MinimizeDebtChains()
		require.NoError(t, err)
		first := nw.Settlements()

		stats, err := nw.MinimizeDebtChains()
		require.NoError(t, err)
		require.Zero(t, stats.Collapses, "seed=%d", seed)
		require.Equal(t, first, nw.Settlements(), "seed=%d", seed)
	}
}

func TestMinimizeDebtChains_PreservesNetPositions(t *testing.T) {
	cons := map[string]builder.Constructor{
		"path":     builder.Path(),
		"star":     builder.Star(),
		"cycle":    builder.Cycle(),
		"complete": builder.Complete(),
		"sparse":   builder.RandomSparse(0.4),
	}
	for name, con := range cons {
		t.Run(name, func(t *testing.T) {
			nw, err := builder.BuildNetwork(7,
				[]builder.BuilderOption{builder.WithSeed(7), builder.WithUniformAmount(1, 90)},
				con)
			require.NoError(t, err)
			want := netPositions(nw)

			stats, err := nw.MinimizeDebtChains()
			require.NoError(t, err)
			require.Equal(t, want, netPositions(nw))
			require.LessOrEqual(t, stats.EdgesAfter, stats.EdgesBefore)
			require.Len(t, nw.Settlements(), stats.EdgesAfter)
		})
	}
}

func TestMinimizeDebtChains_KeepsUncollapsibleNetwork(t *testing.T) {
	nw := newNetwork(t, 3,
		[3]int64{0, 1, 10},
		[3]int64{1, 2, 5},
		[3]int64{0, 2, 5},
	)
	want := nw.Settlements()

	stats, err := nw.MinimizeDebtChains()
	require.NoError(t, err)
	require.Zero(t, stats.Collapses)
	require.Equal(t, want, nw.Settlements())
}

func TestMinimizeDebtChains_CollapseLimit(t *testing.T) {
	nw := newNetwork(t, 6,
		[3]int64{0, 1, 4}, [3]int64{1, 2, 4},
		[3]int64{3, 4, 4}, [3]int64{4, 5, 4},
	)

	stats, err := nw.MinimizeDebtChains(flow.WithMaxCollapses(1))
	require.ErrorIs(t, err, flow.ErrIterationLimit)
	require.Equal(t, 1, stats.Collapses)

	nw = newNetwork(t, 6,
		[3]int64{0, 1, 4}, [3]int64{1, 2, 4},
		[3]int64{3, 4, 4}, [3]int64{4, 5, 4},
	)
	stats, err = nw.MinimizeDebtChains(flow.WithMaxCollapses(2))
	require.NoError(t, err)
	require.Equal(t, 2, stats.Collapses)
	require.Equal(t, []flow.Settlement{
		{From: 0, To: 2, Amount: 4},
		{From: 3, To: 5, Amount: 4},
	}, nw.Settlements())
}

// TestMinimizeDebtChains_FirstDeepestChainWins stops after one collapse on a
// diamond whose two chains are equally deep: adjacency order picks the route.
func TestMinimizeDebtChains_FirstDeepestChainWins(t *testing.T) {
	cases := []struct {
		name  string
		edges [][3]int64
		want  []flow.Settlement
	}{
		{
			name:  "via 1",
			edges: [][3]int64{{0, 1, 5}, {0, 2, 5}, {1, 3, 5}, {2, 3, 5}},
			want:  []flow.Settlement{{From: 0, To: 2, Amount: 5}, {From: 0, To: 3, Amount: 5}, {From: 2, To: 3, Amount: 5}},
		},
		{
			name:  "via 2",
			edges: [][3]int64{{0, 2, 5}, {0, 1, 5}, {1, 3, 5}, {2, 3, 5}},
			want:  []flow.Settlement{{From: 0, To: 1, Amount: 5}, {From: 0, To: 3, Amount: 5}, {From: 1, To: 3, Amount: 5}},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			nw := newNetwork(t, 4, tc.edges...)
			stats, err := nw.MinimizeDebtChains(flow.WithMaxCollapses(1))
			require.ErrorIs(t, err, flow.ErrIterationLimit)
			require.Equal(t, 1, stats.Collapses)
			require.Equal(t, tc.want, nw.Settlements())
		})
	}
}

// TestMinimizeDebtChains_LowestStartWins gives 0 and 1 one debt each into 2.
// Whoever starts first absorbs 2→3; the lower index does, whatever the
// insertion order.
func TestMinimizeDebtChains_LowestStartWins(t *testing.T) {
	orders := [][][3]int64{
		{{0, 2, 10}, {1, 2, 10}, {2, 3, 10}},
		{{1, 2, 10}, {0, 2, 10}, {2, 3, 10}},
	}
	for i, edges := range orders {
		nw := newNetwork(t, 4, edges...)
		stats, err := nw.MinimizeDebtChains()
		require.NoError(t, err, "order %d", i)
		require.Equal(t, 1, stats.Collapses, "order %d", i)
		require.Equal(t, []flow.Settlement{
			{From: 0, To: 3, Amount: 10},
			{From: 1, To: 2, Amount: 10},
		}, nw.Settlements(), "order %d", i)
	}
}

func TestMinimizeDebtChains_SinglePass(t *testing.T) {
	nw, err := builder.BuildNetwork(5, nil, builder.Path())
	require.NoError(t, err)

	stats, err := nw.MinimizeDebtChains(flow.WithSinglePass())
	require.NoError(t, err)
	require.Equal(t, 1, stats.Passes)
	require.Equal(t, 1, stats.Collapses)
}

func TestMinimizeDebtChains_EmptyNetwork(t *testing.T) {
	for _, n := range []int{0, 3} {
		nw, err := flow.NewNetwork(n)
		require.NoError(t, err)

		stats, err := nw.MinimizeDebtChains()
		require.NoError(t, err)
		require.Equal(t, flow.SimplifyStats{Passes: 1}, stats)
	}
}

func TestMinimizeDebtChains_ClearsFlow(t *testing.T) {
	nw := newNetwork(t, 3, [3]int64{0, 1, 6}, [3]int64{1, 2, 6})
	_, err := nw.MaxFlow(0, 2)
	require.NoError(t, err)

	_, err = nw.MinimizeDebtChains()
	require.NoError(t, err)
	for v := 0; v < nw.VertexCount(); v++ {
		edges, err := nw.EdgesForVertex(v)
		require.NoError(t, err)
		for _, e := range edges {
			require.Zero(t, e.Flow)
		}
	}
}
