package flow_test

import (
	"bytes"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/splitflow/builder"
	"github.com/katalvlaran/splitflow/flow"
)

// MaxFlowSuite exercises MaxFlow with every algorithm on known networks.
type MaxFlowSuite struct {
	suite.Suite
}

var algorithms = []flow.Algorithm{flow.Dinic, flow.EdmondsKarp, flow.FordFulkerson}

// knownCases are small networks with a hand-checked max flow.
var knownCases = []struct {
	name         string
	n            int
	edges        [][3]int64
	source, sink int
	want         int64
}{
	{
		name:   "triangle",
		n:      3,
		edges:  [][3]int64{{0, 1, 10}, {1, 2, 5}, {0, 2, 5}},
		source: 0, sink: 2,
		want: 10,
	},
	{
		name: "two lanes",
		n:    5,
		edges: [][3]int64{
			{0, 1, 10}, {1, 2, 20}, {2, 3, 10},
			{3, 4, 20}, {0, 2, 5}, {2, 4, 5},
		},
		source: 0, sink: 4,
		want: 15,
	},
	{
		name: "textbook",
		n:    6,
		edges: [][3]int64{
			{0, 1, 16}, {0, 2, 13}, {1, 2, 10}, {2, 1, 4}, {1, 3, 12},
			{3, 2, 9}, {2, 4, 14}, {4, 3, 7}, {3, 5, 20}, {4, 5, 4},
		},
		source: 0, sink: 5,
		want: 23,
	},
	{
		name:   "parallel edges",
		n:      2,
		edges:  [][3]int64{{0, 1, 2}, {0, 1, 5}},
		source: 0, sink: 1,
		want: 7,
	},
	{
		name:   "zero capacity",
		n:      2,
		edges:  [][3]int64{{0, 1, 0}},
		source: 0, sink: 1,
		want: 0,
	},
	{
		name:   "disconnected",
		n:      4,
		edges:  [][3]int64{{0, 1, 3}, {2, 3, 3}},
		source: 0, sink: 3,
		want: 0,
	},
	{
		name:   "against the arrows",
		n:      3,
		edges:  [][3]int64{{2, 1, 8}, {1, 0, 8}},
		source: 0, sink: 2,
		want: 0,
	},
}

// TestKnownNetworks checks every algorithm against hand-computed values.
func (s *MaxFlowSuite) TestKnownNetworks() {
	for _, tc := range knownCases {
		for _, algo := range algorithms {
			s.Run(tc.name+"/"+algo.String(), func() {
				nw := newNetwork(s.T(), tc.n, tc.edges...)
				got, err := nw.MaxFlow(tc.source, tc.sink, flow.WithAlgorithm(algo))
				require.NoError(s.T(), err)
				require.Equal(s.T(), tc.want, got)
				requireValidFlow(s.T(), nw, tc.source, tc.sink, got)
			})
		}
	}
}

// TestSourceEqualsSink returns zero and leaves flows from the last run intact.
func (s *MaxFlowSuite) TestSourceEqualsSink() {
	nw := newNetwork(s.T(), 3, [3]int64{0, 1, 10}, [3]int64{1, 2, 5})
	_, err := nw.MaxFlow(0, 2)
	require.NoError(s.T(), err)

	before := snapshot(s.T(), nw)
	for v := 0; v < nw.VertexCount(); v++ {
		got, err := nw.MaxFlow(v, v)
		require.NoError(s.T(), err)
		require.Zero(s.T(), got)
	}
	require.Equal(s.T(), before, snapshot(s.T(), nw))
}

// TestRepeatedCallsReset ensures a second call does not build on stale flow.
func (s *MaxFlowSuite) TestRepeatedCallsReset() {
	nw := newNetwork(s.T(), 3, [3]int64{0, 1, 10}, [3]int64{1, 2, 5}, [3]int64{0, 2, 5})
	for i := 0; i < 3; i++ {
		got, err := nw.MaxFlow(0, 2)
		require.NoError(s.T(), err)
		require.EqualValues(s.T(), 10, got)
	}

	got, err := nw.MaxFlow(0, 1)
	require.NoError(s.T(), err)
	require.EqualValues(s.T(), 10, got)
	requireValidFlow(s.T(), nw, 0, 1, got)
}

// TestNoReverseEdgeCarriesFlow checks flow through an edge without a twin.
func (s *MaxFlowSuite) TestNoReverseEdgeCarriesFlow() {
	nw, err := flow.NewNetwork(3)
	require.NoError(s.T(), err)
	require.NoError(s.T(), nw.AddEdgeWithoutReverse(0, 1, 15))
	require.NoError(s.T(), nw.AddEdge(1, 2, 20))

	got, err := nw.MaxFlow(0, 2)
	require.NoError(s.T(), err)
	require.EqualValues(s.T(), 15, got)

	edges, err := nw.EdgesForVertex(0)
	require.NoError(s.T(), err)
	require.EqualValues(s.T(), 15, edges[0].Flow)
}

// TestRandomNetworksRespectInvariants checks conservation and capacity on
// generated networks.
func (s *MaxFlowSuite) TestRandomNetworksRespectInvariants() {
	for seed := int64(1); seed <= 15; seed++ {
		nw, err := builder.BuildNetwork(9,
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithUniformAmount(1, 60)},
			builder.RandomSparse(0.35))
		require.NoError(s.T(), err)

		got, err := nw.MaxFlow(0, 8)
		require.NoError(s.T(), err)
		requireValidFlow(s.T(), nw, 0, 8, got)
	}
}

// TestSourceCapacityBound accepts source capacity summing to exactly
// MaxInt64 and rejects one unit more without touching any edge.
func (s *MaxFlowSuite) TestSourceCapacityBound() {
	for _, algo := range algorithms {
		s.Run(algo.String(), func() {
			nw := newNetwork(s.T(), 4,
				[3]int64{0, 1, math.MaxInt64 - 1}, [3]int64{0, 2, 1},
				[3]int64{1, 3, math.MaxInt64}, [3]int64{2, 3, math.MaxInt64})
			got, err := nw.MaxFlow(0, 3, flow.WithAlgorithm(algo))
			require.NoError(s.T(), err)
			require.EqualValues(s.T(), int64(math.MaxInt64), got)

			require.NoError(s.T(), nw.AddEdge(0, 3, 1))
			before := snapshot(s.T(), nw)
			_, err = nw.MaxFlow(0, 3, flow.WithAlgorithm(algo))
			require.ErrorIs(s.T(), err, flow.ErrCapacityOverflow)
			require.Equal(s.T(), before, snapshot(s.T(), nw))
		})
	}
}

func (s *MaxFlowSuite) TestUnknownAlgorithm() {
	nw := newNetwork(s.T(), 2, [3]int64{0, 1, 1})
	_, err := nw.MaxFlow(0, 1, flow.WithAlgorithm(flow.Algorithm(42)))
	require.ErrorIs(s.T(), err, flow.ErrOptionViolation)
}

func (s *MaxFlowSuite) TestLoggerReceivesPhases() {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	nw := newNetwork(s.T(), 3, [3]int64{0, 1, 4}, [3]int64{1, 2, 4})
	_, err := nw.MaxFlow(0, 2, flow.WithLogger(log))
	require.NoError(s.T(), err)
	require.Contains(s.T(), buf.String(), "dinic phase")
}

func TestMaxFlowSuite(t *testing.T) {
	suite.Run(t, new(MaxFlowSuite))
}

// requireValidFlow asserts capacity respect on every edge, conservation at
// every vertex other than source and sink, and that the sink receives value.
func requireValidFlow(t *testing.T, nw *flow.Network, source, sink int, value int64) {
	t.Helper()
	n := nw.VertexCount()
	net := make([]int64, n) // inflow - outflow
	for u := 0; u < n; u++ {
		edges, err := nw.EdgesForVertex(u)
		require.NoError(t, err)
		for _, e := range edges {
			require.LessOrEqual(t, e.Flow, e.Capacity, "edge %d→%d", u, e.To)
			if e.Capacity > 0 {
				require.GreaterOrEqual(t, e.Flow, int64(0), "edge %d→%d", u, e.To)
			}
			if e.Flow > 0 {
				net[u] -= e.Flow
				net[e.To] += e.Flow
			}
		}
	}
	for v := 0; v < n; v++ {
		switch v {
		case source:
			require.Equal(t, -value, net[v], "source outflow")
		case sink:
			require.Equal(t, value, net[v], "sink inflow")
		default:
			require.Zero(t, net[v], "conservation at %d", v)
		}
	}
}

func snapshot(t *testing.T, nw *flow.Network) [][]flow.Edge {
	t.Helper()
	out := make([][]flow.Edge, nw.VertexCount())
	for v := range out {
		edges, err := nw.EdgesForVertex(v)
		require.NoError(t, err)
		out[v] = edges
	}
	return out
}
