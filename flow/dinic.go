package flow

import (
	"log/slog"
	"math"
)

// MaxFlow returns the maximum flow deliverable from source to sink under the
// current capacities. Flow values from any earlier call are reset first, so
// after MaxFlow returns each edge's Flow describes exactly this computation.
//
// Edges added with AddEdgeWithoutReverse carry flow forward but have no
// residual partner, so flow pushed through them is never cancelled.
//
// The result never exceeds the summed capacity of the edges leaving source;
// if that sum does not fit in int64 MaxFlow returns ErrCapacityOverflow
// before touching any edge.
//
// Returns ErrVertexOutOfRange for invalid endpoints and ErrOptionViolation
// for bad options. If source == sink it returns 0 and leaves every edge as is.
func (nw *Network) MaxFlow(source, sink int, opts ...Option) (int64, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return 0, o.err
	}
	if err := nw.checkVertex(source); err != nil {
		return 0, err
	}
	if err := nw.checkVertex(sink); err != nil {
		return 0, err
	}
	if source == sink {
		return 0, nil
	}
	if err := nw.checkOutCapacity(source); err != nil {
		return 0, err
	}

	nw.ResetFlow()
	switch o.Algorithm {
	case EdmondsKarp:
		return nw.edmondsKarp(source, sink, o.Logger), nil
	case FordFulkerson:
		return nw.fordFulkerson(source, sink, o.Logger), nil
	default:
		return nw.dinic(source, sink, o.Logger), nil
	}
}

// dinic computes max flow with level graphs and blocking flows.
//
// Steps:
//  1. BFS from source over edges with residual capacity assigns levels.
//  2. If sink has no level, stop: the accumulated flow is final.
//  3. Reset the per-vertex resume pointers and push flow along strictly
//     increasing levels until the level graph is blocked.
//  4. Go back to 1.
//
// level and next are scoped to this call.
//
// Complexity:
//
//	Time:   O(V²·E) in general, O(E·√V) on unit-capacity networks.
//	Memory: O(V) beyond the network itself.
func (nw *Network) dinic(source, sink int, log *slog.Logger) int64 {
	n := len(nw.adj)
	level := make([]int, n)
	next := make([]int, n)
	queue := make([]int, 0, n)

	var total int64
	for phase := 1; nw.levels(source, sink, level, queue); phase++ {
		for i := range next {
			next[i] = 0
		}
		var pushedInPhase int64
		for {
			pushed := nw.push(source, sink, math.MaxInt64, level, next)
			if pushed == 0 {
				break
			}
			pushedInPhase += pushed
		}
		total += pushedInPhase
		log.Debug("dinic phase", slog.Int("phase", phase),
			slog.Int64("pushed", pushedInPhase), slog.Int64("total", total))
	}

	return total
}

// levels assigns BFS distances from source following edges with Flow < Capacity.
// Unreached vertices get -1. Reports whether sink was reached.
func (nw *Network) levels(source, sink int, level, queue []int) bool {
	for i := range level {
		level[i] = -1
	}
	level[source] = 0
	queue = append(queue[:0], source)
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for _, e := range nw.adj[u] {
			if e.Flow < e.Capacity && level[e.To] < 0 {
				level[e.To] = level[u] + 1
				queue = append(queue, e.To)
			}
		}
	}
	return level[sink] >= 0
}

// push sends at most limit units from u toward sink along the level graph
// and returns the amount sent. next[u] is advanced past edges that cannot
// carry more flow in this phase.
func (nw *Network) push(u, sink int, limit int64, level, next []int) int64 {
	if u == sink {
		return limit
	}
	for ; next[u] < len(nw.adj[u]); next[u]++ {
		e := &nw.adj[u][next[u]]
		if level[e.To] != level[u]+1 || e.Residual() <= 0 {
			continue
		}
		pushed := nw.push(e.To, sink, min(limit, e.Residual()), level, next)
		if pushed > 0 {
			e.Flow += pushed
			if e.Rev != NoReverse {
				nw.adj[e.To][e.Rev].Flow -= pushed
			}
			return pushed
		}
	}
	return 0
}

// augment adds delta along the edges in path, given as (vertex, edge index)
// pairs in source→sink order.
func (nw *Network) augment(path []arc, delta int64) {
	for _, a := range path {
		e := &nw.adj[a.from][a.idx]
		e.Flow += delta
		if e.Rev != NoReverse {
			nw.adj[e.To][e.Rev].Flow -= delta
		}
	}
}

// arc addresses one edge as adj[from][idx].
type arc struct {
	from, idx int
}
