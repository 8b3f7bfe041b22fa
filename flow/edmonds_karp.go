package flow

import (
	"log/slog"
	"math"
)

// edmondsKarp computes max flow by repeatedly augmenting along a shortest
// (fewest-edge) residual path found with BFS.
//
// Complexity: O(V · E²)
// Memory:     O(V)
func (nw *Network) edmondsKarp(source, sink int, log *slog.Logger) int64 {
	n := len(nw.adj)
	parent := make([]arc, n)
	queue := make([]int, 0, n)

	var total int64
	for {
		// 1) BFS recording the edge used to reach each vertex
		for i := range parent {
			parent[i] = arc{from: -1}
		}
		parent[source] = arc{from: source}
		queue = append(queue[:0], source)
		for i := 0; i < len(queue) && parent[sink].from < 0; i++ {
			u := queue[i]
			for j, e := range nw.adj[u] {
				if e.Residual() > 0 && parent[e.To].from < 0 {
					parent[e.To] = arc{from: u, idx: j}
					queue = append(queue, e.To)
				}
			}
		}
		if parent[sink].from < 0 {
			break
		}

		// 2) bottleneck along the path, walking back from sink
		var path []arc
		delta := int64(math.MaxInt64)
		for v := sink; v != source; v = parent[v].from {
			a := parent[v]
			delta = min(delta, nw.adj[a.from][a.idx].Residual())
			path = append(path, a)
		}

		// 3) augment
		nw.augment(path, delta)
		total += delta
		log.Debug("edmonds-karp augment", slog.Int("edges", len(path)),
			slog.Int64("delta", delta), slog.Int64("total", total))
	}

	return total
}
