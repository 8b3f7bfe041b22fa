package flow

import (
	"log/slog"
	"math"
)

// fordFulkerson computes max flow with DFS-found augmenting paths.
//
// Steps:
//  1. Iterative DFS from source over edges with residual capacity,
//     recording the bottleneck to each discovered vertex.
//  2. If sink was not reached, stop.
//  3. Augment along the recorded path by the bottleneck at sink.
//
// Complexity:
//
//	Time:   O(E · F) where F is the max flow value.
//	Memory: O(V) for parent links and the DFS stack.
//
// Suitable for small integral networks.
func (nw *Network) fordFulkerson(source, sink int, log *slog.Logger) int64 {
	n := len(nw.adj)
	parent := make([]arc, n)
	bottleneck := make([]int64, n)
	visited := make([]bool, n)

	var total int64
	for {
		for i := range visited {
			visited[i] = false
		}
		visited[source] = true
		bottleneck[source] = math.MaxInt64
		stack := []int{source}
		found := false

		for len(stack) > 0 && !found {
			u := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for j, e := range nw.adj[u] {
				if e.Residual() <= 0 || visited[e.To] {
					continue
				}
				visited[e.To] = true
				parent[e.To] = arc{from: u, idx: j}
				bottleneck[e.To] = min(bottleneck[u], e.Residual())
				if e.To == sink {
					found = true
					break
				}
				stack = append(stack, e.To)
			}
		}
		if !found {
			break
		}

		delta := bottleneck[sink]
		var path []arc
		for v := sink; v != source; v = parent[v].from {
			path = append(path, parent[v])
		}
		nw.augment(path, delta)
		total += delta
		log.Debug("ford-fulkerson augment", slog.Int("edges", len(path)),
			slog.Int64("delta", delta), slog.Int64("total", total))
	}

	return total
}
