package flow

import (
	"fmt"
	"log/slog"
)

// SimplifyOption configures MinimizeDebtChains.
type SimplifyOption func(*simplifyOptions)

type simplifyOptions struct {
	logger       *slog.Logger
	maxCollapses int
	singlePass   bool
}

// WithSimplifyLogger receives one debug record per collapsed chain.
func WithSimplifyLogger(l *slog.Logger) SimplifyOption {
	return func(o *simplifyOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMaxCollapses bounds the number of chain collapses. Exceeding it makes
// MinimizeDebtChains return ErrIterationLimit. n <= 0 means no limit.
func WithMaxCollapses(n int) SimplifyOption {
	return func(o *simplifyOptions) {
		o.maxCollapses = n
	}
}

// WithSinglePass stops after one sweep over the start vertices instead of
// sweeping until a sweep collapses nothing.
func WithSinglePass() SimplifyOption {
	return func(o *simplifyOptions) {
		o.singlePass = true
	}
}

// SimplifyStats reports what MinimizeDebtChains did.
type SimplifyStats struct {
	Passes        int // sweeps over the start vertices
	StartVertices int // vertices processed as chain starts, summed over passes
	Collapses     int // chains replaced by a direct edge
	EdgesBefore   int // positive-capacity edges on entry
	EdgesAfter    int // positive-capacity edges on return
}

// chain is a simple path: vertices[k]→vertices[k+1] is adj[vertices[k]][edges[k]].
type chain struct {
	vertices []int
	edges    []int
}

func (c chain) clone() chain {
	return chain{
		vertices: append([]int(nil), c.vertices...),
		edges:    append([]int(nil), c.edges...),
	}
}

// MinimizeDebtChains collapses chains of sequential debts (a owes b, b owes c)
// into direct edges (a owes c) without changing any vertex's net position.
//
// One sweep:
//  1. Among vertices not yet processed in this sweep, pick the one with the
//     fewest outgoing positive-capacity edges (at least one); ties go to the
//     lowest index. Stop the sweep when none is left.
//  2. From that vertex search every simple path over positive edges whose
//     first edge sets the head capacity and whose later edges carry at
//     least that much. Keep the path with the most vertices; the first one
//     found wins ties.
//  3. If the path has two or more edges, subtract the head capacity from each
//     of its edges (dropping edges that reach zero), add a reverse-less edge
//     from its first to its last vertex carrying the head capacity, and
//     search again from the same vertex. Otherwise go back to 1.
//
// Sweeps repeat until one collapses nothing (see WithSinglePass), which makes
// a second call on the result a no-op. Every collapse lowers the total
// capacity by at least the head capacity, so the loop terminates.
//
// The chain choice is a greedy, order-dependent heuristic: it depends on
// adjacency insertion order and does not guarantee the fewest transactions.
//
// Flow values are reset to zero because capacities are redistributed.
//
// Complexity:
//
//	Time:   the chain search enumerates every admissible simple path from
//	        the start vertex, exponential in V on dense networks; it runs
//	        once per collapse and once more per start vertex and sweep.
//	Memory: O(V) beyond the network itself.
//
// Cap the participant count before calling on untrusted input
// (settle.WithMaxParticipants does this for ledgers).
func (nw *Network) MinimizeDebtChains(opts ...SimplifyOption) (SimplifyStats, error) {
	o := simplifyOptions{logger: discardLogger()}
	for _, opt := range opts {
		opt(&o)
	}

	nw.ResetFlow()
	stats := SimplifyStats{EdgesBefore: nw.edgeCount()}

	for {
		stats.Passes++
		collapsed, err := nw.sweep(&o, &stats)
		if err != nil {
			stats.EdgesAfter = nw.edgeCount()
			return stats, err
		}
		if collapsed == 0 || o.singlePass {
			break
		}
	}
	stats.EdgesAfter = nw.edgeCount()

	return stats, nil
}

// sweep runs one pass over the start vertices and returns the collapse count.
func (nw *Network) sweep(o *simplifyOptions, stats *SimplifyStats) (int, error) {
	processed := make([]bool, len(nw.adj))
	collapsed := 0
	for {
		start := nw.nextStart(processed)
		if start < 0 {
			return collapsed, nil
		}
		processed[start] = true
		stats.StartVertices++

		for {
			best := nw.longestChain(start)
			if len(best.vertices) <= 2 {
				break
			}
			if o.maxCollapses > 0 && stats.Collapses >= o.maxCollapses {
				return collapsed, fmt.Errorf("%w: %d", ErrIterationLimit, o.maxCollapses)
			}
			amount := nw.collapse(best)
			stats.Collapses++
			collapsed++
			o.logger.Debug("collapsed chain",
				slog.Any("vertices", best.vertices),
				slog.Int64("amount", amount))
		}
	}
}

// nextStart picks the unprocessed vertex with the smallest positive count of
// outgoing positive-capacity edges, or -1 if there is none.
func (nw *Network) nextStart(processed []bool) int {
	best, bestDeg := -1, 0
	for v, edges := range nw.adj {
		if processed[v] {
			continue
		}
		deg := 0
		for _, e := range edges {
			if e.Capacity > 0 {
				deg++
			}
		}
		if deg > 0 && (best < 0 || deg < bestDeg) {
			best, bestDeg = v, deg
		}
	}
	return best
}

// longestChain runs an exhaustive iterative DFS from start and returns the
// deepest admissible simple path. The result always holds at least start.
func (nw *Network) longestChain(start int) chain {
	type frame struct {
		v    int
		next int
	}

	onPath := make([]bool, len(nw.adj))
	onPath[start] = true
	path := chain{vertices: []int{start}}
	best := path.clone()
	stack := []frame{{v: start}}
	var head int64

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		edges := nw.adj[top.v]
		descended := false
		for top.next < len(edges) {
			i := top.next
			top.next++
			e := edges[i]
			if e.Capacity <= 0 || onPath[e.To] {
				continue
			}
			if len(stack) == 1 {
				head = e.Capacity
			} else if e.Capacity < head {
				continue
			}

			onPath[e.To] = true
			path.vertices = append(path.vertices, e.To)
			path.edges = append(path.edges, i)
			if len(path.vertices) > len(best.vertices) {
				best = path.clone()
			}
			stack = append(stack, frame{v: e.To})
			descended = true
			break
		}
		if descended {
			continue
		}

		stack = stack[:len(stack)-1]
		if len(stack) > 0 {
			last := len(path.vertices) - 1
			onPath[path.vertices[last]] = false
			path.vertices = path.vertices[:last]
			path.edges = path.edges[:last-1]
		}
	}

	return best
}

// collapse applies a chain found by longestChain and returns the moved amount.
func (nw *Network) collapse(c chain) int64 {
	amount := nw.adj[c.vertices[0]][c.edges[0]].Capacity

	// Walk backwards: removing an edge can only shift edges that sit after it
	// in the same list, and each chain vertex appears once on a simple path.
	for k := len(c.edges) - 1; k >= 0; k-- {
		u, i := c.vertices[k], c.edges[k]
		nw.adj[u][i].Capacity -= amount
		if nw.adj[u][i].Capacity == 0 {
			nw.removeEdge(u, i)
		}
	}

	first, last := c.vertices[0], c.vertices[len(c.vertices)-1]
	nw.adj[first] = append(nw.adj[first], Edge{To: last, Capacity: amount, Rev: NoReverse})

	return amount
}
