package flow

import (
	"fmt"
	"math"
	"sort"
)

// Network is a directed capacitated graph over the vertices 0..n-1.
//
// Each vertex owns an ordered adjacency list; the position of an edge inside
// that list is significant because paired residual edges reference each
// other by index. The vertex count is fixed at construction.
//
// A Network is not safe for concurrent use. Build one per computation.
type Network struct {
	adj [][]Edge
}

// NewNetwork returns an empty network with n vertices.
// Returns ErrVertexCount if n < 0.
func NewNetwork(n int) (*Network, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrVertexCount, n)
	}
	return &Network{adj: make([][]Edge, n)}, nil
}

// VertexCount reports the number of vertices.
func (nw *Network) VertexCount() int { return len(nw.adj) }

// AddEdge appends the edge from→to with the given capacity and a paired
// reverse edge to→from with capacity 0. The two edges record each other's
// adjacency position in Rev.
//
// Returns ErrVertexOutOfRange for an invalid endpoint and an EdgeError
// (matching ErrNegativeCapacity) for capacity < 0. Nothing is appended on error.
func (nw *Network) AddEdge(from, to int, capacity int64) error {
	if err := nw.checkEdge(from, to, capacity); err != nil {
		return err
	}

	fi := len(nw.adj[from])
	ri := len(nw.adj[to])
	if from == to {
		// self-loop: the reverse edge lands right after the forward one
		ri++
	}
	nw.adj[from] = append(nw.adj[from], Edge{To: to, Capacity: capacity, Rev: ri})
	nw.adj[to] = append(nw.adj[to], Edge{To: from, Capacity: 0, Rev: fi})

	return nil
}

// AddEdgeWithoutReverse appends only the forward edge from→to.
// The edge carries Rev == NoReverse. Validation matches AddEdge.
func (nw *Network) AddEdgeWithoutReverse(from, to int, capacity int64) error {
	if err := nw.checkEdge(from, to, capacity); err != nil {
		return err
	}
	nw.adj[from] = append(nw.adj[from], Edge{To: to, Capacity: capacity, Rev: NoReverse})

	return nil
}

// EdgesForVertex returns a copy of v's adjacency list, reverse edges included.
func (nw *Network) EdgesForVertex(v int) ([]Edge, error) {
	if err := nw.checkVertex(v); err != nil {
		return nil, err
	}
	out := make([]Edge, len(nw.adj[v]))
	copy(out, nw.adj[v])

	return out, nil
}

// ConnectedNodes returns every vertex reachable from `from` over edges with
// non-zero capacity, `from` included, in ascending order.
//
// Complexity: O(V + E) time, O(V) memory.
func (nw *Network) ConnectedNodes(from int) ([]int, error) {
	if err := nw.checkVertex(from); err != nil {
		return nil, err
	}

	visited := make([]bool, len(nw.adj))
	visited[from] = true
	queue := []int{from}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for _, e := range nw.adj[u] {
			if e.Capacity != 0 && !visited[e.To] {
				visited[e.To] = true
				queue = append(queue, e.To)
			}
		}
	}
	sort.Ints(queue)

	return queue, nil
}

// Settlements lists every edge with positive capacity in vertex order, then
// adjacency order. Each entry is one payment instruction.
func (nw *Network) Settlements() []Settlement {
	var out []Settlement
	for u, edges := range nw.adj {
		for _, e := range edges {
			if e.Capacity > 0 {
				out = append(out, Settlement{From: u, To: e.To, Amount: e.Capacity})
			}
		}
	}
	return out
}

// Residual builds a fresh network holding, for every edge with positive
// capacity, the capacity left after the last MaxFlow call. Edges that are
// saturated are dropped. Reverse edges are rebuilt by AddEdge.
func (nw *Network) Residual() *Network {
	res := &Network{adj: make([][]Edge, len(nw.adj))}
	for u, edges := range nw.adj {
		for _, e := range edges {
			if e.Capacity <= 0 {
				continue
			}
			if left := e.Residual(); left > 0 {
				// endpoints and capacity are already valid
				_ = res.AddEdge(u, e.To, left)
			}
		}
	}
	return res
}

// ResetFlow zeroes the flow on every edge.
func (nw *Network) ResetFlow() {
	for u := range nw.adj {
		for i := range nw.adj[u] {
			nw.adj[u][i].Flow = 0
		}
	}
}

// edgeCount counts edges with positive capacity.
func (nw *Network) edgeCount() int {
	n := 0
	for _, edges := range nw.adj {
		for _, e := range edges {
			if e.Capacity > 0 {
				n++
			}
		}
	}
	return n
}

// removeEdge deletes adj[u][i] together with its paired residual edge and
// re-links Rev on every edge whose twin changed position.
func (nw *Network) removeEdge(u, i int) {
	e := nw.adj[u][i]
	if e.Rev != NoReverse {
		// detach the pairing first so relinking never follows a stale index
		nw.adj[u][i].Rev = NoReverse
		nw.detach(e.To, e.Rev)
		if e.To == u && e.Rev < i {
			i--
		}
	}
	nw.detach(u, i)
}

// detach removes adj[u][i] and shifts the tail left by one, fixing the Rev
// of each shifted edge's twin.
func (nw *Network) detach(u, i int) {
	list := nw.adj[u]
	copy(list[i:], list[i+1:])
	list = list[:len(list)-1]
	nw.adj[u] = list

	// Self-loop twins live in this same list: move their Rev first so the
	// relink below writes through current positions.
	for j := range list {
		if list[j].To == u && list[j].Rev > i {
			list[j].Rev--
		}
	}
	for j := i; j < len(list); j++ {
		if r := list[j].Rev; r != NoReverse {
			nw.adj[list[j].To][r].Rev = j
		}
	}
}

func (nw *Network) checkVertex(v int) error {
	if v < 0 || v >= len(nw.adj) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrVertexOutOfRange, v, len(nw.adj))
	}
	return nil
}

// checkOutCapacity verifies that the positive capacities leaving v sum
// within int64. Every flow total out of v is bounded by that sum.
func (nw *Network) checkOutCapacity(v int) error {
	var sum int64
	for _, e := range nw.adj[v] {
		if e.Capacity <= 0 {
			continue
		}
		if sum > math.MaxInt64-e.Capacity {
			return fmt.Errorf("%w: vertex %d", ErrCapacityOverflow, v)
		}
		sum += e.Capacity
	}
	return nil
}

func (nw *Network) checkEdge(from, to int, capacity int64) error {
	if err := nw.checkVertex(from); err != nil {
		return err
	}
	if err := nw.checkVertex(to); err != nil {
		return err
	}
	if capacity < 0 {
		return EdgeError{From: from, To: to, Cap: capacity}
	}
	return nil
}
