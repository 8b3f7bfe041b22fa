// Package flow implements the settlement flow network: a directed graph of
// participants indexed 0..n-1 whose edges carry debts in minor currency
// units, a maximum-flow solver, and the debt-chain simplifier.
//
// # Network
//
// A Network has a fixed vertex count. Edges are appended in two ways:
//
//   - AddEdge(from, to, cap) appends from→to and a paired reverse edge
//     to→from with capacity 0. Each edge stores the adjacency position of
//     its twin in Edge.Rev.
//   - AddEdgeWithoutReverse(from, to, cap) appends from→to only
//     (Rev == NoReverse). The simplifier uses it to install collapsed edges.
//
// Vertex indices outside [0, VertexCount) yield ErrVertexOutOfRange and
// negative capacities yield an EdgeError matching ErrNegativeCapacity. No
// operation clamps or ignores a bad index.
//
// # Max flow
//
// MaxFlow(source, sink, opts...) resets all flow and then runs one of:
//
//   - Dinic (default)
//   - Method: BFS level graph + DFS blocking flow with per-vertex resume pointers.
//   - Time:   O(V²·E); O(E·√V) on unit-capacity networks.
//   - Edmonds–Karp
//   - Method: BFS shortest augmenting paths.
//   - Time:   O(V·E²).
//   - Ford–Fulkerson
//   - Method: DFS augmenting paths.
//   - Time:   O(E·F) for max flow F.
//
// All three return the same value; the alternatives exist for cross-checks.
// Scan state (levels, resume pointers, parents) lives only for one call.
//
// # Debt chains
//
// MinimizeDebtChains repeatedly collapses the longest admissible chain
// a→b→…→z starting at a chosen vertex into one edge a→z, moving the head
// edge's capacity. Later chain edges must carry at least the head capacity,
// so no edge goes negative and every participant's net position is kept.
// The heuristic is greedy and depends on adjacency order; it reduces the
// number of transactions but does not promise the minimum.
//
// # Concurrency
//
// Nothing here locks. A Network must not be used from several goroutines;
// build one per settlement.
//
// # Errors
//
//	ErrVertexOutOfRange - vertex index outside [0, VertexCount).
//	ErrNegativeCapacity - negative edge capacity (via EdgeError).
//	ErrVertexCount      - negative vertex count passed to NewNetwork.
//	ErrIterationLimit   - WithMaxCollapses budget exceeded.
//	ErrOptionViolation  - invalid MaxFlow option.
//	ErrCapacityOverflow - capacities leaving the MaxFlow source overflow int64.
package flow
