package flow

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// NoReverse marks an edge that has no paired residual edge.
const NoReverse = -1

// Sentinel errors for flow network operations.
var (
	// ErrVertexOutOfRange is returned when a vertex index is outside [0, VertexCount).
	ErrVertexOutOfRange = errors.New("flow: vertex index out of range")

	// ErrNegativeCapacity is returned when an edge is added with capacity < 0.
	ErrNegativeCapacity = errors.New("flow: negative capacity")

	// ErrVertexCount is returned by NewNetwork for a negative vertex count.
	ErrVertexCount = errors.New("flow: vertex count must be non-negative")

	// ErrIterationLimit is returned when MinimizeDebtChains exceeds its collapse budget.
	ErrIterationLimit = errors.New("flow: chain collapse limit exceeded")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("flow: invalid option supplied")

	// ErrCapacityOverflow is returned by MaxFlow when the capacities leaving
	// the source sum past math.MaxInt64.
	ErrCapacityOverflow = errors.New("flow: source capacity overflows int64")
)

// EdgeError is returned when an edge has a negative capacity.
// It unwraps to ErrNegativeCapacity.
type EdgeError struct {
	From, To int
	Cap      int64
}

func (e EdgeError) Error() string {
	return fmt.Sprintf("flow: negative capacity on edge %d→%d: %d", e.From, e.To, e.Cap)
}

// Unwrap lets errors.Is(err, ErrNegativeCapacity) match an EdgeError.
func (e EdgeError) Unwrap() error { return ErrNegativeCapacity }

// Edge is one entry of a vertex's adjacency list.
//
// Capacity is the amount in minor currency units the edge can carry, Flow the
// amount routed through it by the last MaxFlow call. Rev is the position of
// the paired residual edge inside the adjacency list of To, or NoReverse.
// Reverse edges are created with Capacity 0 and carry Flow == -forward.Flow.
type Edge struct {
	To       int
	Capacity int64
	Flow     int64
	Rev      int
}

// Residual returns the capacity still available on e.
func (e Edge) Residual() int64 { return e.Capacity - e.Flow }

// Settlement is a single payment instruction: From pays To the Amount.
type Settlement struct {
	From, To int
	Amount   int64
}

// Algorithm selects the max-flow routine used by MaxFlow.
type Algorithm int

const (
	// Dinic builds a BFS level graph and pushes blocking flow (default).
	Dinic Algorithm = iota
	// EdmondsKarp augments along shortest paths found by BFS.
	EdmondsKarp
	// FordFulkerson augments along any path found by iterative DFS.
	FordFulkerson
)

// String implements fmt.Stringer.
func (a Algorithm) String() string {
	switch a {
	case Dinic:
		return "dinic"
	case EdmondsKarp:
		return "edmonds-karp"
	case FordFulkerson:
		return "ford-fulkerson"
	default:
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
}

// Option configures MaxFlow via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation when
// MaxFlow is invoked.
type Option func(*FlowOptions)

// FlowOptions holds the resolved MaxFlow configuration.
//   - Algorithm: max-flow routine, Dinic by default.
//   - Logger: receives one debug record per phase or augmentation.
type FlowOptions struct {
	Algorithm Algorithm
	Logger    *slog.Logger

	err error
}

// DefaultOptions returns FlowOptions with Dinic and a discarding logger.
func DefaultOptions() FlowOptions {
	return FlowOptions{
		Algorithm: Dinic,
		Logger:    discardLogger(),
	}
}

// WithAlgorithm selects the max-flow routine.
func WithAlgorithm(a Algorithm) Option {
	return func(o *FlowOptions) {
		switch a {
		case Dinic, EdmondsKarp, FordFulkerson:
			o.Algorithm = a
		default:
			o.err = fmt.Errorf("%w: unknown algorithm %d", ErrOptionViolation, int(a))
		}
	}
}

// WithLogger routes per-phase debug records to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *FlowOptions) {
		if l != nil {
			o.Logger = l
		}
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
