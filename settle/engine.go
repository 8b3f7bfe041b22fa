package settle

import (
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/splitflow/flow"
	"github.com/katalvlaran/splitflow/ledger"
)

// Engine settles ledgers. Create one with New.
type Engine struct {
	opts options
}

// New returns an Engine configured by opts.
func New(opts ...Option) *Engine {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Engine{opts: o}
}

// Strategy reports the configured strategy.
func (e *Engine) Strategy() Strategy { return e.opts.strategy }

// Settle computes the payment plan for l. l is not modified.
//
// Errors:
//   - ledger sentinels (ErrInvalidLedger, ErrSelfDebt, ...) for bad input.
//   - ErrTooManyParticipants when WithMaxParticipants is exceeded.
//   - flow.ErrIterationLimit when WithMaxCollapses is exceeded.
//   - ErrUnknownStrategy for a Strategy value outside Chains/Pairwise.
//   - ErrBalanceMismatch if the simplified debts do not preserve balances.
func (e *Engine) Settle(l *ledger.Ledger) (*Plan, error) {
	start := time.Now()
	plan, err := e.settle(l)

	out := Outcome{Strategy: e.opts.strategy, Err: err, Duration: time.Since(start)}
	if plan != nil {
		plan.Stats.Duration = out.Duration
		out.Transactions = plan.Stats.Transactions
		out.Collapses = plan.Stats.Collapses
	}
	e.opts.recorder.RecordSettlement(out)

	if err != nil {
		e.opts.logger.Debug("settlement failed",
			slog.String("group", l.Group), slog.Any("error", err))
		return nil, err
	}
	e.opts.logger.Debug("settled",
		slog.String("group", plan.Group),
		slog.String("strategy", plan.Stats.Strategy),
		slog.Int("debts", plan.Stats.Debts),
		slog.Int("transactions", plan.Stats.Transactions),
		slog.Duration("elapsed", out.Duration))

	return plan, nil
}

func (e *Engine) settle(l *ledger.Ledger) (*Plan, error) {
	exp := e.opts.exponent
	triples, idx, err := l.Triples(exp)
	if err != nil {
		return nil, err
	}
	if limit := e.opts.maxParticipants; limit > 0 && idx.Len() > limit {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooManyParticipants, idx.Len(), limit)
	}

	nw, err := flow.NewNetwork(idx.Len())
	if err != nil {
		return nil, err
	}
	for _, t := range triples {
		if err = nw.AddEdge(t.Debtor, t.Creditor, t.Amount); err != nil {
			return nil, fmt.Errorf("settle: load debt %d→%d: %w", t.Debtor, t.Creditor, err)
		}
	}
	before := positions(idx.Len(), nw.Settlements())

	stats := Stats{
		Strategy:     e.opts.strategy.String(),
		Participants: idx.Len(),
		Debts:        len(triples),
	}
	var raw []flow.Settlement
	switch e.opts.strategy {
	case Chains:
		ss, err := nw.MinimizeDebtChains(
			flow.WithSimplifyLogger(e.opts.logger),
			flow.WithMaxCollapses(e.opts.maxCollapses))
		if err != nil {
			return nil, fmt.Errorf("settle: %w", err)
		}
		stats.Collapses, stats.Passes = ss.Collapses, ss.Passes
		raw = nw.Settlements()
	case Pairwise:
		raw, stats.Passes, err = pairwise(nw, e.opts.logger)
		if err != nil {
			return nil, fmt.Errorf("settle: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownStrategy, e.opts.strategy)
	}

	merged := merge(raw)
	after := positions(idx.Len(), merged)
	for v := range before {
		if before[v] != after[v] {
			return nil, fmt.Errorf("%w: %q was %d, now %d",
				ErrBalanceMismatch, idx.Name(v), before[v], after[v])
		}
	}

	plan := &Plan{
		Group:        l.Group,
		Currency:     l.Currency,
		Instructions: make([]Instruction, 0, len(merged)),
		Balances:     make(map[string]decimal.Decimal, idx.Len()),
	}
	for v, net := range before {
		plan.Balances[idx.Name(v)] = ledger.FromMinorUnits(net, exp)
	}
	for _, s := range merged {
		plan.Instructions = append(plan.Instructions, Instruction{
			Payer:      idx.Name(s.From),
			Payee:      idx.Name(s.To),
			Amount:     ledger.FromMinorUnits(s.Amount, exp),
			MinorUnits: s.Amount,
		})
	}
	sort.Slice(plan.Instructions, func(i, j int) bool {
		a, b := plan.Instructions[i], plan.Instructions[j]
		if a.Payer != b.Payer {
			return a.Payer < b.Payer
		}
		return a.Payee < b.Payee
	})
	stats.Transactions = len(plan.Instructions)
	plan.Stats = stats

	return plan, nil
}

// pairwise settles every reachable pair (u, v), u ascending, with one max
// flow each, continuing on the residual debts. It returns the payments and
// the number of max-flow runs.
func pairwise(nw *flow.Network, log *slog.Logger) ([]flow.Settlement, int, error) {
	var (
		out  []flow.Settlement
		runs int
		cur  = nw
	)
	for u := 0; u < cur.VertexCount(); u++ {
		reach, err := cur.ConnectedNodes(u)
		if err != nil {
			return nil, runs, err
		}
		for _, v := range reach {
			if v == u {
				continue
			}
			amount, err := cur.MaxFlow(u, v)
			if err != nil {
				return nil, runs, err
			}
			runs++
			if amount == 0 {
				continue
			}
			out = append(out, flow.Settlement{From: u, To: v, Amount: amount})
			log.Debug("pairwise settlement",
				slog.Int("from", u), slog.Int("to", v), slog.Int64("amount", amount))
			cur = cur.Residual()
		}
	}
	// normally empty: every edge leaving u is saturated once u is done
	out = append(out, cur.Settlements()...)

	return out, runs, nil
}

// merge sums payments per ordered pair and nets opposite directions. The
// result is ordered by (From, To).
func merge(in []flow.Settlement) []flow.Settlement {
	type pair struct{ a, b int }
	sum := make(map[pair]int64, len(in))
	for _, s := range in {
		if s.From == s.To || s.Amount == 0 {
			continue
		}
		if s.From < s.To {
			sum[pair{s.From, s.To}] += s.Amount
		} else {
			sum[pair{s.To, s.From}] -= s.Amount
		}
	}

	out := make([]flow.Settlement, 0, len(sum))
	for p, net := range sum {
		switch {
		case net > 0:
			out = append(out, flow.Settlement{From: p.a, To: p.b, Amount: net})
		case net < 0:
			out = append(out, flow.Settlement{From: p.b, To: p.a, Amount: -net})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})
	return out
}

// positions returns, per vertex, the amount owed to it minus the amount it owes.
func positions(n int, ss []flow.Settlement) []int64 {
	out := make([]int64, n)
	for _, s := range ss {
		out[s.From] -= s.Amount
		out[s.To] += s.Amount
	}
	return out
}
