package settle

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/splitflow/ledger"
)

// SettleBatch settles independent groups concurrently, at most
// WithConcurrency at a time. Plans are returned in input order. The first
// failure cancels the groups that have not started yet and is returned
// with the group's position and name.
func (e *Engine) SettleBatch(ctx context.Context, groups []ledger.Ledger) ([]*Plan, error) {
	plans := make([]*Plan, len(groups))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.opts.concurrency)
	for i := range groups {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			p, err := e.Settle(&groups[i])
			if err != nil {
				return fmt.Errorf("group #%d %q: %w", i, groups[i].Group, err)
			}
			plans[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return plans, nil
}

// NetBalances returns every participant's net position in major units:
// positive means the participant is owed money. The ledger is validated
// first. Participants listed without debts get a zero balance.
func NetBalances(l *ledger.Ledger) (map[string]decimal.Decimal, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}

	out := make(map[string]decimal.Decimal, len(l.Participants))
	for _, p := range l.Participants {
		out[p] = decimal.Zero
	}
	for _, d := range l.Debts {
		out[d.Debtor] = out[d.Debtor].Sub(d.Amount)
		out[d.Creditor] = out[d.Creditor].Add(d.Amount)
	}
	return out, nil
}
