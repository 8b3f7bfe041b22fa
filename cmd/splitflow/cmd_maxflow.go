package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/splitflow/flow"
	"github.com/katalvlaran/splitflow/ledger"
)

var algorithms = map[string]flow.Algorithm{
	"dinic":          flow.Dinic,
	"edmonds-karp":   flow.EdmondsKarp,
	"ford-fulkerson": flow.FordFulkerson,
}

func newMaxFlowCmd(a *app) *cobra.Command {
	var from, to, algo string
	cmd := &cobra.Command{
		Use:   "maxflow [ledger.yaml|-] --from NAME --to NAME",
		Short: "Print how much one participant can pass to another through the debts",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			alg, ok := algorithms[algo]
			if !ok {
				return fmt.Errorf("unknown algorithm %q (want dinic, edmonds-karp or ford-fulkerson)", algo)
			}

			r, closeFn, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer closeFn()
			l, err := ledger.Decode(r)
			if err != nil {
				return err
			}

			exp := a.cfg.Settle.MinorUnitExponent
			triples, idx, err := l.Triples(exp)
			if err != nil {
				return err
			}
			source, ok := idx.Vertex(from)
			if !ok {
				return fmt.Errorf("--from: %w: %q", ledger.ErrUnknownParticipant, from)
			}
			sink, ok := idx.Vertex(to)
			if !ok {
				return fmt.Errorf("--to: %w: %q", ledger.ErrUnknownParticipant, to)
			}

			nw, err := flow.NewNetwork(idx.Len())
			if err != nil {
				return err
			}
			for _, t := range triples {
				if err = nw.AddEdge(t.Debtor, t.Creditor, t.Amount); err != nil {
					return err
				}
			}
			value, err := nw.MaxFlow(source, sink, flow.WithAlgorithm(alg), flow.WithLogger(a.log))
			if err != nil {
				return err
			}

			a.log.Debug("max flow",
				slog.String("from", from), slog.String("to", to),
				slog.String("algorithm", alg.String()), slog.Int64("minor_units", value))
			fmt.Fprintln(cmd.OutOrStdout(), ledger.FromMinorUnits(value, exp).StringFixed(exp))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&from, "from", "", "source participant")
	f.StringVar(&to, "to", "", "sink participant")
	f.StringVar(&algo, "algorithm", "dinic", "dinic, edmonds-karp or ford-fulkerson")
	f.Int32("minor-unit-exponent", 0, "decimal places of one currency unit (default from config: 2)")
	_ = cmd.MarkFlagRequired("from")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}
