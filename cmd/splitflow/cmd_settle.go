package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/splitflow/ledger"
	"github.com/katalvlaran/splitflow/settle"
)

func newSettleCmd(a *app) *cobra.Command {
	var (
		output string
		asJSON bool
		batch  bool
	)
	cmd := &cobra.Command{
		Use:   "settle [ledger.yaml|-]",
		Short: "Print the payments that settle a ledger",
		Long: `settle reads one ledger (or, with --batch, a document of the form
{groups: [...]}) from a file or standard input and prints the payment plan.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if asJSON {
				output = "json"
			}
			if err := checkOutput(output); err != nil {
				return err
			}
			e, err := a.engine()
			if err != nil {
				return err
			}

			r, closeFn, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer closeFn()

			var plans []*settle.Plan
			if batch {
				b, err := ledger.DecodeBatch(r)
				if err != nil {
					return err
				}
				plans, err = e.SettleBatch(cmd.Context(), b.Groups)
				if err != nil {
					return err
				}
			} else {
				l, err := ledger.Decode(r)
				if err != nil {
					return err
				}
				p, err := e.Settle(l)
				if err != nil {
					return err
				}
				plans = []*settle.Plan{p}
			}

			return writePlans(cmd.OutOrStdout(), output, plans, batch, a.cfg.Settle.MinorUnitExponent)
		},
	}

	f := cmd.Flags()
	f.String("strategy", "", "chains or pairwise (default from config: chains)")
	f.Int32("minor-unit-exponent", 0, "decimal places of one currency unit (default from config: 2)")
	f.Int("max-participants", 0, "reject ledgers with more participants (0 = unlimited)")
	f.Int("max-collapses", 0, "abort after this many chain collapses (0 = unlimited)")
	f.Int("concurrency", 0, "groups settled in parallel with --batch (0 = GOMAXPROCS)")
	f.StringVarP(&output, "output", "o", "text", "text, json or yaml")
	f.BoolVar(&asJSON, "json", false, "shorthand for --output json")
	f.BoolVar(&batch, "batch", false, "input holds several groups")
	return cmd
}

// openInput returns the named file, or standard input for no argument or "-".
func openInput(cmd *cobra.Command, args []string) (io.Reader, func() error, error) {
	if len(args) == 0 || args[0] == "-" {
		return cmd.InOrStdin(), func() error { return nil }, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}
