package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/splitflow/builder"
	"github.com/katalvlaran/splitflow/ledger"
)

// maxLetterNames is the largest group the letters scheme can name.
const maxLetterNames = 26

func newGenerateCmd(_ *app) *cobra.Command {
	var (
		topology, names, prefix, group string
		n                              int
		seed, lo, hi                   int64
		p                              float64
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print a synthetic ledger for experiments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var con builder.Constructor
			switch topology {
			case "path":
				con = builder.Path()
			case "star":
				con = builder.Star()
			case "cycle":
				con = builder.Cycle()
			case "complete":
				con = builder.Complete()
			case "random":
				con = builder.RandomSparse(p)
			default:
				return fmt.Errorf("unknown topology %q (want path, star, cycle, complete or random)", topology)
			}
			if lo <= 0 || hi < lo {
				return fmt.Errorf("amount range [%d, %d] must satisfy 0 < min <= max", lo, hi)
			}

			opts := []builder.BuilderOption{builder.WithSeed(seed), builder.WithUniformAmount(lo, hi)}
			switch {
			case prefix != "":
				opts = append(opts, builder.WithSymbNumb(prefix))
			case names == "letters":
				if n > maxLetterNames {
					return fmt.Errorf("letters scheme names at most %d participants, got %d", maxLetterNames, n)
				}
				opts = append(opts, builder.WithSymbolIDs())
			case names == "excel":
				opts = append(opts, builder.WithExcelColumnIDs())
			case names == "decimal":
			default:
				return fmt.Errorf("unknown naming scheme %q (want decimal, letters or excel)", names)
			}

			l, err := builder.BuildLedger(group, n, opts, con)
			if err != nil {
				return err
			}
			return ledger.Encode(cmd.OutOrStdout(), l)
		},
	}

	f := cmd.Flags()
	f.StringVar(&topology, "topology", "random", "path, star, cycle, complete or random")
	f.IntVarP(&n, "participants", "n", 6, "number of participants")
	f.Int64Var(&seed, "seed", 1, "random seed")
	f.Float64Var(&p, "p", 0.3, "debt probability per ordered pair for --topology random")
	f.Int64Var(&lo, "min", 100, "smallest debt in minor units")
	f.Int64Var(&hi, "max", 10000, "largest debt in minor units")
	f.StringVar(&names, "names", "decimal", "decimal, letters or excel")
	f.StringVar(&prefix, "prefix", "", "name participants prefix0, prefix1, ... (overrides --names)")
	f.StringVar(&group, "group", "", "group name written to the ledger")
	return cmd
}
