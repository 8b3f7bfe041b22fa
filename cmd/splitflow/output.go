package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/splitflow/settle"
)

func checkOutput(format string) error {
	switch format {
	case "text", "json", "yaml":
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want text, json or yaml)", format)
	}
}

// planDoc is the machine-readable batch envelope, mirroring ledger.Batch.
type planDoc struct {
	Groups []*settle.Plan `yaml:"groups" json:"groups"`
}

// writePlans renders plans in format. Batch output is wrapped in {groups: [...]}.
// places is the number of decimals shown by the text format.
func writePlans(w io.Writer, format string, plans []*settle.Plan, batch bool, places int32) error {
	var doc any = planDoc{Groups: plans}
	if !batch && len(plans) == 1 {
		doc = plans[0]
	}

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	}

	for i, p := range plans {
		if i > 0 {
			fmt.Fprintln(w)
		}
		writeText(w, p, places)
	}
	return nil
}

func writeText(w io.Writer, p *settle.Plan, places int32) {
	if p.Group != "" {
		fmt.Fprintf(w, "# %s\n", p.Group)
	}
	for _, in := range p.Instructions {
		fmt.Fprintf(w, "%s pays %s %s", in.Payer, in.Payee, in.Amount.StringFixed(places))
		if p.Currency != "" {
			fmt.Fprintf(w, " %s", p.Currency)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintf(w, "%d debts settled with %d payments (%s)\n",
		p.Stats.Debts, p.Stats.Transactions, p.Stats.Strategy)
}
