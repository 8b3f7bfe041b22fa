// Command splitflow settles group debts from YAML or JSON ledgers.
//
// Usage:
//
//	splitflow settle trip.yaml --strategy chains --output json
//	splitflow settle groups.yaml --batch
//	splitflow maxflow trip.yaml --from alice --to dave
//	splitflow generate --topology random -n 8 --seed 3 > trip.yaml
//	splitflow version
package main

import (
	"fmt"
	"os"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := execute(newRootCmd()); err != nil {
		fmt.Fprintln(os.Stderr, "splitflow:", err)
		os.Exit(1)
	}
}
