// Package splitflow settles group debts with as few payments as possible.
//
// Given who owes whom, splitflow loads the debts into a flow network and
// produces a shorter list of payments that leaves every participant's net
// balance unchanged.
//
// Packages:
//
//	flow/       Network (adjacency arena with paired residual edges),
//	            MaxFlow (Dinic, Edmonds–Karp, Ford–Fulkerson) and the
//	            MinimizeDebtChains simplifier
//	ledger/     the input contract: participants and decimal debts, YAML/JSON
//	            decoding, validation, conversion to integer minor units
//	settle/     Engine: ledger → network → strategy → payment Plan;
//	            batch settlement of independent groups
//	builder/    deterministic debt networks and ledgers (path, star, cycle,
//	            complete, random) for tests, benchmarks and the CLI
//	cmd/splitflow command line: settle, maxflow, generate, version
//
// Quick example:
//
//	ana → ben 60, ben → cleo 60   ⇒   ana → cleo 60
//
//	plan, err := settle.New().Settle(&ledger.Ledger{Debts: debts})
//	for _, in := range plan.Instructions {
//		fmt.Println(in.Payer, "pays", in.Payee, in.Amount)
//	}
//
// Amounts are exact: ledgers carry decimals, the network carries int64
// minor units (cents by default), and nothing is rounded.
package splitflow
