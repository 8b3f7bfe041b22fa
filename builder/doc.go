// Package builder generates deterministic debt networks and ledgers for
// tests, benchmarks and the CLI "generate" command.
//
// Topologies (each a Constructor applied to a flow.Network):
//
//   - Path():          0→1→…→n-1, the canonical collapsible chain.
//   - Star():          every participant 1..n-1 owes participant 0.
//   - Cycle():         a path closed by (n-1)→0; net positions cancel.
//   - Complete():      every ordered pair i→j, i≠j.
//   - RandomSparse(p): each ordered pair independently with probability p.
//
// Amounts are minor units drawn from an AmountFn (constant by default,
// uniform via WithUniformAmount). Participant names for BuildLedger come
// from an IDFn (decimal by default, letters via WithSymbolIDs).
//
// Same options, seed and constructor order always produce the same network.
// Constructors return sentinel errors and never panic; option constructors
// panic on nil or meaningless arguments.
package builder
