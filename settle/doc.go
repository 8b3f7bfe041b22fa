// Package settle turns a ledger of group debts into a short list of payment
// instructions.
//
// An Engine validates the ledger, converts amounts to integer minor units,
// loads every debt into a flow.Network and runs one of two strategies:
//
//   - Chains (default): flow.Network.MinimizeDebtChains collapses runs of
//     sequential debts (a owes b, b owes c) into direct debts (a owes c).
//   - Pairwise: for each participant u and each participant v still reachable
//     from u, routes the max flow u→v over the remaining debts, records one
//     payment u→v of that size and continues on the residual debts.
//
// The resulting edges are merged per pair (opposite directions are netted)
// and checked against every participant's net position before and after;
// a difference is reported as ErrBalanceMismatch and never returned as a
// plan.
//
// Engines are immutable after New and safe for concurrent use; each Settle
// call builds its own network. SettleBatch settles independent groups in
// parallel.
package settle
