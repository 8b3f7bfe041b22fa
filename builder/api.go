// SPDX-License-Identifier: MIT
// Package: splitflow/builder
//
// api.go - public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator per output: BuildNetwork(n, bopts, cons...) for a
//     flow.Network, BuildLedger(group, n, bopts, cons...) for a named ledger.
//   - Topology factories live in impl_*.go and return a Constructor closure.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same inputs, options, seed and constructor order give
//     identical networks and ledgers.
//   - Safety: never panic at runtime; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/splitflow/flow"
	"github.com/katalvlaran/splitflow/ledger"
)

// Constructor appends debt edges to nw using the resolved builderConfig.
// Constructors MUST:
//   - Validate parameters against nw.VertexCount() and return sentinel errors.
//   - Emit edges in a stable, documented order via nw.AddEdge.
//   - Draw amounts only through cfg.amountFn so seeds reproduce fixtures.
type Constructor func(nw *flow.Network, cfg builderConfig) error

// BuildNetwork creates a flow.Network with n vertices, resolves the builder
// configuration from bopts and applies cons in order. Any constructor error is
// wrapped as "BuildNetwork: %w" and returned immediately.
//
// Complexity: Σ cost of constructors plus O(len(bopts)).
func BuildNetwork(n int, bopts []BuilderOption, cons ...Constructor) (*flow.Network, error) {
	if n < minVertices {
		return nil, fmt.Errorf("BuildNetwork: n=%d < min=%d: %w", n, minVertices, ErrTooFewVertices)
	}
	nw, err := flow.NewNetwork(n)
	if err != nil {
		return nil, fmt.Errorf("BuildNetwork: %w", err)
	}

	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildNetwork: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err = fn(nw, cfg); err != nil {
			return nil, fmt.Errorf("BuildNetwork: %w", err)
		}
	}

	return nw, nil
}

// BuildLedger builds a network like BuildNetwork and renders it as a ledger:
// participant i is named cfg.idFn(i) and every edge becomes one debt with its
// amount read as minor units at ledger.DefaultMinorUnitExponent.
func BuildLedger(group string, n int, bopts []BuilderOption, cons ...Constructor) (*ledger.Ledger, error) {
	nw, err := BuildNetwork(n, bopts, cons...)
	if err != nil {
		return nil, err
	}
	cfg := newBuilderConfig(bopts...)

	l := &ledger.Ledger{
		Group:        group,
		Participants: make([]string, n),
	}
	for i := 0; i < n; i++ {
		l.Participants[i] = cfg.idFn(i)
	}
	for _, s := range nw.Settlements() {
		l.Debts = append(l.Debts, ledger.Debt{
			Debtor:   l.Participants[s.From],
			Creditor: l.Participants[s.To],
			Amount:   ledger.FromMinorUnits(s.Amount, ledger.DefaultMinorUnitExponent),
		})
	}

	return l, nil
}
