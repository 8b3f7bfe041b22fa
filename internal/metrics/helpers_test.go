package metrics_test

import (
	"github.com/shopspring/decimal"

	"github.com/katalvlaran/splitflow/ledger"
)

func chainLedger() *ledger.Ledger {
	hundred := decimal.NewFromInt(100)
	return &ledger.Ledger{Debts: []ledger.Debt{
		{Debtor: "a", Creditor: "b", Amount: hundred},
		{Debtor: "b", Creditor: "c", Amount: hundred},
	}}
}
