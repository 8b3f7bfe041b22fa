package settle_test

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/splitflow/ledger"
	"github.com/katalvlaran/splitflow/settle"
)

func ExampleEngine_Settle() {
	l := &ledger.Ledger{
		Group:    "ski weekend",
		Currency: "CHF",
		Debts: []ledger.Debt{
			{Debtor: "ana", Creditor: "ben", Amount: decimal.RequireFromString("42.50")},
			{Debtor: "ben", Creditor: "cleo", Amount: decimal.RequireFromString("42.50")},
		},
	}

	plan, err := settle.New().Settle(l)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, in := range plan.Instructions {
		fmt.Printf("%s pays %s %s %s\n", in.Payer, in.Payee, in.Amount.StringFixed(2), plan.Currency)
	}
	// Output:
	// ana pays cleo 42.50 CHF
}
