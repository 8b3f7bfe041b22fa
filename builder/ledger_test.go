package builder_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/splitflow/builder"
	"github.com/katalvlaran/splitflow/ledger"
)

func TestBuildLedger_NamesAndAmounts(t *testing.T) {
	l, err := builder.BuildLedger("trip", 3,
		[]builder.BuilderOption{builder.WithSymbolIDs(), builder.WithConstantAmount(1250)},
		builder.Path())
	require.NoError(t, err)

	require.Equal(t, "trip", l.Group)
	require.Equal(t, []string{"A", "B", "C"}, l.Participants)
	require.Len(t, l.Debts, 2)
	require.Equal(t, "A", l.Debts[0].Debtor)
	require.Equal(t, "B", l.Debts[0].Creditor)
	require.True(t, decimal.RequireFromString("12.50").Equal(l.Debts[0].Amount))

	require.NoError(t, l.Validate())
}

func TestBuildLedger_RoundTripsThroughTriples(t *testing.T) {
	l, err := builder.BuildLedger("", 5,
		[]builder.BuilderOption{builder.WithSymbNumb("p"), builder.WithSeed(3), builder.WithUniformAmount(1, 999)},
		builder.RandomSparse(0.5))
	require.NoError(t, err)

	triples, idx, err := l.Triples(ledger.DefaultMinorUnitExponent)
	require.NoError(t, err)
	require.Equal(t, 5, idx.Len())
	require.Len(t, triples, len(l.Debts))
	require.Equal(t, "p4", idx.Name(4))
}
