// Package ledger defines the input contract of the settlement engine: a group
// of named participants and the debts between them, decoded from YAML or
// JSON and converted into integer vertex triples for the flow network.
package ledger

import (
	"errors"

	"github.com/shopspring/decimal"
)

// DefaultMinorUnitExponent is the number of decimal places in one major
// currency unit (cents for most currencies).
const DefaultMinorUnitExponent int32 = 2

// Sentinel errors for ledger validation and conversion.
var (
	// ErrInvalidLedger wraps structural validation failures.
	ErrInvalidLedger = errors.New("ledger: invalid ledger")

	// ErrUnknownParticipant indicates a debt names someone missing from Participants.
	ErrUnknownParticipant = errors.New("ledger: unknown participant")

	// ErrDuplicateParticipant indicates a name listed twice in Participants.
	ErrDuplicateParticipant = errors.New("ledger: duplicate participant")

	// ErrSelfDebt indicates a debt whose debtor and creditor are the same.
	ErrSelfDebt = errors.New("ledger: debtor and creditor are the same")

	// ErrNonPositiveAmount indicates a debt amount <= 0.
	ErrNonPositiveAmount = errors.New("ledger: amount must be positive")

	// ErrFractionalMinorUnits indicates an amount finer than one minor unit.
	ErrFractionalMinorUnits = errors.New("ledger: amount has fractional minor units")

	// ErrAmountOverflow indicates amounts that do not fit in int64 minor units.
	ErrAmountOverflow = errors.New("ledger: amount overflows int64 minor units")
)

// Debt states that Debtor owes Creditor Amount (major units, e.g. "12.50").
type Debt struct {
	Debtor   string          `yaml:"debtor"   json:"debtor"   validate:"required,max=128"`
	Creditor string          `yaml:"creditor" json:"creditor" validate:"required,max=128"`
	Amount   decimal.Decimal `yaml:"amount"   json:"amount"`
}

// Ledger is one group's debts. Participants fixes the vertex order; when it
// is empty the order is derived from the debts, first seen first.
type Ledger struct {
	Group        string   `yaml:"group,omitempty"        json:"group,omitempty"        validate:"max=128"`
	Currency     string   `yaml:"currency,omitempty"     json:"currency,omitempty"     validate:"omitempty,iso4217"`
	Participants []string `yaml:"participants,omitempty" json:"participants,omitempty" validate:"dive,required,max=128"`
	Debts        []Debt   `yaml:"debts"                  json:"debts"                  validate:"dive"`
}

// Batch holds several independent groups settled in one run.
type Batch struct {
	Groups []Ledger `yaml:"groups" json:"groups" validate:"dive"`
}

// Triple is one debt in vertex space: Debtor owes Creditor Amount minor units.
type Triple struct {
	Debtor, Creditor int
	Amount           int64
}
