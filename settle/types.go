package settle

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Sentinel errors returned by the engine.
var (
	// ErrUnknownStrategy is returned by ParseStrategy for an unrecognised name.
	ErrUnknownStrategy = errors.New("settle: unknown strategy")

	// ErrTooManyParticipants is returned when a ledger exceeds WithMaxParticipants.
	ErrTooManyParticipants = errors.New("settle: too many participants")

	// ErrBalanceMismatch means a strategy changed somebody's net position.
	ErrBalanceMismatch = errors.New("settle: net balances changed")
)

// Strategy selects how debts are simplified.
type Strategy int

const (
	// Chains collapses chains of sequential debts.
	Chains Strategy = iota
	// Pairwise settles reachable pairs one max flow at a time.
	Pairwise
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case Chains:
		return "chains"
	case Pairwise:
		return "pairwise"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// ParseStrategy maps "chains" or "pairwise" (any case) to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "chains", "":
		return Chains, nil
	case "pairwise":
		return Pairwise, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Instruction is one payment of the plan.
type Instruction struct {
	Payer      string          `yaml:"payer"       json:"payer"`
	Payee      string          `yaml:"payee"       json:"payee"`
	Amount     decimal.Decimal `yaml:"amount"      json:"amount"`
	MinorUnits int64           `yaml:"minor_units" json:"minor_units"`
}

// Stats summarises one Settle call. Passes counts simplifier sweeps for
// Chains and max-flow runs for Pairwise.
type Stats struct {
	Strategy     string        `yaml:"strategy"     json:"strategy"`
	Participants int           `yaml:"participants" json:"participants"`
	Debts        int           `yaml:"debts"        json:"debts"`
	Transactions int           `yaml:"transactions" json:"transactions"`
	Collapses    int           `yaml:"collapses"    json:"collapses"`
	Passes       int           `yaml:"passes"       json:"passes"`
	Duration     time.Duration `yaml:"-"            json:"-"`
}

// Plan is the settlement of one group. Instructions are ordered by payer,
// then payee. Balances holds each participant's net position: positive
// means the participant is owed money.
type Plan struct {
	Group        string                     `yaml:"group,omitempty"    json:"group,omitempty"`
	Currency     string                     `yaml:"currency,omitempty" json:"currency,omitempty"`
	Instructions []Instruction              `yaml:"instructions"       json:"instructions"`
	Balances     map[string]decimal.Decimal `yaml:"balances"           json:"balances"`
	Stats        Stats                      `yaml:"stats"              json:"stats"`
}

// Outcome is what the engine reports to a Recorder after each Settle call.
type Outcome struct {
	Strategy     Strategy
	Err          error
	Transactions int
	Collapses    int
	Duration     time.Duration
}

// Recorder observes settlement outcomes. Implementations must be safe for
// concurrent use because SettleBatch reports from several goroutines.
type Recorder interface {
	RecordSettlement(o Outcome)
}

type nopRecorder struct{}

func (nopRecorder) RecordSettlement(Outcome) {}
