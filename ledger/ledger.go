package ledger

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

var (
	validate    = validator.New(validator.WithRequiredStructEnabled())
	maxMinorDec = decimal.NewFromInt(math.MaxInt64)
)

// Decode reads one ledger in YAML. JSON input is accepted as well since it
// is a subset of YAML. Unknown fields are rejected.
func Decode(r io.Reader) (*Ledger, error) {
	var l Ledger
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&l); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidLedger)
		}
		return nil, fmt.Errorf("ledger: decode: %w", err)
	}
	return &l, nil
}

// DecodeBatch reads a document of the form {groups: [ledger, ...]}.
func DecodeBatch(r io.Reader) (*Batch, error) {
	var b Batch
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&b); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidLedger)
		}
		return nil, fmt.Errorf("ledger: decode batch: %w", err)
	}
	return &b, nil
}

// Load opens path and decodes a single ledger from it.
func Load(path string) (*Ledger, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ledger: open %s: %w", path, err)
	}
	defer f.Close()

	return Decode(f)
}

// LoadBatch opens path and decodes a batch from it.
func LoadBatch(path string) (*Batch, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ledger: open %s: %w", path, err)
	}
	defer f.Close()

	return DecodeBatch(f)
}

// Encode writes l as YAML.
func Encode(w io.Writer, l *Ledger) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(l); err != nil {
		return fmt.Errorf("ledger: encode: %w", err)
	}
	return enc.Close()
}

// Validate checks struct constraints and the debt rules: positive amounts,
// no self-debts, no duplicate participants and, when Participants is set,
// no undeclared names.
func (l *Ledger) Validate() error {
	if err := validate.Struct(l); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidLedger, err)
	}

	declared := make(map[string]bool, len(l.Participants))
	for _, p := range l.Participants {
		if declared[p] {
			return fmt.Errorf("%w: %q", ErrDuplicateParticipant, p)
		}
		declared[p] = true
	}

	for i, d := range l.Debts {
		if d.Debtor == d.Creditor {
			return fmt.Errorf("%w: debt #%d (%q)", ErrSelfDebt, i, d.Debtor)
		}
		if !d.Amount.IsPositive() {
			return fmt.Errorf("%w: debt #%d is %s", ErrNonPositiveAmount, i, d.Amount)
		}
		if len(declared) == 0 {
			continue
		}
		for _, name := range []string{d.Debtor, d.Creditor} {
			if !declared[name] {
				return fmt.Errorf("%w: %q in debt #%d", ErrUnknownParticipant, name, i)
			}
		}
	}
	return nil
}

// Triples validates l and converts its debts into vertex triples with
// amounts in minor units (exp decimal places). The returned Index maps
// vertices back to names. The sum of all amounts must fit in int64 so that
// no flow computation can overflow.
func (l *Ledger) Triples(exp int32) ([]Triple, *Index, error) {
	if err := l.Validate(); err != nil {
		return nil, nil, err
	}

	idx, err := NewIndex(l.Participants)
	if err != nil {
		return nil, nil, err
	}

	out := make([]Triple, 0, len(l.Debts))
	var total int64
	for i, d := range l.Debts {
		amount, err := ToMinorUnits(d.Amount, exp)
		if err != nil {
			return nil, nil, fmt.Errorf("debt #%d: %w", i, err)
		}
		if total > math.MaxInt64-amount {
			return nil, nil, fmt.Errorf("%w: total exceeds %d", ErrAmountOverflow, int64(math.MaxInt64))
		}
		total += amount
		out = append(out, Triple{
			Debtor:   idx.add(d.Debtor),
			Creditor: idx.add(d.Creditor),
			Amount:   amount,
		})
	}
	return out, idx, nil
}

// ToMinorUnits converts a major-unit amount into integer minor units.
func ToMinorUnits(d decimal.Decimal, exp int32) (int64, error) {
	shifted := d.Shift(exp)
	if !shifted.IsInteger() {
		return 0, fmt.Errorf("%w: %s at %d decimal places", ErrFractionalMinorUnits, d, exp)
	}
	if shifted.Abs().GreaterThan(maxMinorDec) {
		return 0, fmt.Errorf("%w: %s", ErrAmountOverflow, d)
	}
	return shifted.IntPart(), nil
}

// FromMinorUnits converts integer minor units back into a major-unit amount.
func FromMinorUnits(v int64, exp int32) decimal.Decimal {
	return decimal.New(v, -exp)
}
