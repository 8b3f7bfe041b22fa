package settle

import (
	"io"
	"log/slog"
	"runtime"

	"github.com/katalvlaran/splitflow/ledger"
)

// Option configures an Engine.
type Option func(*options)

type options struct {
	strategy        Strategy
	logger          *slog.Logger
	recorder        Recorder
	exponent        int32
	maxParticipants int
	maxCollapses    int
	concurrency     int
}

func defaultOptions() options {
	return options{
		strategy:    Chains,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		recorder:    nopRecorder{},
		exponent:    ledger.DefaultMinorUnitExponent,
		concurrency: runtime.GOMAXPROCS(0),
	}
}

// WithStrategy selects the simplification strategy.
func WithStrategy(s Strategy) Option {
	return func(o *options) { o.strategy = s }
}

// WithLogger sets the logger for debug records. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithRecorder reports every Settle outcome to r. A nil recorder is ignored.
func WithRecorder(r Recorder) Option {
	return func(o *options) {
		if r != nil {
			o.recorder = r
		}
	}
}

// WithMinorUnitExponent sets the number of decimal places in one currency
// unit. Negative values are ignored.
func WithMinorUnitExponent(exp int32) Option {
	return func(o *options) {
		if exp >= 0 {
			o.exponent = exp
		}
	}
}

// WithMaxParticipants rejects ledgers with more than n participants.
// n <= 0 disables the check.
func WithMaxParticipants(n int) Option {
	return func(o *options) { o.maxParticipants = n }
}

// WithMaxCollapses bounds chain collapses per ledger for the Chains strategy.
// n <= 0 disables the bound.
func WithMaxCollapses(n int) Option {
	return func(o *options) { o.maxCollapses = n }
}

// WithConcurrency caps the number of groups SettleBatch settles at once.
// n <= 0 keeps the default of GOMAXPROCS.
func WithConcurrency(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.concurrency = n
		}
	}
}
