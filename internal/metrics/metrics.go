// Package metrics records settlement outcomes in a private Prometheus
// registry and exports them in the node_exporter textfile format.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/splitflow/settle"
)

// Config names the metric namespace and, optionally, the textfile to write
// on exit.
type Config struct {
	Namespace string `mapstructure:"namespace" validate:"required,max=64"`
	Textfile  string `mapstructure:"textfile"`
}

// Metrics implements settle.Recorder.
type Metrics struct {
	registry *prometheus.Registry

	Settlements  *prometheus.CounterVec   // by strategy, status
	Transactions *prometheus.HistogramVec // instructions per plan, by strategy
	Collapses    prometheus.Counter
	Duration     *prometheus.HistogramVec // seconds, by strategy
	BuildInfo    *prometheus.GaugeVec
}

var _ settle.Recorder = (*Metrics)(nil)

// New registers the settlement metrics under cfg.Namespace.
func New(cfg Config) *Metrics {
	m := &Metrics{registry: prometheus.NewRegistry()}

	m.Settlements = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: cfg.Namespace,
		Name:      "settlements_total",
		Help:      "Settle calls by strategy and status.",
	}, []string{"strategy", "status"})

	m.Transactions = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: cfg.Namespace,
		Name:      "settlement_transactions",
		Help:      "Payment instructions per successful settlement.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
	}, []string{"strategy"})

	m.Collapses = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: cfg.Namespace,
		Name:      "chain_collapses_total",
		Help:      "Debt chains replaced by a direct debt.",
	})

	m.Duration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: cfg.Namespace,
		Name:      "settlement_duration_seconds",
		Help:      "Wall time of Settle calls.",
		Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
	}, []string{"strategy"})

	m.BuildInfo = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: cfg.Namespace,
		Name:      "build_info",
		Help:      "Build information.",
	}, []string{"version"})

	m.registry.MustRegister(m.Settlements, m.Transactions, m.Collapses, m.Duration, m.BuildInfo)
	return m
}

// RecordSettlement implements settle.Recorder.
func (m *Metrics) RecordSettlement(o settle.Outcome) {
	strategy := o.Strategy.String()
	status := "ok"
	if o.Err != nil {
		status = "error"
	}
	m.Settlements.WithLabelValues(strategy, status).Inc()
	m.Duration.WithLabelValues(strategy).Observe(o.Duration.Seconds())
	if o.Err != nil {
		return
	}
	m.Transactions.WithLabelValues(strategy).Observe(float64(o.Transactions))
	m.Collapses.Add(float64(o.Collapses))
}

// SetBuildInfo publishes version as a constant 1 gauge.
func (m *Metrics) SetBuildInfo(version string) {
	if version == "" {
		version = "unknown"
	}
	m.BuildInfo.WithLabelValues(version).Set(1)
}

// Gatherer exposes the private registry.
func (m *Metrics) Gatherer() prometheus.Gatherer { return m.registry }

// WriteTextfile atomically writes every metric to path.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}
	return nil
}
