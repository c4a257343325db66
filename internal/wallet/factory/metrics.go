package factory

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Generation outcomes used as metric label values
const (
	OutcomeSuccess = "success"
	OutcomeUnknown = "unknown_provider"
	OutcomeFailure = "failure"
)

// Metrics are the Prometheus metrics recorded by the factory
type Metrics struct {
	Requests           prometheus.Counter
	WalletsGenerated   *prometheus.CounterVec
	GenerationDuration *prometheus.HistogramVec
}

// NewMetrics initializes and registers metrics with the default registry
func NewMetrics() *Metrics {
	return NewMetricsWithRegistry(nil)
}

// NewMetricsWithRegistry initializes and registers metrics with a custom registry
func NewMetricsWithRegistry(registry prometheus.Registerer) *Metrics {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}
	factory := promauto.With(registry)

	return &Metrics{
		Requests: factory.NewCounter(prometheus.CounterOpts{
			Name: "bitpaper_generation_requests_total",
			Help: "The total number of wallet set generation requests",
		}),
		WalletsGenerated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bitpaper_wallets_total",
				Help: "The total number of wallet generation attempts by provider and outcome",
			},
			[]string{"provider", "outcome"},
		),
		GenerationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "bitpaper_wallet_generation_duration_seconds",
				Help:    "Time spent deriving one wallet including lifecycle hooks",
				Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
			},
			[]string{"provider"},
		),
	}
}

func (m *Metrics) observe(id string, outcome string, seconds float64) {
	if m == nil {
		return
	}

	m.WalletsGenerated.WithLabelValues(id, outcome).Inc()
	if outcome != OutcomeUnknown {
		m.GenerationDuration.WithLabelValues(id).Observe(seconds)
	}
}
