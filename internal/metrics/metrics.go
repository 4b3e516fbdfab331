package metrics

import "github.com/prometheus/client_golang/prometheus"

// Engine Prometheus metrics.
var (
	FusionMatchedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "carematch",
			Name:      "fusion_matched_total",
			Help:      "Total authoritative records linked to an auxiliary record, by strategy",
		},
		[]string{"strategy"},
	)

	FusionUnmatchedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "carematch",
			Name:      "fusion_unmatched_total",
			Help:      "Total authoritative records with no auxiliary match",
		},
	)

	CalculatorFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "carematch",
			Name:      "calculator_failures_total",
			Help:      "Total recovered calculator panics, by category",
		},
		[]string{"category"},
	)

	ScoringDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "carematch",
			Name:      "scoring_duration_seconds",
			Help:      "Per-entity scoring duration in seconds",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
	)

	SelectionCapRelaxedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "carematch",
			Name:      "selection_cap_relaxed_total",
			Help:      "Total selections where the per-provider cap was relaxed to fill K",
		},
	)
)

var registered bool

// Register registers the engine metrics with the default registry.
// Must be called at most once from the host process.
func Register() {
	if registered {
		return
	}
	registered = true
	prometheus.MustRegister(
		FusionMatchedTotal,
		FusionUnmatchedTotal,
		CalculatorFailuresTotal,
		ScoringDuration,
		SelectionCapRelaxedTotal,
	)
}
