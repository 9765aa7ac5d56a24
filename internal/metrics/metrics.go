package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors for calculations.
type Metrics struct {
	Calculations       *prometheus.CounterVec
	ValidationFailures *prometheus.CounterVec
	Scores             prometheus.Histogram
	RequestDuration    *prometheus.HistogramVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Calculations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "bonus_malus_calculations_total",
			Help: "Total number of bonus-malus calculations by outcome",
		}, []string{"outcome"}),
		ValidationFailures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "bonus_malus_validation_failures_total",
			Help: "Total number of rejected submissions by message code",
		}, []string{"code"}),
		Scores: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "bonus_malus_score",
			Help:    "Distribution of computed bonus-malus scores",
			Buckets: prometheus.LinearBuckets(-2, 2, 13),
		}),
		RequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "bonus_malus_request_duration_seconds",
			Help:    "HTTP request latency by route",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
	}
}

// ObserveCalculation records one engine run.
func (m *Metrics) ObserveCalculation(outcome string, score *int, failureCodes []string) {
	m.Calculations.WithLabelValues(outcome).Inc()
	if score != nil {
		m.Scores.Observe(float64(*score))
	}
	for _, code := range failureCodes {
		m.ValidationFailures.WithLabelValues(code).Inc()
	}
}
