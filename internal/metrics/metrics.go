// Package metrics exposes Prometheus instrumentation for the validation
// service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the service collectors. A nil *Metrics is safe to call and
// records nothing, which keeps the CLI free of registry setup.
type Metrics struct {
	validations        *prometheus.CounterVec
	validationDuration prometheus.Histogram
	importFailures     prometheus.Counter
}

// New registers the collectors on the default registry.
func New() *Metrics {
	return &Metrics{
		validations: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "drawcert_validations_total",
			Help: "Validations performed, labelled by outcome.",
		}, []string{"outcome"}),
		validationDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "drawcert_validation_duration_seconds",
			Help:    "Time spent validating a single draw.",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
		importFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "drawcert_import_failures_total",
			Help: "Submissions rejected before validation could start.",
		}),
	}
}

// ObserveValidation records one completed validation.
func (m *Metrics) ObserveValidation(valid bool, d time.Duration) {
	if m == nil {
		return
	}
	outcome := "invalid"
	if valid {
		outcome = "valid"
	}
	m.validations.WithLabelValues(outcome).Inc()
	m.validationDuration.Observe(d.Seconds())
}

// ObserveImportFailure records a submission that could not be decoded.
func (m *Metrics) ObserveImportFailure() {
	if m == nil {
		return
	}
	m.importFailures.Inc()
}
