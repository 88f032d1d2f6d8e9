package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveValidation(true, time.Millisecond)
		m.ObserveValidation(false, time.Millisecond)
		m.ObserveImportFailure()
	})
}

func TestObserveCounts(t *testing.T) {
	m := New()

	m.ObserveValidation(true, 2*time.Millisecond)
	m.ObserveValidation(true, 3*time.Millisecond)
	m.ObserveValidation(false, time.Millisecond)
	m.ObserveImportFailure()

	assert.Equal(t, float64(2), testutil.ToFloat64(m.validations.WithLabelValues("valid")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.validations.WithLabelValues("invalid")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.importFailures))
}
