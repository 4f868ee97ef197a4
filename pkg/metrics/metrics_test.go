package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := NewMetrics("api")

	m.TransactionCreated("USD")
	m.TransactionCreated("USD")
	m.PaymentRecorded("agent", true)
	m.CacheHit("rates", false)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.TransactionsCreated.WithLabelValues("USD")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PaymentsRecorded.WithLabelValues("agent", "direct")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheLookups.WithLabelValues("rates", "miss")))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.TransactionCreated("USD")
		m.PaymentRecorded("supplier", false)
		m.CacheHit("dashboard", true)
	})
}

func TestNewMetrics_IndependentRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		NewMetrics("a")
		NewMetrics("a")
	})
}
