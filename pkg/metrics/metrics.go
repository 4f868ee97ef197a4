package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds Prometheus metrics for the service
type Metrics struct {
	registry *prometheus.Registry

	RequestCounter      *prometheus.CounterVec
	RequestDuration     *prometheus.HistogramVec
	RequestsInFlight    prometheus.Gauge
	TransactionsCreated *prometheus.CounterVec
	PaymentsRecorded    *prometheus.CounterVec
	CacheLookups        *prometheus.CounterVec
}

// NewMetrics creates a metrics instance on its own registry
func NewMetrics(serviceName string) *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		RequestCounter: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "sgh",
				Subsystem: serviceName,
				Name:      "requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "sgh",
				Subsystem: serviceName,
				Name:      "request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		RequestsInFlight: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "sgh",
				Subsystem: serviceName,
				Name:      "requests_in_flight",
				Help:      "Number of requests currently being processed",
			},
		),
		TransactionsCreated: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "sgh",
				Subsystem: serviceName,
				Name:      "transactions_created_total",
				Help:      "Exchange transactions recorded, by quote currency",
			},
			[]string{"quote_currency"},
		),
		PaymentsRecorded: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "sgh",
				Subsystem: serviceName,
				Name:      "payments_recorded_total",
				Help:      "Payments recorded, by party and kind",
			},
			[]string{"party", "kind"},
		),
		CacheLookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "sgh",
				Subsystem: serviceName,
				Name:      "cache_lookups_total",
				Help:      "Read-model cache lookups, by cache and result",
			},
			[]string{"cache", "result"},
		),
	}
}

// Handler serves the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) CacheHit(name string, hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.CacheLookups.WithLabelValues(name, result).Inc()
}

func (m *Metrics) TransactionCreated(quoteCurrency string) {
	if m == nil {
		return
	}
	m.TransactionsCreated.WithLabelValues(quoteCurrency).Inc()
}

func (m *Metrics) PaymentRecorded(party string, direct bool) {
	if m == nil {
		return
	}
	kind := "applied"
	if direct {
		kind = "direct"
	}
	m.PaymentsRecorded.WithLabelValues(party, kind).Inc()
}
