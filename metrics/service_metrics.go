package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsPrefix is the prefix used for all metrics
const MetricsPrefix = "minerstat_proxy_"

// Endpoint constants
const (
	EndpointByName      = "by_name"
	EndpointByAlgorithm = "by_algorithm"
)

var (
	// Outbound minerstat request counter
	// Cardinality: 3 (success, error, timeout)
	MinerstatRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "minerstat_requests_total",
			Help: "Total number of HTTP requests to the minerstat API",
		},
		[]string{"status"},
	)

	// Outbound request latency
	// Cardinality: 3 (success, error, timeout)
	MinerstatRequestLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: MetricsPrefix + "minerstat_request_latency_seconds",
			Help: "HTTP request latency to the minerstat API by status",
		},
		[]string{"status"},
	)

	// Coins returned by the last repository call
	// Cardinality: 2 (by_name, by_algorithm)
	CoinsReturnedGauge = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricsPrefix + "coins_returned",
			Help: "Number of coins returned by the last call per endpoint",
		},
		[]string{"endpoint"},
	)

	// Repository failures by kind
	// Cardinality: ~6 (2 endpoints × 3 kinds)
	RepositoryErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricsPrefix + "repository_errors_total",
			Help: "Total number of failed repository calls by endpoint and error kind",
		},
		[]string{"endpoint", "kind"},
	)
)

// MetricsWriter provides a unified interface for recording client metrics
type MetricsWriter struct {
	serviceName string
}

// NewMetricsWriter creates a new MetricsWriter for the specified service
func NewMetricsWriter(serviceName string) *MetricsWriter {
	return &MetricsWriter{
		serviceName: serviceName,
	}
}

// GetServiceName returns the service name
func (mw *MetricsWriter) GetServiceName() string {
	return mw.serviceName
}

// OnRequest records an outbound request with its status and latency.
// It makes MetricsWriter usable as the HTTP client's status handler.
func (mw *MetricsWriter) OnRequest(status string, duration time.Duration) {
	MinerstatRequestsTotal.WithLabelValues(status).Inc()
	MinerstatRequestLatency.WithLabelValues(status).Observe(duration.Seconds())
}

// RecordCoinsReturned records how many coins an endpoint call produced
func (mw *MetricsWriter) RecordCoinsReturned(endpoint string, count int) {
	CoinsReturnedGauge.WithLabelValues(endpoint).Set(float64(count))
}

// RecordRepositoryError records a failed repository call
func (mw *MetricsWriter) RecordRepositoryError(endpoint, kind string) {
	RepositoryErrorsTotal.WithLabelValues(endpoint, kind).Inc()
}
