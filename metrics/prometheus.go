package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// APIRequestDuration tracks inbound API handler latency
	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: MetricsPrefix + "api_request_duration_seconds",
			Help: "Time taken to serve API requests",
		},
		[]string{"handler", "code"},
	)
)

// RecordAPIRequest measures and records the duration of an API request
func RecordAPIRequest(handler string, code int, start time.Time) {
	APIRequestDuration.WithLabelValues(handler, statusLabel(code)).Observe(time.Since(start).Seconds())
}

func statusLabel(code int) string {
	switch {
	case code >= 500:
		return "5xx"
	case code >= 400:
		return "4xx"
	case code >= 300:
		return "3xx"
	default:
		return "2xx"
	}
}
