package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type upstreamCollector struct {
	requests *prometheus.CounterVec
	failures *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

var (
	globalCollector *upstreamCollector
	collectorOnce   sync.Once
)

// promauto registers with the default registry, so the collector must only be
// built once per process
func getCollector() *upstreamCollector {
	collectorOnce.Do(func() {
		globalCollector = &upstreamCollector{
			requests: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "upstream_requests_total",
					Help: "The total number of outbound upstream requests",
				},
				[]string{"provider", "outcome"},
			),
			failures: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Name: "upstream_failures_total",
					Help: "The total number of failed outbound upstream requests",
				},
				[]string{"provider"},
			),
			latency: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Name:    "upstream_request_duration_seconds",
					Help:    "Outbound upstream request duration in seconds",
					Buckets: prometheus.DefBuckets,
				},
				[]string{"provider"},
			),
		}
	})
	return globalCollector
}

// UpstreamMetrics records outbound call metrics for one provider
type UpstreamMetrics struct {
	provider  string
	collector *upstreamCollector
}

// NewUpstreamMetrics creates a metrics recorder for the named provider
func NewUpstreamMetrics(provider string) *UpstreamMetrics {
	return &UpstreamMetrics{
		provider:  provider,
		collector: getCollector(),
	}
}

// RecordRequest records one outbound call's outcome and duration. Safe to
// call on a nil receiver so tests can skip metrics wiring.
func (m *UpstreamMetrics) RecordRequest(success bool, duration time.Duration) {
	if m == nil {
		return
	}

	outcome := "success"
	if !success {
		outcome = "failure"
		m.collector.failures.WithLabelValues(m.provider).Inc()
	}
	m.collector.requests.WithLabelValues(m.provider, outcome).Inc()
	m.collector.latency.WithLabelValues(m.provider).Observe(duration.Seconds())
}
