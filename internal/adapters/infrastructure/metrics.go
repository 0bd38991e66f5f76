package infrastructure

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "flosscast"

// PrometheusForecastMetrics implements the ForecastMetrics port
type PrometheusForecastMetrics struct {
	lookups   *prometheus.CounterVec
	duration  *prometheus.HistogramVec
	fallbacks *prometheus.CounterVec
	entries   *prometheus.GaugeVec
}

// NewPrometheusForecastMetrics registers the cache metrics with reg
func NewPrometheusForecastMetrics(reg prometheus.Registerer) *PrometheusForecastMetrics {
	factory := promauto.With(reg)
	return &PrometheusForecastMetrics{
		lookups: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "cache_lookups_total",
				Help:      "Forecast cache lookups by outcome",
			},
			[]string{"outcome"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "cache_operation_duration_seconds",
				Help:      "Forecast cache operation duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		fallbacks: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "cache_fallbacks_total",
				Help:      "Cache-only retries after a failed refresh",
			},
			[]string{"result"},
		),
		entries: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Name:      "cache_document_entries",
				Help:      "Entries in the forecast cache document",
			},
			[]string{"dir"},
		),
	}
}

func (m *PrometheusForecastMetrics) RecordLookup(outcome string) {
	m.lookups.WithLabelValues(outcome).Inc()
}

func (m *PrometheusForecastMetrics) RecordOperation(operation string, duration time.Duration) {
	m.duration.WithLabelValues(operation).Observe(duration.Seconds())
}

func (m *PrometheusForecastMetrics) RecordFallback(success bool) {
	m.fallbacks.WithLabelValues(resultLabel(success)).Inc()
}

func (m *PrometheusForecastMetrics) SetDocumentEntries(dir string, entries int) {
	m.entries.WithLabelValues(dir).Set(float64(entries))
}

// PrometheusUpstreamMetrics implements the UpstreamMetrics port
type PrometheusUpstreamMetrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	waits    *prometheus.HistogramVec
}

// NewPrometheusUpstreamMetrics registers the upstream API metrics with reg
func NewPrometheusUpstreamMetrics(reg prometheus.Registerer) *PrometheusUpstreamMetrics {
	factory := promauto.With(reg)
	return &PrometheusUpstreamMetrics{
		requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "upstream_requests_total",
				Help:      "Requests to the Open-Meteo API by endpoint and result",
			},
			[]string{"endpoint", "result"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "upstream_request_duration_seconds",
				Help:      "Open-Meteo request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"endpoint"},
		),
		waits: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "upstream_rate_limit_wait_seconds",
				Help:      "Time spent waiting for the upstream rate limiter",
				Buckets:   []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1, 5},
			},
			[]string{"endpoint"},
		),
	}
}

func (m *PrometheusUpstreamMetrics) RecordRequest(endpoint string, success bool, duration time.Duration) {
	m.requests.WithLabelValues(endpoint, resultLabel(success)).Inc()
	m.duration.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func (m *PrometheusUpstreamMetrics) RecordRateLimitWait(endpoint string, duration time.Duration) {
	m.waits.WithLabelValues(endpoint).Observe(duration.Seconds())
}

func resultLabel(success bool) string {
	if success {
		return "success"
	}
	return "failure"
}
