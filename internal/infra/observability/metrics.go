package observability

import (
	"time"

	"github.com/boddenberg/casa-cashflow-go/internal/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
)

// Metrics holds all Prometheus metrics for the backend.
type Metrics struct {
	// Registry is the Prometheus registry that owns these metrics.
	// Exposed so the /metrics endpoint can use it.
	Registry *prometheus.Registry

	requestDuration    *prometheus.HistogramVec
	projectionDuration prometheus.Histogram
	externalErrors     *prometheus.CounterVec
	cacheHits          *prometheus.CounterVec
	cacheMisses        *prometheus.CounterVec
	projectionsTotal   *prometheus.CounterVec
	dangerDaysTotal    *prometheus.CounterVec
}

// NewMetrics creates a dedicated Prometheus registry and registers all
// application metrics in it. Using a private registry avoids "duplicate
// collector" panics when NewMetrics is called more than once (e.g. in tests).
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		Registry: reg,

		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "casa_request_duration_seconds",
				Help:    "Duration of requests by operation.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		projectionDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "casa_projection_duration_seconds",
				Help:    "Duration of cashflow projection computations.",
				Buckets: []float64{.001, .0025, .005, .01, .025, .05, .1, .25},
			},
		),
		externalErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "casa_external_errors_total",
				Help: "Total errors from external services.",
			},
			[]string{"service"},
		),
		cacheHits: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "casa_cache_hits_total",
				Help: "Total cache hits.",
			},
			[]string{"cache"},
		),
		cacheMisses: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "casa_cache_misses_total",
				Help: "Total cache misses.",
			},
			[]string{"cache"},
		),
		projectionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "casa_projections_total",
				Help: "Total projection computations by status.",
			},
			[]string{"status"},
		),
		dangerDaysTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "casa_danger_days_total",
				Help: "Total danger days observed in computed projections.",
			},
			[]string{"scenario"},
		),
	}
}

// RecordRequestDuration records the duration of an operation.
func (m *Metrics) RecordRequestDuration(operation string, d time.Duration) {
	m.requestDuration.WithLabelValues(operation).Observe(d.Seconds())
}

// RecordProjectionDuration records how long one engine run took.
func (m *Metrics) RecordProjectionDuration(d time.Duration) {
	m.projectionDuration.Observe(d.Seconds())
}

// IncrExternalError increments the external error counter.
func (m *Metrics) IncrExternalError(service string) {
	m.externalErrors.WithLabelValues(service).Inc()
}

// IncrCacheHit increments the cache hit counter.
func (m *Metrics) IncrCacheHit(cache string) {
	m.cacheHits.WithLabelValues(cache).Inc()
}

// IncrCacheMiss increments the cache miss counter.
func (m *Metrics) IncrCacheMiss(cache string) {
	m.cacheMisses.WithLabelValues(cache).Inc()
}

// IncrProjection increments the projection counter with a status label.
func (m *Metrics) IncrProjection(status string) {
	m.projectionsTotal.WithLabelValues(status).Inc()
}

// AddDangerDays accumulates observed danger days per scenario.
func (m *Metrics) AddDangerDays(scenario string, count int) {
	m.dangerDaysTotal.WithLabelValues(scenario).Add(float64(count))
}

// GetCashflowSnapshot returns a snapshot of projection-related metrics
// suitable for the GET /v1/metrics/cashflow endpoint.
func (m *Metrics) GetCashflowSnapshot() *domain.CashflowMetrics {
	// Gather current values from Prometheus counters.
	// Note: Prometheus counters expose cumulative values.
	success := getCounterValue(m.projectionsTotal, "success")
	failed := getCounterValue(m.projectionsTotal, "error")
	total := success + failed
	cacheHits := getCounterValue(m.cacheHits, "projection")
	cacheMisses := getCounterValue(m.cacheMisses, "projection")

	errorRate := float64(0)
	if total > 0 {
		errorRate = failed / total
	}
	cacheHitRate := float64(0)
	if cacheHits+cacheMisses > 0 {
		cacheHitRate = cacheHits / (cacheHits + cacheMisses)
	}

	return &domain.CashflowMetrics{
		TotalProjections:      int64(total),
		FailedProjections:     int64(failed),
		ErrorRate:             errorRate,
		CacheHitRate:          cacheHitRate,
		OptimisticDangerDays:  int64(getCounterValue(m.dangerDaysTotal, "optimistic")),
		PessimisticDangerDays: int64(getCounterValue(m.dangerDaysTotal, "pessimistic")),
	}
}

// getCounterValue reads the current value of one labeled counter.
func getCounterValue(vec *prometheus.CounterVec, label string) float64 {
	c, err := vec.GetMetricWithLabelValues(label)
	if err != nil {
		return 0
	}
	metric := &dto.Metric{}
	if err := c.Write(metric); err != nil {
		return 0
	}
	return metric.GetCounter().GetValue()
}
