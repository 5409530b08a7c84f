package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// CacheMetrics records what the entity cache is doing: merges applied,
// anomalies skipped, permission resolutions served, and registry sizes.
type CacheMetrics interface {
	RecordMerge(entity string)
	RecordAnomaly(kind string)
	RecordPermissionResolution(scope string, duration time.Duration)
	SetRegistrySize(entity string, size int)
}

// PrometheusCacheMetrics is the production CacheMetrics implementation.
type PrometheusCacheMetrics struct {
	merges      *prometheus.CounterVec
	anomalies   *prometheus.CounterVec
	resolutions *prometheus.HistogramVec
	sizes       *prometheus.GaugeVec
}

var _ CacheMetrics = (*PrometheusCacheMetrics)(nil)

// NewPrometheusCacheMetrics registers the cache collectors on the given
// registry.
func NewPrometheusCacheMetrics(registry *prometheus.Registry) *PrometheusCacheMetrics {
	m := &PrometheusCacheMetrics{
		merges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "clubmirror_cache_merges_total",
			Help: "Payload merges applied, by entity kind.",
		}, []string{"entity"}),
		anomalies: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "clubmirror_cache_anomalies_total",
			Help: "Non-fatal lookup-miss anomalies skipped, by kind.",
		}, []string{"kind"}),
		resolutions: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "clubmirror_permission_resolution_seconds",
			Help:    "Permission resolution latency, by scope.",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
		}, []string{"scope"}),
		sizes: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "clubmirror_cache_entities",
			Help: "Entities currently cached, by kind.",
		}, []string{"entity"}),
	}
	registry.MustRegister(m.merges, m.anomalies, m.resolutions, m.sizes)
	return m
}

func (m *PrometheusCacheMetrics) RecordMerge(entity string) {
	m.merges.WithLabelValues(entity).Inc()
}

func (m *PrometheusCacheMetrics) RecordAnomaly(kind string) {
	m.anomalies.WithLabelValues(kind).Inc()
}

func (m *PrometheusCacheMetrics) RecordPermissionResolution(scope string, duration time.Duration) {
	m.resolutions.WithLabelValues(scope).Observe(duration.Seconds())
}

func (m *PrometheusCacheMetrics) SetRegistrySize(entity string, size int) {
	m.sizes.WithLabelValues(entity).Set(float64(size))
}

// NoOpCacheMetrics records nothing. Used in tests.
type NoOpCacheMetrics struct{}

var _ CacheMetrics = NoOpCacheMetrics{}

func (NoOpCacheMetrics) RecordMerge(string)                                {}
func (NoOpCacheMetrics) RecordAnomaly(string)                              {}
func (NoOpCacheMetrics) RecordPermissionResolution(string, time.Duration)  {}
func (NoOpCacheMetrics) SetRegistrySize(string, int)                       {}
