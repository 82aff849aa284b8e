package telemetry

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the aggregation counters. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	registry         *prometheus.Registry
	readingsIngested *prometheus.CounterVec
	samplesPruned    prometheus.Counter
	summaries        *prometheus.CounterVec
	metricsImputed   *prometheus.CounterVec
	cacheLookups     *prometheus.CounterVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		readingsIngested: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "vitals_readings_ingested_total",
			Help: "Readings accepted into daily buffers by kind.",
		}, []string{"kind"}),
		samplesPruned: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vitals_samples_pruned_total",
			Help: "Samples removed after source-side deletion.",
		}),
		summaries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "vitals_summaries_computed_total",
			Help: "Daily summaries computed by outcome source.",
		}, []string{"source"}),
		metricsImputed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "vitals_metrics_imputed_total",
			Help: "Metrics carried forward from a previous day.",
		}, []string{"metric"}),
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "vitals_summary_cache_lookups_total",
			Help: "Summary cache lookups by result.",
		}, []string{"result"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.readingsIngested,
		m.samplesPruned,
		m.summaries,
		m.metricsImputed,
		m.cacheLookups,
	)

	return m
}

func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) ReadingsIngested(kind string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.readingsIngested.WithLabelValues(kind).Add(float64(n))
}

func (m *Metrics) SamplesPruned(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.samplesPruned.Add(float64(n))
}

// SummaryComputed counts a summary served from "computed" or "cache".
func (m *Metrics) SummaryComputed(source string) {
	if m == nil {
		return
	}
	m.summaries.WithLabelValues(source).Inc()
}

func (m *Metrics) MetricImputed(metric string) {
	if m == nil {
		return
	}
	m.metricsImputed.WithLabelValues(metric).Inc()
}

func (m *Metrics) CacheHit() {
	if m == nil {
		return
	}
	m.cacheLookups.WithLabelValues("hit").Inc()
}

func (m *Metrics) CacheMiss() {
	if m == nil {
		return
	}
	m.cacheLookups.WithLabelValues("miss").Inc()
}
