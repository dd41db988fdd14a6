// Package metrics provides the Prometheus implementation of the collector
// interfaces the domain services define. One Collector instance is shared
// across services; the interfaces keep the services themselves free of any
// Prometheus dependency.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector holds all Prometheus metrics for the application. It satisfies
// the MetricsCollector interfaces of the iban, creditor, card and bank
// packages.
type Collector struct {
	Validations       *prometheus.CounterVec
	OperationDuration *prometheus.HistogramVec
	DirectoryLookups  *prometheus.CounterVec
	DirectoryReloads  *prometheus.CounterVec
	DirectorySize     prometheus.Gauge
	CacheHits         prometheus.Counter
	CacheMisses       prometheus.Counter
}

// New creates and registers all metrics on the default registry.
func New() *Collector {
	return &Collector{
		Validations: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "veriban_validations_total",
			Help: "Validation outcomes by scheme and outcome reason",
		}, []string{"scheme", "outcome"}),

		OperationDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "veriban_operation_duration_seconds",
			Help:    "Duration of service operations",
			Buckets: []float64{0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1},
		}, []string{"operation"}),

		DirectoryLookups: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "veriban_directory_lookups_total",
			Help: "Bank directory lookups by kind and outcome",
		}, []string{"kind", "outcome"}),

		DirectoryReloads: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "veriban_directory_reloads_total",
			Help: "Bank directory reload attempts by outcome",
		}, []string{"outcome"}),

		DirectorySize: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "veriban_directory_records",
			Help: "Records in the last successfully loaded directory snapshot",
		}),

		CacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "veriban_directory_cache_hits_total",
			Help: "Directory cache hits",
		}),

		CacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "veriban_directory_cache_misses_total",
			Help: "Directory cache misses",
		}),
	}
}

// RecordValidation counts one validation outcome for a scheme.
func (c *Collector) RecordValidation(scheme, outcome string) {
	if c != nil {
		c.Validations.WithLabelValues(scheme, outcome).Inc()
	}
}

// RecordOperationDuration observes how long a service operation took.
func (c *Collector) RecordOperationDuration(operation string, d time.Duration) {
	if c != nil {
		c.OperationDuration.WithLabelValues(operation).Observe(d.Seconds())
	}
}

// RecordLookup counts one directory lookup by kind and outcome.
func (c *Collector) RecordLookup(kind, outcome string) {
	if c != nil {
		c.DirectoryLookups.WithLabelValues(kind, outcome).Inc()
	}
}

// RecordCacheHit counts a directory cache hit. The key is dropped: per-key
// labels would make the cardinality track the directory itself.
func (c *Collector) RecordCacheHit(string) {
	if c != nil {
		c.CacheHits.Inc()
	}
}

// RecordCacheMiss counts a directory cache miss.
func (c *Collector) RecordCacheMiss(string) {
	if c != nil {
		c.CacheMisses.Inc()
	}
}

// RecordReload counts a reload attempt and tracks the snapshot size after a
// successful one.
func (c *Collector) RecordReload(outcome string, records int) {
	if c != nil {
		c.DirectoryReloads.WithLabelValues(outcome).Inc()
		if outcome == "ok" {
			c.DirectorySize.Set(float64(records))
		}
	}
}
