package bench

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the sweep's Prometheus instruments on a private registry,
// so repeated sweeps in one process never collide on registration.
type Metrics struct {
	registry *prometheus.Registry

	ComputeDuration *prometheus.HistogramVec
	FailuresTotal   *prometheus.CounterVec
	DatasetNodes    *prometheus.GaugeVec
	DatasetEdges    *prometheus.GaugeVec
}

// NewMetrics creates the sweep instruments.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	m := &Metrics{registry: registry}

	m.ComputeDuration = promauto.With(registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "graphbench_compute_duration_seconds",
			Help:    "Wall-clock duration of partition computation",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 12),
		},
		[]string{"dataset", "backend"},
	)

	m.FailuresTotal = promauto.With(registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "graphbench_failures_total",
			Help: "Failures during the sweep by stage",
		},
		[]string{"stage"}, // load, adapt, compute
	)

	m.DatasetNodes = promauto.With(registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "graphbench_dataset_nodes",
			Help: "Node count of the loaded reference graph",
		},
		[]string{"dataset"},
	)

	m.DatasetEdges = promauto.With(registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "graphbench_dataset_edges",
			Help: "Edge count of the loaded reference graph",
		},
		[]string{"dataset"},
	)

	return m
}

// Gatherer exposes the private registry for scraping or test inspection.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}
