// Package metrics exposes the service's Prometheus collectors on a
// dedicated registry.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	// Registry is the dedicated Prometheus registry for the service.
	Registry = prometheus.NewRegistry()

	// HTTPRequests counts requests by method, path, and status.
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests."},
		[]string{"method", "path", "status"},
	)
	// HTTPDuration records request durations in seconds.
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request duration in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"method", "path", "status"},
	)

	// Evaluations counts scored candidates by feasibility outcome.
	Evaluations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "slab_evaluations_total", Help: "Candidate evaluations by feasibility."},
		[]string{"feasible"},
	)
	// EvaluationDuration tracks single-candidate scoring latency in seconds.
	EvaluationDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{Name: "slab_evaluation_duration_seconds", Help: "Candidate evaluation duration in seconds.", Buckets: []float64{1e-6, 1e-5, 1e-4, 1e-3, 1e-2, 0.1, 1}},
	)
	// WasteTableEntries reports the size of the currently loaded waste table.
	WasteTableEntries = prometheus.NewGauge(
		prometheus.GaugeOpts{Name: "slab_waste_table_entries", Help: "Entries in the currently loaded waste table."},
	)
)

var regOnce sync.Once

// RegisterDefault registers all collectors on the registry exactly once.
func RegisterDefault() {
	regOnce.Do(func() {
		Registry.MustRegister(HTTPRequests)
		Registry.MustRegister(HTTPDuration)
		Registry.MustRegister(Evaluations)
		Registry.MustRegister(EvaluationDuration)
		Registry.MustRegister(WasteTableEntries)
		// Go/process collectors on our registry
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}
