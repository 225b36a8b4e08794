package fleet

import (
	"time"

	"github.com/gitfleet/gitfleet/internal/operations"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "gitfleet"

type metrics struct {
	operations *prometheus.CounterVec
	projects   *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

func newMetrics(registerer prometheus.Registerer) *metrics {
	factory := promauto.With(registerer)

	return &metrics{
		operations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "fleet",
			Name:      "operations_total",
			Help:      "Fleet operations by kind and final status.",
		}, []string{"kind", "status"}),
		projects: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "fleet",
			Name:      "project_operations_total",
			Help:      "Per-project operation results by kind.",
		}, []string{"kind", "result"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: "fleet",
			Name:      "operation_duration_seconds",
			Help:      "Duration of fleet operations.",
			Buckets:   prometheus.ExponentialBuckets(0.1, 2, 10),
		}, []string{"kind"}),
	}
}

func (m *metrics) observeProject(kind operations.Kind, outcome operations.Outcome) {
	result := "success"
	if !outcome.Success {
		result = "failure"
	}
	m.projects.WithLabelValues(string(kind), result).Inc()
}

func (m *metrics) observeOperation(kind operations.Kind, status operations.Status, elapsed time.Duration) {
	m.operations.WithLabelValues(string(kind), string(status)).Inc()
	m.duration.WithLabelValues(string(kind)).Observe(elapsed.Seconds())
}
