package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// DataAccessMetrics records latency and failures of data access operations.
type DataAccessMetrics struct {
	duration *prometheus.HistogramVec
	failure  *prometheus.CounterVec
}

// NewDataAccessMetrics registers the data access metrics on the provided registerer.
// A nil registerer yields a no-op recorder.
func NewDataAccessMetrics(reg prometheus.Registerer) *DataAccessMetrics {
	if reg == nil {
		return &DataAccessMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "dataaccess_operation_duration_seconds",
		Help:    "Duration of data access operations, simulated latency included.",
		Buckets: []float64{0.01, 0.05, 0.1, 0.15, 0.2, 0.3, 0.5, 1},
	}, []string{"op"})
	failure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "dataaccess_operation_failures_total",
		Help: "Data access operations that returned an error.",
	}, []string{"op"})
	reg.MustRegister(duration, failure)
	return &DataAccessMetrics{duration: duration, failure: failure}
}

// Observe records one completed operation.
func (m *DataAccessMetrics) Observe(op string, elapsed time.Duration, err error) {
	if m == nil || m.duration == nil {
		return
	}
	op = normalizeLabel(op)
	m.duration.WithLabelValues(op).Observe(elapsed.Seconds())
	if err != nil {
		m.failure.WithLabelValues(op).Inc()
	}
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
