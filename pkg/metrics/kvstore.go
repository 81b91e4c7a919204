package metrics

import "github.com/prometheus/client_golang/prometheus"

// StorageMetrics counts persistent storage failures that were swallowed.
type StorageMetrics struct {
	failure *prometheus.CounterVec
}

func NewStorageMetrics(reg prometheus.Registerer) *StorageMetrics {
	if reg == nil {
		return &StorageMetrics{}
	}
	failure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "kvstore_failures_total",
		Help: "Persistent key-value operations that failed and fell back to defaults.",
	}, []string{"op"})
	reg.MustRegister(failure)
	return &StorageMetrics{failure: failure}
}

// IncFailure increments the failure counter for op (get, set, delete, clear).
func (m *StorageMetrics) IncFailure(op string) {
	if m == nil || m.failure == nil {
		return
	}
	m.failure.WithLabelValues(normalizeLabel(op)).Inc()
}
