package metrics

import "github.com/prometheus/client_golang/prometheus"

// TransitionMetrics counts route transitions by direction and trigger.
type TransitionMetrics struct {
	started *prometheus.CounterVec
}

func NewTransitionMetrics(reg prometheus.Registerer) *TransitionMetrics {
	if reg == nil {
		return &TransitionMetrics{}
	}
	started := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "route_transitions_total",
		Help: "Route transitions started, by direction and trigger (explicit, navigate, inferred).",
	}, []string{"direction", "trigger"})
	reg.MustRegister(started)
	return &TransitionMetrics{started: started}
}

func (m *TransitionMetrics) IncStarted(direction, trigger string) {
	if m == nil || m.started == nil {
		return
	}
	m.started.WithLabelValues(normalizeLabel(direction), normalizeLabel(trigger)).Inc()
}
