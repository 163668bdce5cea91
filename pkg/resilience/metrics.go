package resilience

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sony/gobreaker/v2"
)

// Metrics exports breaker state and call outcomes per policy.
type Metrics struct {
	state *prometheus.GaugeVec
	calls *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them on reg when it is not nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		state: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "resilience_circuit_breaker_state",
				Help: "Circuit breaker state (0 closed, 1 half-open, 2 open)",
			},
			[]string{"name"},
		),
		calls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "resilience_calls_total",
				Help: "Calls made through a resilience policy by outcome",
			},
			[]string{"name", "outcome"},
		),
	}

	if reg != nil {
		reg.MustRegister(m.state, m.calls)
	}

	return m
}

func (m *Metrics) setState(name string, state gobreaker.State) {
	if m == nil {
		return
	}
	m.state.WithLabelValues(name).Set(float64(state))
}

func (m *Metrics) observe(name, outcome string) {
	if m == nil {
		return
	}
	m.calls.WithLabelValues(name, outcome).Inc()
}
