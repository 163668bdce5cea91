package resilience

import (
	"sort"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// BreakerStats is a point-in-time view of one circuit breaker.
type BreakerStats struct {
	Name                 string `json:"name"`
	State                string `json:"state"`
	Requests             uint32 `json:"requests"`
	TotalSuccesses       uint32 `json:"total_successes"`
	TotalFailures        uint32 `json:"total_failures"`
	ConsecutiveSuccesses uint32 `json:"consecutive_successes"`
	ConsecutiveFailures  uint32 `json:"consecutive_failures"`
}

// Registry owns the named policies of a process and their shared metrics.
type Registry struct {
	mu       sync.RWMutex
	policies map[string]*Policy
	metrics  *Metrics
}

func NewRegistry(reg prometheus.Registerer) *Registry {
	return &Registry{
		policies: make(map[string]*Policy),
		metrics:  NewMetrics(reg),
	}
}

// Policy returns the policy registered under name, creating it from cfg on
// first use.
func (r *Registry) Policy(name string, cfg Config) *Policy {
	r.mu.RLock()
	p, ok := r.policies[name]
	r.mu.RUnlock()
	if ok {
		return p
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if p, ok = r.policies[name]; ok {
		return p
	}
	p = NewPolicy(name, cfg, r.metrics)
	r.policies[name] = p
	return p
}

// Stats lists every breaker sorted by name.
func (r *Registry) Stats() []BreakerStats {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats := make([]BreakerStats, 0, len(r.policies))
	for _, p := range r.policies {
		stats = append(stats, p.Stats())
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Name < stats[j].Name })
	return stats
}
