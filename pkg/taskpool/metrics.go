package taskpool

import (
	"time"

	"github.com/imgtools/taskpool/pkg/metrics"
)

// Pool supports runtime-controlled Prometheus instrumentation.
var _ metrics.Instrumentable = (*Pool)(nil)

// EnableMetrics enables metrics collection for this pool. Metrics are
// registered with the registry from config, or the default registry when
// none is given. Enabling twice against the same registry re-registers
// the collectors and fails inside Prometheus; use a fresh registry or
// toggle with DisableMetrics instead.
func (p *Pool) EnableMetrics(config metrics.Config) error {
	p.mmu.Lock()
	p.metricsOn = config.Enabled
	if config.Enabled {
		if config.Registry != nil {
			p.registry = metrics.NewRegistry(config.Registry)
		} else {
			p.registry = metrics.DefaultRegistry
		}
	}
	p.mmu.Unlock()

	if config.Enabled {
		p.observeGauges()
	}
	return nil
}

// DisableMetrics disables metrics collection.
func (p *Pool) DisableMetrics() {
	p.mmu.Lock()
	p.metricsOn = false
	p.mmu.Unlock()
}

// MetricsEnabled returns true if metrics are currently enabled.
func (p *Pool) MetricsEnabled() bool {
	p.mmu.RLock()
	defer p.mmu.RUnlock()
	return p.metricsOn
}

func (p *Pool) metricsRegistry() (*metrics.Registry, bool) {
	p.mmu.RLock()
	defer p.mmu.RUnlock()
	return p.registry, p.metricsOn && p.registry != nil
}

func (p *Pool) observeSubmit() {
	reg, ok := p.metricsRegistry()
	if !ok {
		return
	}
	reg.TasksSubmitted.WithLabelValues(p.config.Name).Inc()
	reg.PoolQueued.WithLabelValues(p.config.Name).Set(float64(p.QueueLen()))
}

func (p *Pool) observeExecution(err error, duration time.Duration) {
	reg, ok := p.metricsRegistry()
	if !ok {
		return
	}
	name := p.config.Name
	reg.TasksExecuted.WithLabelValues(name).Inc()
	if err != nil {
		reg.TasksFailed.WithLabelValues(name).Inc()
	} else {
		reg.TasksCompleted.WithLabelValues(name).Inc()
	}
	reg.TaskExecutionDuration.WithLabelValues(name).Observe(duration.Seconds())
}

// observeDropped records tasks discarded by a shrink or close. Safe to
// call with p.mu held: it touches only counters, never pool state.
func (p *Pool) observeDropped(n int) {
	reg, ok := p.metricsRegistry()
	if !ok {
		return
	}
	reg.TasksDropped.WithLabelValues(p.config.Name).Add(float64(n))
}

// observeGauges refreshes the pool state gauges. Must be called without
// p.mu held: the accessors it uses take the lock themselves.
func (p *Pool) observeGauges() {
	reg, ok := p.metricsRegistry()
	if !ok {
		return
	}
	name := p.config.Name
	reg.PoolWorkers.WithLabelValues(name).Set(float64(p.NumWorkers()))
	reg.PoolQueued.WithLabelValues(name).Set(float64(p.QueueLen()))
	reg.PoolActive.WithLabelValues(name).Set(float64(p.ActiveWorkers()))
}
