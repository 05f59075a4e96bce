// Package metrics provides Prometheus instrumentation for taskpool components.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds all metric instances for taskpool components.
type Registry struct {
	// Pool state
	PoolWorkers *prometheus.GaugeVec
	PoolQueued  *prometheus.GaugeVec
	PoolActive  *prometheus.GaugeVec

	// Task activity
	TasksSubmitted        *prometheus.CounterVec
	TasksExecuted         *prometheus.CounterVec
	TasksCompleted        *prometheus.CounterVec
	TasksFailed           *prometheus.CounterVec
	TasksDropped          *prometheus.CounterVec
	TaskExecutionDuration *prometheus.HistogramVec
}

// DefaultRegistry is the default metrics registry used by taskpool components.
var DefaultRegistry *Registry

func init() {
	DefaultRegistry = NewRegistry(prometheus.DefaultRegisterer)
}

// NewRegistry creates a new metrics registry with the given Prometheus registerer.
func NewRegistry(reg prometheus.Registerer) *Registry {
	factory := promauto.With(reg)

	return &Registry{
		// Pool state
		PoolWorkers: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "taskpool",
				Subsystem: "pool",
				Name:      "workers",
				Help:      "Current number of workers in the pool",
			},
			[]string{"pool_name"},
		),

		PoolQueued: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "taskpool",
				Subsystem: "pool",
				Name:      "queued_tasks",
				Help:      "Number of tasks waiting in the submission queue",
			},
			[]string{"pool_name"},
		),

		PoolActive: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "taskpool",
				Subsystem: "pool",
				Name:      "active_workers",
				Help:      "Number of workers currently executing a task",
			},
			[]string{"pool_name"},
		),

		// Task activity
		TasksSubmitted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "taskpool",
				Subsystem: "tasks",
				Name:      "submitted_total",
				Help:      "Total number of tasks submitted to the pool",
			},
			[]string{"pool_name"},
		),

		TasksExecuted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "taskpool",
				Subsystem: "tasks",
				Name:      "executed_total",
				Help:      "Total number of tasks executed",
			},
			[]string{"pool_name"},
		),

		TasksCompleted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "taskpool",
				Subsystem: "tasks",
				Name:      "completed_total",
				Help:      "Total number of tasks completed successfully",
			},
			[]string{"pool_name"},
		),

		TasksFailed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "taskpool",
				Subsystem: "tasks",
				Name:      "failed_total",
				Help:      "Total number of tasks that returned an error or panicked",
			},
			[]string{"pool_name"},
		),

		TasksDropped: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "taskpool",
				Subsystem: "tasks",
				Name:      "dropped_total",
				Help:      "Total number of queued tasks discarded by a shrink or close",
			},
			[]string{"pool_name"},
		),

		TaskExecutionDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "taskpool",
				Subsystem: "tasks",
				Name:      "duration_seconds",
				Help:      "Time spent executing tasks",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"pool_name"},
		),
	}
}
