// Package metrics provides Prometheus instrumentation for taskpool components.
//
// The metrics package instruments pool and task activity: pool size, queue
// depth, active workers, and per-task counters and durations.
//
// # Quick Start
//
// Enable metrics on a pool and expose them via HTTP:
//
//	pool := taskpool.New(4)
//	_ = pool.EnableMetrics(metrics.DefaultConfig())
//
//	http.Handle("/metrics", promhttp.Handler())
//	log.Fatal(http.ListenAndServe(":8080", nil))
//
// # Custom Registry
//
// Use a custom Prometheus registry for isolation:
//
//	registry := prometheus.NewRegistry()
//	config := metrics.Config{
//		Enabled:  true,
//		Registry: registry,
//	}
//	_ = pool.EnableMetrics(config)
//
// # Available Metrics
//
//   - taskpool_pool_workers: Current number of workers in the pool
//   - taskpool_pool_queued_tasks: Number of tasks waiting in the submission queue
//   - taskpool_pool_active_workers: Number of workers currently executing a task
//   - taskpool_tasks_submitted_total: Total number of tasks submitted
//   - taskpool_tasks_executed_total: Total number of tasks executed
//   - taskpool_tasks_completed_total: Total number of tasks completed successfully
//   - taskpool_tasks_failed_total: Total number of tasks that returned an error or panicked
//   - taskpool_tasks_dropped_total: Total number of queued tasks discarded by a shrink or close
//   - taskpool_tasks_duration_seconds: Time spent executing tasks
//
// All metrics carry a pool_name label taken from the pool's configured name.
//
// # Runtime Control
//
// Components implementing the Instrumentable interface support runtime control:
//
//	pool.DisableMetrics()           // Stop collecting metrics
//	pool.EnableMetrics(config)      // Re-enable with new config
//	enabled := pool.MetricsEnabled() // Check current state
//
// # Performance
//
// Metrics collection is designed for minimal overhead:
//   - Metrics are updated only when operations occur
//   - No background goroutines or timers
//   - Conditional metrics updates based on enabled state
package metrics
