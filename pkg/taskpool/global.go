package taskpool

import "sync"

var (
	defaultPool *Pool
	defaultOnce sync.Once
)

// Default returns the process-wide shared pool, creating it on first use.
// It starts with zero workers, so tasks run synchronously on the caller
// until SetNumWorkers grows it. The default pool lives for the lifetime
// of the process and must not be closed.
func Default() *Pool {
	defaultOnce.Do(func() {
		p, _ := NewWithConfig(Config{Workers: 0, Name: "global"})
		defaultPool = p
	})
	return defaultPool
}

// Submit adds a task to the default pool.
func Submit(task Task) error {
	return Default().Submit(task)
}

// NumWorkers returns the worker count of the default pool.
func NumWorkers() int {
	return Default().NumWorkers()
}

// SetNumWorkers resizes the default pool.
func SetNumWorkers(count int) error {
	return Default().SetNumWorkers(count)
}
