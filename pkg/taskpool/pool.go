package taskpool

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/gammazero/deque"

	"github.com/imgtools/taskpool/pkg/common/validation"
	"github.com/imgtools/taskpool/pkg/metrics"
)

// Task represents one unit of work bound to a Group.
type Task interface {
	// Execute runs the task. The pool does not interpret the returned
	// error beyond routing it to the pool's error handler.
	Execute(ctx context.Context) error

	// Group returns the Group the task was constructed with, or nil for
	// fire-and-forget tasks that no caller waits on.
	Group() *Group
}

// funcTask adapts a closure into a Task.
type funcTask struct {
	group *Group
	fn    func(ctx context.Context) error
}

func (t *funcTask) Execute(ctx context.Context) error { return t.fn(ctx) }
func (t *funcTask) Group() *Group                     { return t.group }

// NewTask binds fn to g so that g.Wait blocks until fn has run.
// A nil g is allowed and produces a task no caller can wait on.
// The returned task is owned by the pool once submitted and must not be
// submitted twice.
func NewTask(g *Group, fn func(ctx context.Context) error) Task {
	if fn == nil {
		panic("taskpool: nil task function")
	}
	return &funcTask{group: g, fn: fn}
}

// Config holds configuration options for creating a pool.
type Config struct {
	// Workers is the initial number of workers. Zero is legal: the pool
	// then executes every submitted task synchronously on the caller.
	Workers int

	// Name identifies the pool in metrics. Defaults to "default".
	Name string

	// OnTaskError is called when a task's Execute returns an error.
	// If nil, the error is logged via the standard log package.
	OnTaskError func(task Task, err error)

	// PanicHandler is called when a task panics during execution.
	// If nil, panics are recovered and reported as task errors.
	PanicHandler func(task Task, recovered interface{})

	// OnWorkerStart is called when a worker starts.
	OnWorkerStart func(workerID int)

	// OnWorkerStop is called when a worker stops.
	OnWorkerStop func(workerID int)
}

// Pool owns a set of workers and a FIFO queue of submitted tasks.
//
// Submission is safe from any number of goroutines, including from inside
// task bodies. Resizing and closing are not: at most one goroutine may
// call SetNumWorkers or Close on a given pool at a time.
type Pool struct {
	config Config

	// mu guards queue, workers, stopping and closed. It is never held
	// while a task body runs.
	mu       sync.Mutex
	cond     *sync.Cond // signaled on new work and on stop requests
	queue    deque.Deque[Task]
	workers  []*worker
	nextID   int
	stopping bool
	closed   bool
	wg       sync.WaitGroup

	active atomic.Int32

	closeOnce sync.Once

	// Metrics state, guarded separately so observation never contends
	// with dispatch.
	mmu       sync.RWMutex
	metricsOn bool
	registry  *metrics.Registry
}

// New creates a pool with the given number of workers. It panics if
// workers is negative; use NewWithConfig to receive an error instead.
func New(workers int) *Pool {
	p, err := NewWithConfig(Config{Workers: workers})
	if err != nil {
		panic(err)
	}
	return p
}

// NewWithConfig creates a pool from the given configuration.
func NewWithConfig(config Config) (*Pool, error) {
	if err := validation.ValidateNonNegative("taskpool", "workers", config.Workers); err != nil {
		return nil, err
	}
	if config.Name == "" {
		config.Name = "default"
	}

	p := &Pool{config: config}
	p.cond = sync.NewCond(&p.mu)

	p.mu.Lock()
	p.spawnLocked(config.Workers)
	p.mu.Unlock()

	return p, nil
}
