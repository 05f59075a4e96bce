/*
Package taskpool provides a resizable worker pool with batch synchronization.

The pool parallelizes independent units of work across a fixed set of worker
goroutines while letting callers block until a logical batch of that work has
completed. It was designed for workloads like per-scanline image compression,
where a producer submits many small tasks and must know when all side effects
of a batch are visible before proceeding.

Basic usage:

	pool := taskpool.New(4)
	defer pool.Close()

	group := taskpool.NewGroup()
	for _, block := range blocks {
		block := block
		pool.Submit(taskpool.NewTask(group, func(ctx context.Context) error {
			return compress(block)
		}))
	}

	group.Wait() // returns after every block has been compressed

Task and Group:

Tasks implement a small interface:

	type Task interface {
		Execute(ctx context.Context) error
		Group() *Group
	}

NewTask adapts a closure and binds it to a Group. A Group is a countdown
latch: submission increments its pending count, and the pool decrements it
only after the task body has fully run, so Group.Wait gives a true "work
finished" guarantee rather than "dequeued". A group with no submitted tasks
is waitable immediately, and a group may be reused for a new batch once Wait
has returned. Do not call Wait from inside one of the group's own tasks; that
deadlocks.

Dispatch order:

Tasks are dispatched in FIFO submission order. With a single producer and a
single worker, execution order equals submission order. Across concurrent
producers the interleaving of their submissions is unspecified, but each
producer's own order is preserved. There is no priority scheduling and no
cancellation of a task once submitted.

Resizing:

	pool.SetNumWorkers(8)  // grow: spawns workers, queue untouched
	pool.SetNumWorkers(2)  // shrink: restarts the worker set

Shrinking stops and joins every current worker and discards tasks that were
queued but not yet dispatched. Discarded tasks never run, but their groups
are released, so no Group.Wait blocks forever on them; the dropped count is
visible through the taskpool_tasks_dropped_total metric. Callers that need
every queued task to run must wait on their groups before shrinking. At most
one goroutine may resize or close a given pool at a time; submission remains
safe from any number of goroutines, including from inside task bodies.

Zero workers:

A pool with zero workers executes each submitted task synchronously on the
calling goroutine before Submit returns. This disables concurrency without
changing call sites, which is useful in tests and in memory-constrained
deployments.

Error handling:

The pool never lets a failing task kill a worker. An error returned by
Execute is routed to Config.OnTaskError, and a panic in a task body is
recovered and routed to Config.PanicHandler. When no handlers are set,
errors (including recovered panics) are logged via the standard log package
and dispatch continues.

The default pool:

Default returns a lazily-created process-wide pool shared by all callers
that do not construct their own. It starts with zero workers; grow it with
the package-level SetNumWorkers. The package-level Submit is shorthand for
Default().Submit.
*/
package taskpool
