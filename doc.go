/*
Package taskpool provides a resizable worker pool with batch synchronization
for parallelizing independent units of work, such as per-scanline image
compression and decompression.

Core library (pkg/taskpool):
  - Pool: owns the worker set and the FIFO submission queue; supports dynamic
    resizing, a synchronous zero-worker mode, and graceful shutdown
  - Group: counter-based synchronization that lets a caller block until a
    batch of related tasks has finished
  - Task: one unit of submitted work, bound to a Group

Instrumentation (pkg/metrics):
  - Prometheus gauges, counters, and histograms for pool and task activity

Example usage:

	import "github.com/imgtools/taskpool/pkg/taskpool"

	pool := taskpool.New(4)
	defer pool.Close()

	group := taskpool.NewGroup()
	for _, block := range blocks {
		block := block
		pool.Submit(taskpool.NewTask(group, func(ctx context.Context) error {
			return compress(block)
		}))
	}
	group.Wait() // all blocks compressed
*/
package taskpool
