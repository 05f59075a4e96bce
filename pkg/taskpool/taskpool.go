package taskpool

import (
	"fmt"

	tperrors "github.com/imgtools/taskpool/pkg/common/errors"
	"github.com/imgtools/taskpool/pkg/common/validation"
)

// Submit adds a task to the pool.
//
// With zero workers the task is executed synchronously on the calling
// goroutine before Submit returns. Otherwise the task is appended to the
// FIFO queue and one idle worker is woken. Submission never blocks on
// queue capacity; the queue is unbounded.
//
// Ownership of the task transfers to the pool; the task must not be
// reused or submitted again.
func (p *Pool) Submit(task Task) error {
	if task == nil {
		return fmt.Errorf("taskpool: cannot submit: %w", tperrors.ErrNilTask)
	}

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return fmt.Errorf("taskpool: cannot submit: %w", tperrors.ErrClosed)
	}

	if len(p.workers) == 0 {
		p.mu.Unlock()
		// Degenerate single-threaded mode: run on the caller. Useful for
		// disabling concurrency without changing call sites.
		if g := task.Group(); g != nil {
			g.add()
		}
		p.observeSubmit()
		p.runTask(task)
		return nil
	}

	if g := task.Group(); g != nil {
		g.add()
	}
	p.queue.PushBack(task)
	p.cond.Signal()
	p.mu.Unlock()

	p.observeSubmit()
	return nil
}

// NumWorkers returns the current worker count. Safe to call concurrently
// with submission and resizing.
func (p *Pool) NumWorkers() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.workers)
}

// QueueLen returns the number of tasks waiting to be dispatched.
func (p *Pool) QueueLen() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.queue.Len()
}

// ActiveWorkers returns the number of workers currently executing a task.
func (p *Pool) ActiveWorkers() int {
	return int(p.active.Load())
}

// Name returns the pool's configured name.
func (p *Pool) Name() string {
	return p.config.Name
}

// SetNumWorkers changes the worker count. Negative counts are rejected
// with an invalid-configuration error and leave the pool unchanged.
//
// Growing spawns the difference and leaves the queue and existing workers
// untouched. Shrinking restarts the worker set: every current worker is
// stopped and joined, tasks still queued are discarded, and a fresh set
// of workers is started. Callers must not rely on queued-but-undispatched
// tasks surviving a shrink; their groups are released so that no Group.Wait
// blocks forever on a task that will never run.
//
// At most one goroutine may resize or close a given pool at a time.
func (p *Pool) SetNumWorkers(count int) error {
	if err := validation.ValidateNonNegative("taskpool", "workers", count); err != nil {
		return err
	}

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return fmt.Errorf("taskpool: cannot resize: %w", tperrors.ErrClosed)
	}

	switch current := len(p.workers); {
	case count > current:
		p.spawnLocked(count - current)
	case count < current:
		p.stopAndDrainLocked()
		p.spawnLocked(count)
	}
	p.mu.Unlock()

	p.observeGauges()
	return nil
}

// Close stops and joins all workers and discards any tasks still queued,
// releasing their groups. Close is idempotent; Submit and SetNumWorkers
// fail with ErrClosed afterwards.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.mu.Lock()
		p.closed = true
		p.stopAndDrainLocked()
		p.mu.Unlock()

		p.observeGauges()
	})
}

// spawnLocked starts n new workers. Caller must hold p.mu.
func (p *Pool) spawnLocked(n int) {
	for i := 0; i < n; i++ {
		w := &worker{id: p.nextID, pool: p}
		p.nextID++
		p.workers = append(p.workers, w)
		p.wg.Add(1)
		go w.run()
	}
}

// stopAndDrainLocked stops every worker, waits for all of them to exit,
// and discards whatever is still queued. Discarded tasks never run, but
// their groups are released. Caller must hold p.mu; the lock is dropped
// while joining and reacquired before returning.
func (p *Pool) stopAndDrainLocked() {
	p.stopping = true
	p.cond.Broadcast()
	p.mu.Unlock()

	// Workers finish their in-flight task, observe the stop flag, and
	// exit without touching the queue.
	p.wg.Wait()

	p.mu.Lock()
	p.stopping = false
	p.workers = p.workers[:0]

	dropped := 0
	for p.queue.Len() > 0 {
		task := p.queue.PopFront()
		if g := task.Group(); g != nil {
			g.done()
		}
		dropped++
	}
	if dropped > 0 {
		p.observeDropped(dropped)
	}
}
