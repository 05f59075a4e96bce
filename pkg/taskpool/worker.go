package taskpool

import (
	"context"
	"fmt"
	"log"
	"runtime/debug"
	"time"
)

// worker is a single long-lived dispatch loop.
type worker struct {
	id   int
	pool *Pool
}

// run is the worker's dispatch loop: block until work or a stop request
// arrives, pop the next task in FIFO order, and execute it with the queue
// lock released so task bodies may submit new tasks without deadlocking.
func (w *worker) run() {
	p := w.pool

	if f := p.config.OnWorkerStart; f != nil {
		f(w.id)
	}
	defer func() {
		if f := p.config.OnWorkerStop; f != nil {
			f(w.id)
		}
		p.wg.Done()
	}()

	for {
		p.mu.Lock()
		for p.queue.Len() == 0 && !p.stopping {
			p.cond.Wait()
		}
		if p.stopping {
			// A stopping pool abandons whatever is still queued; the
			// stop path releases those tasks' groups.
			p.mu.Unlock()
			return
		}
		task := p.queue.PopFront()
		p.mu.Unlock()

		p.active.Add(1)
		p.runTask(task)
		p.active.Add(-1)
		p.observeGauges()
	}
}

// runTask executes one task body, releases its group, and routes any
// failure to the configured handler. Called without p.mu held.
func (p *Pool) runTask(task Task) {
	start := time.Now()
	err := p.invoke(task)
	duration := time.Since(start)

	// The group is released only after the body has fully run, so a
	// waiter observes "work finished", not merely "dequeued".
	if g := task.Group(); g != nil {
		g.done()
	}

	p.observeExecution(err, duration)

	if err != nil {
		if h := p.config.OnTaskError; h != nil {
			h(task, err)
		} else {
			log.Printf("taskpool: task failed: %v", err)
		}
	}
}

// invoke runs the task body and converts a panic into an error unless a
// PanicHandler consumes it.
func (p *Pool) invoke(task Task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if h := p.config.PanicHandler; h != nil {
				h(task, r)
				return
			}
			err = fmt.Errorf("task panicked: %v\nstack trace:\n%s", r, debug.Stack())
		}
	}()
	return task.Execute(context.Background())
}
