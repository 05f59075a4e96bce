package taskpool

import "sync"

// Group tracks how many submitted-but-unfinished tasks belong to one
// logical batch. It is a countdown latch: the pool increments the count
// on submission and decrements it after the task body has fully run, and
// Wait blocks until the count returns to zero.
//
// A Group holds no references to its tasks and may be reused for a new
// batch once Wait has returned.
type Group struct {
	mu      sync.Mutex
	cond    *sync.Cond
	pending int
}

// NewGroup creates an empty group. Waiting on an empty group returns
// immediately.
func NewGroup() *Group {
	g := &Group{}
	g.cond = sync.NewCond(&g.mu)
	return g
}

// add registers one more pending task. Called by the pool on submission,
// before the task becomes visible to any worker.
func (g *Group) add() {
	g.mu.Lock()
	g.pending++
	g.mu.Unlock()
}

// done marks one task finished (or dropped) and wakes all waiters when
// the batch empties.
func (g *Group) done() {
	g.mu.Lock()
	g.pending--
	if g.pending == 0 {
		g.cond.Broadcast()
	}
	g.mu.Unlock()
}

// Wait blocks the caller until every task submitted against the group has
// finished. Multiple goroutines may wait concurrently; all are released
// together.
//
// Wait must not be called from inside one of the group's own task bodies:
// the running task cannot be marked finished while its body blocks, so
// the call would deadlock.
func (g *Group) Wait() {
	g.mu.Lock()
	for g.pending > 0 {
		g.cond.Wait()
	}
	g.mu.Unlock()
}

// Pending reports the number of submitted-but-unfinished tasks.
func (g *Group) Pending() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.pending
}
