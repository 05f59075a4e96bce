package testutil

import (
	"sync"
	"testing"
)

// OrderRecorder captures the order in which concurrent work items ran.
type OrderRecorder struct {
	mu    sync.Mutex
	order []int
}

// Record appends one item to the observed order.
func (r *OrderRecorder) Record(i int) {
	r.mu.Lock()
	r.order = append(r.order, i)
	r.mu.Unlock()
}

// Order returns a copy of the observed order.
func (r *OrderRecorder) Order() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]int, len(r.order))
	copy(out, r.order)
	return out
}

// AssertOrder fails the test if the observed order differs from want.
func (r *OrderRecorder) AssertOrder(t *testing.T, want []int) {
	t.Helper()
	got := r.Order()
	if len(got) != len(want) {
		t.Fatalf("recorded %d items, want %d (got %v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order mismatch at %d: got %v, want %v", i, got, want)
		}
	}
}

// ConcurrencyTracker measures the peak number of goroutines inside a
// critical region. Wrap the region in Enter/Exit and read Max afterwards.
type ConcurrencyTracker struct {
	mu   sync.Mutex
	cur  int
	peak int
}

// Enter marks one goroutine as inside the region.
func (c *ConcurrencyTracker) Enter() {
	c.mu.Lock()
	c.cur++
	if c.cur > c.peak {
		c.peak = c.cur
	}
	c.mu.Unlock()
}

// Exit marks one goroutine as having left the region.
func (c *ConcurrencyTracker) Exit() {
	c.mu.Lock()
	c.cur--
	c.mu.Unlock()
}

// Max returns the peak concurrency observed so far.
func (c *ConcurrencyTracker) Max() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.peak
}

// CallbackTracker records invocations of a callback for later assertions.
type CallbackTracker struct {
	mu    sync.Mutex
	count int
	value interface{}
}

// NewCallbackTracker creates a new callback tracker.
func NewCallbackTracker() *CallbackTracker {
	return &CallbackTracker{}
}

// Mark records one invocation, optionally with a value.
func (ct *CallbackTracker) Mark(values ...interface{}) {
	ct.mu.Lock()
	defer ct.mu.Unlock()
	ct.count++
	if len(values) > 0 {
		ct.value = values[0]
	}
}

// Called reports whether the callback was invoked at least once.
func (ct *CallbackTracker) Called() bool {
	ct.mu.Lock()
	defer ct.mu.Unlock()
	return ct.count > 0
}

// CallCount returns the number of invocations.
func (ct *CallbackTracker) CallCount() int {
	ct.mu.Lock()
	defer ct.mu.Unlock()
	return ct.count
}

// Value returns the value from the most recent invocation.
func (ct *CallbackTracker) Value() interface{} {
	ct.mu.Lock()
	defer ct.mu.Unlock()
	return ct.value
}

// AssertCallCount fails the test if the invocation count differs from want.
func (ct *CallbackTracker) AssertCallCount(t *testing.T, want int) {
	t.Helper()
	if got := ct.CallCount(); got != want {
		t.Errorf("callback called %d times, want %d", got, want)
	}
}
