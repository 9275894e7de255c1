package sink

import "sync"

// Counter is a concurrency-safe sample budget. Take succeeds at most limit
// times across all goroutines; the final successful Take closes Done.
type Counter struct {
	mu    sync.Mutex
	left  int
	done  chan struct{}
	fired bool
}

// NewCounter creates a counter for the given sample size. limit must be
// positive.
func NewCounter(limit int) *Counter {
	return &Counter{left: limit, done: make(chan struct{})}
}

// Take claims one slot of the budget. It returns false once the budget is
// exhausted; late successes racing the final slot are dropped.
func (c *Counter) Take() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.left == 0 {
		return false
	}
	c.left--
	if c.left == 0 && !c.fired {
		c.fired = true
		close(c.done)
	}
	return true
}

// Done is closed once the full budget has been taken.
func (c *Counter) Done() <-chan struct{} {
	return c.done
}

// Remaining reports how many slots are still unclaimed.
func (c *Counter) Remaining() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.left
}
