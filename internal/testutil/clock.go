package testutil

import "sync"

// Counter is a resettable monotonic counter for deterministic tests.
//
// The first call to Next returns 1. Reset makes the same test sequence
// reproducible within one process.
//
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type Counter struct {
	mu  sync.Mutex
	seq int64
}

// NewCounter creates a new counter starting at 0.
func NewCounter() *Counter {
	return &Counter{}
}

// Next increments and returns the next value.
func (c *Counter) Next() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	return c.seq
}

// Current returns the current value without incrementing.
func (c *Counter) Current() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.seq
}

// Reset resets the counter to 0.
func (c *Counter) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq = 0
}
