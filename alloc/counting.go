package alloc

import "sync/atomic"

// Counting wraps an Allocator and counts allocate/release calls. It is
// meant for tests that need to prove every allocation is released
// exactly once.
type Counting struct {
	inner     Allocator
	allocates atomic.Int64
	releases  atomic.Int64
}

// NewCounting returns a Counting allocator delegating to inner.
// A nil inner delegates to Heap.
func NewCounting(inner Allocator) *Counting {
	if inner == nil {
		inner = Heap{}
	}
	return &Counting{inner: inner}
}

// Allocate delegates to the wrapped allocator.
func (c *Counting) Allocate(size int) []byte {
	c.allocates.Add(1)
	return c.inner.Allocate(size)
}

// Release delegates to the wrapped allocator.
func (c *Counting) Release(p []byte) {
	c.releases.Add(1)
	c.inner.Release(p)
}

// Allocates returns the number of Allocate calls seen so far.
func (c *Counting) Allocates() int64 {
	return c.allocates.Load()
}

// Releases returns the number of Release calls seen so far.
func (c *Counting) Releases() int64 {
	return c.releases.Load()
}

// Outstanding returns the number of allocations not yet released.
func (c *Counting) Outstanding() int64 {
	return c.allocates.Load() - c.releases.Load()
}
