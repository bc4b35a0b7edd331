package alloc

import "sync"

// Pool recycles released allocations through a sync.Pool to reduce GC
// pressure when buffers are created and released in a tight loop.
// Allocations are zeroed on reuse, so a pooled allocation is
// indistinguishable from a fresh one.
type Pool struct {
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool() *Pool {
	return &Pool{}
}

// Allocate returns a zero-filled slice of the given size, reusing a
// previously released region when its capacity suffices.
func (p *Pool) Allocate(size int) []byte {
	v := p.pool.Get()
	if v == nil {
		return make([]byte, size)
	}
	s := *v.(*[]byte)
	if cap(s) < size {
		return make([]byte, size)
	}
	s = s[:size]
	for i := range s {
		s[i] = 0
	}
	return s
}

// Release returns an allocation to the pool for reuse.
// The caller must not use the slice after releasing it.
func (p *Pool) Release(s []byte) {
	if cap(s) == 0 {
		return
	}
	p.pool.Put(&s)
}
