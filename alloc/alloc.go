// Package alloc defines the raw allocator used by owning buffers and
// provides heap, pooled, and instrumented implementations. An allocation
// obtained from an Allocator must be released back to the same Allocator
// at most once; the buf package enforces the pairing.
package alloc

// Allocator hands out raw byte regions and takes them back.
//
// Release is never called twice for the same allocation. Implementations
// may recycle released memory, so callers must not touch a region after
// releasing it.
type Allocator interface {
	Allocate(size int) []byte
	Release(p []byte)
}

// Heap allocates from the Go heap. Release is a no-op; the garbage
// collector reclaims the memory once it is unreachable.
type Heap struct{}

// Allocate returns a zero-filled slice of the given size.
func (Heap) Allocate(size int) []byte {
	return make([]byte, size)
}

// Release does nothing.
func (Heap) Release([]byte) {}
