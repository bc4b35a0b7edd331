package buf

import (
	"unsafe"

	"github.com/cwbudde/algo-buffer/alloc"
)

// Buffer is a fixed-length window over raw bytes.
//
// data is the addressable window. blk is non-nil when the window lies
// inside an allocator-backed allocation; the owner and every view over
// it hold one block reference each. owner marks the buffer carrying the
// release obligation, as opposed to a view or a caller-managed alias.
type Buffer struct {
	data  []byte
	blk   *block
	owner bool
}

// Option configures buffer construction.
type Option func(*config)

type config struct {
	alloc alloc.Allocator
}

// WithAllocator selects the allocator backing an owning buffer.
// The default is [alloc.Heap].
func WithAllocator(a alloc.Allocator) Option {
	return func(cfg *config) {
		if a != nil {
			cfg.alloc = a
		}
	}
}

func applyOptions(opts []Option) config {
	cfg := config{alloc: alloc.Heap{}}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// New returns a zero-filled owning buffer of length n, allocated from
// the configured allocator. Fails with [ErrInvalidArgument] if n is
// negative. n == 0 is legal; every index of such a buffer is out of
// bounds.
func New(n int, opts ...Option) (*Buffer, error) {
	if n < 0 {
		return nil, ErrInvalidArgument
	}
	cfg := applyOptions(opts)
	data := cfg.alloc.Allocate(n)
	return &Buffer{data: data, blk: newBlock(data, cfg.alloc), owner: true}, nil
}

// Adopt wraps externally supplied memory and takes over its release
// obligation: when the returned buffer and all views over it have been
// freed, data is released to a. The caller must not release data itself
// afterwards. A nil allocator adopts onto the heap.
func Adopt(data []byte, a alloc.Allocator) *Buffer {
	if a == nil {
		a = alloc.Heap{}
	}
	return &Buffer{data: data, blk: newBlock(data, a), owner: true}
}

// FromBytes wraps an existing slice without copying. The caller retains
// ownership: the buffer never releases the memory, and the slice must
// stay valid for as long as the buffer (or any view of it) is in use.
// Mutations through the buffer are visible in the slice and vice versa.
func FromBytes(data []byte) *Buffer {
	return &Buffer{data: data}
}

// FromPointer wraps n bytes starting at p without copying. The caller
// retains ownership and is responsible for the pointed-to memory staying
// valid and addressable; this precondition is not checked. Fails with
// [ErrInvalidArgument] if n is negative or p is nil with n > 0.
func FromPointer(p unsafe.Pointer, n int) (*Buffer, error) {
	if n < 0 || (p == nil && n > 0) {
		return nil, ErrInvalidArgument
	}
	if n == 0 {
		return &Buffer{}, nil
	}
	return &Buffer{data: unsafe.Slice((*byte)(p), n)}, nil
}

// FromString returns a buffer holding a copy of s. Go strings are
// immutable, so a writable alias of the string's bytes cannot exist;
// the one-time copy is what makes the returned buffer writable while s
// is guaranteed to stay untouched by any write through the buffer or
// its views.
func FromString(s string) *Buffer {
	return &Buffer{data: []byte(s)}
}

// View returns a non-owning buffer over the whole of b, sharing its
// memory. Writes through either are visible through the other.
func View(b *Buffer) *Buffer {
	if b.blk != nil {
		b.blk.retain()
	}
	return &Buffer{data: b.data, blk: b.blk}
}

// Len returns the number of addressable bytes.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Bytes returns the underlying window. The slice aliases the buffer's
// memory; it is not a copy.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Owns reports whether this buffer carries the release obligation for
// its backing allocation. Views and caller-managed aliases report false.
func (b *Buffer) Owns() bool {
	return b.owner
}

// Free releases this buffer's reference to its backing allocation. Once
// the owner and every view have been freed, the memory goes back to the
// allocator; the allocator sees exactly one Release per allocation.
// Free is idempotent per buffer and a no-op for buffers over
// caller-managed memory. The buffer must not be used after Free when the
// allocator recycles memory.
func (b *Buffer) Free() {
	if b.blk == nil {
		return
	}
	b.blk.release()
	b.blk = nil
	b.data = nil
	b.owner = false
}
