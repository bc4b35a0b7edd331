package buf

import (
	"sync/atomic"

	"github.com/cwbudde/algo-buffer/alloc"
)

// block is one allocator-backed allocation, shared by the owning Buffer
// and every view derived from it. The reference count guarantees the
// allocator sees exactly one Release per allocation no matter how many
// views were taken.
type block struct {
	data  []byte
	refs  atomic.Int32
	alloc alloc.Allocator
}

func newBlock(data []byte, a alloc.Allocator) *block {
	blk := &block{data: data, alloc: a}
	blk.refs.Store(1)
	return blk
}

func (blk *block) retain() {
	blk.refs.Add(1)
}

func (blk *block) release() {
	if blk.refs.Add(-1) == 0 {
		blk.alloc.Release(blk.data)
		blk.data = nil
	}
}
