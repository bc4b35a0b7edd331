// Package numeric bridges buffers to external numeric array providers
// such as tensor or vector-math libraries. It is an optional adapter:
// the buf core never depends on it, and a provider only has to expose
// four facts about its storage (pointer, element count, element size,
// contiguity) to interoperate.
package numeric

import (
	"errors"
	"unsafe"

	"github.com/cwbudde/algo-buffer/buf"
)

var (
	// ErrNilArray reports a nil array provider.
	ErrNilArray = errors.New("numeric: nil array")

	// ErrNotContiguous reports a provider whose storage is not one
	// contiguous region and therefore cannot be aliased.
	ErrNotContiguous = errors.New("numeric: array storage is not contiguous")

	// ErrInvalidShape reports a provider with a negative element count
	// or a non-positive element size.
	ErrInvalidShape = errors.New("numeric: invalid array shape")

	// ErrBadLength reports a buffer whose length is not a whole number
	// of elements.
	ErrBadLength = errors.New("numeric: buffer length is not a multiple of the element size")

	// ErrMisaligned reports a buffer whose base address does not meet
	// the element type's alignment.
	ErrMisaligned = errors.New("numeric: buffer base address is misaligned")
)

// Array is the capability a numeric array provider exposes for
// zero-copy interop. Data is the address of the first element of a
// contiguous storage region holding Len elements of ElemSize bytes
// each; Contiguous reports whether the region really is contiguous
// (providers with strided or chunked storage return false).
type Array interface {
	Data() unsafe.Pointer
	Len() int
	ElemSize() int
	Contiguous() bool
}

// FromArray returns a non-owning buffer aliasing the array's storage,
// Len()*ElemSize() bytes long. The array must stay alive and unchanged
// in shape for as long as the buffer is in use. Writes through the
// buffer are visible to the array and vice versa.
func FromArray(a Array) (*buf.Buffer, error) {
	if a == nil {
		return nil, ErrNilArray
	}
	if a.Len() < 0 || a.ElemSize() <= 0 {
		return nil, ErrInvalidShape
	}
	if !a.Contiguous() {
		return nil, ErrNotContiguous
	}
	return buf.FromPointer(a.Data(), a.Len()*a.ElemSize())
}

// Float64Array adapts a []float64 as an [Array]. A plain Go slice is
// always contiguous.
type Float64Array []float64

// Data returns the address of the first element, or nil when empty.
func (f Float64Array) Data() unsafe.Pointer {
	if len(f) == 0 {
		return nil
	}
	return unsafe.Pointer(&f[0])
}

// Len returns the element count.
func (f Float64Array) Len() int { return len(f) }

// ElemSize returns the width of a float64 in bytes.
func (f Float64Array) ElemSize() int { return 8 }

// Contiguous always reports true.
func (f Float64Array) Contiguous() bool { return true }

// Float64s reinterprets the buffer's bytes as a []float64 without
// copying, the reverse of [FromArray]. The returned slice aliases the
// buffer's memory. Fails with [ErrBadLength] unless the buffer length
// is a multiple of 8, and with [ErrMisaligned] unless the base address
// is 8-byte aligned.
func Float64s(b *buf.Buffer) ([]float64, error) {
	p := b.Bytes()
	if len(p)%8 != 0 {
		return nil, ErrBadLength
	}
	if len(p) == 0 {
		return nil, nil
	}
	base := unsafe.Pointer(&p[0])
	if uintptr(base)%unsafe.Alignof(float64(0)) != 0 {
		return nil, ErrMisaligned
	}
	return unsafe.Slice((*float64)(base), len(p)/8), nil
}
