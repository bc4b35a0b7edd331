package numeric

import (
	"github.com/cwbudde/algo-buffer/buf"
	"github.com/cwbudde/algo-vecmath"
)

// Vector operations treat buffers as float64 element arrays and
// dispatch to SIMD-optimized implementations when available. Operands
// must decode per [Float64s] and hold the same element count; operands
// are validated before any element is written.

// Add accumulates src into dst element-wise: dst[i] += src[i].
func Add(dst, src *buf.Buffer) error {
	d, s, err := pair(dst, src)
	if err != nil {
		return err
	}
	vecmath.AddBlockInPlace(d, s)
	return nil
}

// Mul writes the element-wise product of a and b into dst.
func Mul(dst, a, b *buf.Buffer) error {
	d, x, err := pair(dst, a)
	if err != nil {
		return err
	}
	y, err := Float64s(b)
	if err != nil {
		return err
	}
	if len(y) != len(d) {
		return ErrBadLength
	}
	vecmath.MulBlock(d, x, y)
	return nil
}

// Scale writes src scaled by k into dst: dst[i] = src[i] * k.
func Scale(dst, src *buf.Buffer, k float64) error {
	d, s, err := pair(dst, src)
	if err != nil {
		return err
	}
	vecmath.ScaleBlock(d, s, k)
	return nil
}

func pair(dst, src *buf.Buffer) (d, s []float64, err error) {
	d, err = Float64s(dst)
	if err != nil {
		return nil, nil, err
	}
	s, err = Float64s(src)
	if err != nil {
		return nil, nil, err
	}
	if len(d) != len(s) {
		return nil, nil, ErrBadLength
	}
	return d, s, nil
}
