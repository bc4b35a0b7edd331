package numeric

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-buffer/buf"
	"github.com/cwbudde/algo-vecmath"
)

// Spectrum returns the magnitude spectrum of the buffer's float64 view,
// a diagnostic for inspecting numeric data carried in raw bytes. The
// input is zero-padded to the next power of two; the result holds
// fftSize/2+1 bins. The buffer must decode per [Float64s]; an empty
// buffer yields nil.
func Spectrum(b *buf.Buffer) ([]float64, error) {
	xs, err := Float64s(b)
	if err != nil {
		return nil, err
	}
	if len(xs) == 0 {
		return nil, nil
	}

	fftSize := nextPowerOf2(len(xs))

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("numeric: failed to create FFT plan: %w", err)
	}

	in := make([]complex128, fftSize)
	for i, v := range xs {
		in[i] = complex(v, 0)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("numeric: forward FFT failed: %w", err)
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for i := 0; i < bins; i++ {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}

	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)
	return mag, nil
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p *= 2
	}

	return p
}
