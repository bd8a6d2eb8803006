package fft

import (
	"errors"
	"math"
	"math/bits"
	"math/cmplx"
)

// Sentinel errors for transform inputs.
var (
	// ErrNotPowerOfTwo is returned when a transform length is not 2^k.
	ErrNotPowerOfTwo = errors.New("fft: length must be a power of two")

	// ErrLengthMismatch is returned by Circular when operand lengths
	// differ.
	ErrLengthMismatch = errors.New("fft: operand lengths must match")
)

// Forward computes the discrete Fourier transform of x. The input length
// must be a power of two (zero and one are trivially valid); x is not
// modified.
// Complexity: O(n log n) time, O(n) memory.
func Forward(x []complex128) ([]complex128, error) {
	return transform(x, false)
}

// Inverse computes the inverse transform, scaled by 1/n so that
// Inverse(Forward(x)) == x up to rounding.
// Complexity: O(n log n).
func Inverse(x []complex128) ([]complex128, error) {
	out, err := transform(x, true)
	if err != nil {
		return nil, err
	}
	scale := complex(1/float64(len(out)), 0)
	for i := range out {
		out[i] *= scale
	}

	return out, nil
}

// transform runs the in-place iterative Cooley-Tukey butterfly over a
// copy of x: bit-reversal permutation, then log n doubling stages.
func transform(x []complex128, invert bool) ([]complex128, error) {
	n := len(x)
	if n&(n-1) != 0 {
		return nil, ErrNotPowerOfTwo
	}
	out := append([]complex128(nil), x...)
	if n < 2 {
		return out, nil
	}

	// 1) Bit-reversal permutation puts each element at its butterfly slot.
	shift := 64 - uint(bits.TrailingZeros(uint(n)))
	for i := 1; i < n; i++ {
		j := int(bits.Reverse64(uint64(i)) >> shift)
		if i < j {
			out[i], out[j] = out[j], out[i]
		}
	}

	// 2) Butterfly stages of width 2, 4, ..., n.
	for size := 2; size <= n; size <<= 1 {
		angle := 2 * math.Pi / float64(size)
		if invert {
			angle = -angle
		}
		wStep := cmplx.Exp(complex(0, angle))
		for start := 0; start < n; start += size {
			w := complex(1, 0)
			for k := 0; k < size/2; k++ {
				a := out[start+k]
				b := out[start+k+size/2] * w
				out[start+k] = a + b
				out[start+k+size/2] = a - b
				w *= wStep
			}
		}
	}

	return out, nil
}

// Circular computes the cyclic convolution of equal-length power-of-two
// sequences via the transform pair: pointwise products of spectra.
// Complexity: O(n log n).
func Circular(a, b []complex128) ([]complex128, error) {
	if len(a) != len(b) {
		return nil, ErrLengthMismatch
	}
	fa, err := Forward(a)
	if err != nil {
		return nil, err
	}
	fb, err := Forward(b)
	if err != nil {
		return nil, err
	}
	for i := range fa {
		fa[i] *= fb[i]
	}

	return Inverse(fa)
}

// Linear computes the acyclic convolution of a and b (length
// len(a)+len(b)-1) by zero-padding both to the next power of two at
// least that long, convolving circularly, and trimming.
// Complexity: O((n+m) log(n+m)).
func Linear(a, b []complex128) ([]complex128, error) {
	if len(a) == 0 || len(b) == 0 {
		return nil, nil
	}
	outLen := len(a) + len(b) - 1
	size := 1
	for size < outLen {
		size <<= 1
	}

	pa := make([]complex128, size)
	copy(pa, a)
	pb := make([]complex128, size)
	copy(pb, b)

	full, err := Circular(pa, pb)
	if err != nil {
		return nil, err
	}

	return full[:outLen], nil
}
