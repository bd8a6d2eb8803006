// Package fft implements the iterative radix-2 fast Fourier transform
// over []complex128, its inverse, and the convolution operations built on
// the transform pair.
//
// Lengths must be powers of two (ErrNotPowerOfTwo otherwise); Linear
// convolution pads internally, Circular requires equal power-of-two
// operands.
//
// Complexity: O(n log n) per transform, O(n) extra memory; inputs are
// never mutated.
package fft
