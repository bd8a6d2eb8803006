package fft_test

import (
	"fmt"

	"github.com/katalvlaran/algokit/fft"
)

// ExampleLinear multiplies two polynomials by convolving their
// coefficient vectors: (1+2x+3x²)(4+5x+6x²) = 4+13x+28x²+27x³+18x⁴.
func ExampleLinear() {
	a := []complex128{1, 2, 3}
	b := []complex128{4, 5, 6}

	product, _ := fft.Linear(a, b)
	for _, c := range product {
		fmt.Printf("%.0f ", real(c))
	}
	fmt.Println()
	// Output:
	// 4 13 28 27 18
}

// ExampleForward transforms a constant signal: all the energy lands in
// the zero-frequency bin.
func ExampleForward() {
	spectrum, _ := fft.Forward([]complex128{1, 1, 1, 1})
	for _, c := range spectrum {
		fmt.Printf("%.0f ", real(c))
	}
	fmt.Println()
	// Output:
	// 4 0 0 0
}
