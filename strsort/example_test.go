package strsort_test

import (
	"fmt"

	"github.com/katalvlaran/algokit/strsort"
)

// ExampleLSD sorts fixed-width account codes in two linear passes.
func ExampleLSD() {
	codes := []string{"b7", "a9", "b2", "a1"}
	_ = strsort.LSD(codes, 2)
	fmt.Println(codes)
	// Output:
	// [a1 a9 b2 b7]
}

// ExampleQuick3Way handles keys with long shared prefixes.
func ExampleQuick3Way() {
	words := []string{"seashore", "sea", "seashell", "she", "sells"}
	strsort.Quick3Way(words)
	fmt.Println(words)
	// Output:
	// [sea seashell seashore sells she]
}
