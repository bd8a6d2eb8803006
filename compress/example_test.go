package compress_test

import (
	"bytes"
	"fmt"

	"github.com/katalvlaran/algokit/compress"
)

// ExampleHuffmanEncode shows the size win on skewed text and the exact
// round trip.
func ExampleHuffmanEncode() {
	data := []byte("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaabbbbbbbbbbcccde")

	encoded := compress.HuffmanEncode(data)
	decoded, _ := compress.HuffmanDecode(encoded)

	fmt.Println("round trip ok:", bytes.Equal(data, decoded))
	fmt.Println("smaller:", len(encoded) < len(data))
	// Output:
	// round trip ok: true
	// smaller: true
}

// ExampleLZWEncode compresses repetitive input.
func ExampleLZWEncode() {
	data := []byte("tobeornottobeortobeornot")

	encoded := compress.LZWEncode(data)
	decoded, _ := compress.LZWDecode(encoded)

	fmt.Println(string(decoded))
	// Output:
	// tobeornottobeortobeornot
}
