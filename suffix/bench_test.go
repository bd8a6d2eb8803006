package suffix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/algokit/suffix"
)

func randomText(n int, alphabet byte) string {
	rng := rand.New(rand.NewSource(42))
	b := make([]byte, n)
	for i := range b {
		b[i] = 'a' + byte(rng.Intn(int(alphabet)))
	}

	return string(b)
}

func BenchmarkNew_SmallAlphabet(b *testing.B) {
	text := randomText(1<<14, 2)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		suffix.New(text)
	}
}

func BenchmarkNew_WideAlphabet(b *testing.B) {
	text := randomText(1<<14, 26)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		suffix.New(text)
	}
}

func BenchmarkLongestRepeated(b *testing.B) {
	text := randomText(1<<12, 4)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		suffix.LongestRepeated(text)
	}
}
