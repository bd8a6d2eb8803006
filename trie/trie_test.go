// Package trie_test verifies symbol-table behavior and the prefix
// operations for both the R-way trie and the ternary search trie, using the
// classic shells corpus from the prefix-matching literature.
package trie_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algokit/trie"
)

// shells is the standard demo corpus: short keys with heavy shared prefixes.
var shells = []string{"she", "sells", "sea", "shells", "by", "the", "shore"}

// prefixTable is the surface shared by Trie and TST (Put differs in error
// signature, so it is adapted per variant below).
type prefixTable interface {
	Get(string) (int, bool)
	Contains(string) bool
	Delete(string) bool
	Len() int
	Keys() []string
	KeysWithPrefix(string) []string
	KeysThatMatch(string) []string
	LongestPrefixOf(string) string
}

func variants(t *testing.T) map[string]struct {
	table prefixTable
	put   func(string, int)
} {
	t.Helper()
	rt := trie.NewTrie[int]()
	tst := trie.NewTST[int]()

	return map[string]struct {
		table prefixTable
		put   func(string, int)
	}{
		"Trie": {table: rt, put: func(k string, v int) { rt.Put(k, v) }},
		"TST": {table: tst, put: func(k string, v int) {
			require.NoError(t, tst.Put(k, v))
		}},
	}
}

func TestGetAfterPut(t *testing.T) {
	for name, v := range variants(t) {
		t.Run(name, func(t *testing.T) {
			for i, k := range shells {
				v.put(k, i)
			}
			assert.Equal(t, len(shells), v.table.Len())

			for i, k := range shells {
				got, ok := v.table.Get(k)
				require.True(t, ok, "key %q", k)
				assert.Equal(t, i, got)
			}

			_, ok := v.table.Get("s")
			assert.False(t, ok, "prefix of a key is not a key")
			_, ok = v.table.Get("shellsort")
			assert.False(t, ok)

			// Replacement keeps Len stable.
			v.put("sea", 99)
			got, _ := v.table.Get("sea")
			assert.Equal(t, 99, got)
			assert.Equal(t, len(shells), v.table.Len())
		})
	}
}

func TestKeysSorted(t *testing.T) {
	for name, v := range variants(t) {
		t.Run(name, func(t *testing.T) {
			for i, k := range shells {
				v.put(k, i)
			}
			want := append([]string(nil), shells...)
			sort.Strings(want)
			assert.Equal(t, want, v.table.Keys())
		})
	}
}

func TestKeysWithPrefix(t *testing.T) {
	for name, v := range variants(t) {
		t.Run(name, func(t *testing.T) {
			for i, k := range shells {
				v.put(k, i)
			}
			assert.Equal(t, []string{"she", "shells", "shore"}, v.table.KeysWithPrefix("sh"))
			assert.Equal(t, []string{"she", "shells"}, v.table.KeysWithPrefix("she"))
			assert.Empty(t, v.table.KeysWithPrefix("shellsort"))
			assert.Empty(t, v.table.KeysWithPrefix("z"))
		})
	}
}

func TestKeysThatMatch(t *testing.T) {
	for name, v := range variants(t) {
		t.Run(name, func(t *testing.T) {
			for i, k := range shells {
				v.put(k, i)
			}
			assert.Equal(t, []string{"she", "the"}, v.table.KeysThatMatch(".he"))
			assert.Equal(t, []string{"shells"}, v.table.KeysThatMatch("s....."))
			assert.Empty(t, v.table.KeysThatMatch("......."))
		})
	}
}

func TestLongestPrefixOf(t *testing.T) {
	for name, v := range variants(t) {
		t.Run(name, func(t *testing.T) {
			for i, k := range shells {
				v.put(k, i)
			}
			assert.Equal(t, "shells", v.table.LongestPrefixOf("shellsort"))
			assert.Equal(t, "she", v.table.LongestPrefixOf("shell"))
			assert.Equal(t, "", v.table.LongestPrefixOf("quicksort"))
			assert.Equal(t, "sea", v.table.LongestPrefixOf("sea"))
		})
	}
}

func TestDelete(t *testing.T) {
	for name, v := range variants(t) {
		t.Run(name, func(t *testing.T) {
			for i, k := range shells {
				v.put(k, i)
			}

			assert.False(t, v.table.Delete("absent"))
			require.True(t, v.table.Delete("shells"))
			assert.False(t, v.table.Contains("shells"))
			assert.True(t, v.table.Contains("she"), "deleting a key must not remove its prefix key")
			assert.Equal(t, len(shells)-1, v.table.Len())

			// Drain everything; the structure must empty out cleanly.
			for _, k := range []string{"she", "sells", "sea", "by", "the", "shore"} {
				require.True(t, v.table.Delete(k), "key %q", k)
			}
			assert.Equal(t, 0, v.table.Len())
			assert.Empty(t, v.table.Keys())
		})
	}
}

func TestRandomizedAgainstMapOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(17))
	alphabet := []byte("abc")
	randKey := func() string {
		n := 1 + rng.Intn(6)
		b := make([]byte, n)
		for i := range b {
			b[i] = alphabet[rng.Intn(len(alphabet))]
		}

		return string(b)
	}

	for name, v := range variants(t) {
		t.Run(name, func(t *testing.T) {
			oracle := make(map[string]int)
			for i := 0; i < 4000; i++ {
				k := randKey()
				if rng.Intn(3) == 0 {
					_, want := oracle[k]
					assert.Equal(t, want, v.table.Delete(k))
					delete(oracle, k)
				} else {
					v.put(k, i)
					oracle[k] = i
				}
			}

			require.Equal(t, len(oracle), v.table.Len())
			want := make([]string, 0, len(oracle))
			for k := range oracle {
				want = append(want, k)
			}
			sort.Strings(want)
			assert.Equal(t, want, v.table.Keys())
		})
	}
}

func TestTrie_EmptyKeySupported(t *testing.T) {
	rt := trie.NewTrie[string]()
	rt.Put("", "root")
	got, ok := rt.Get("")
	require.True(t, ok)
	assert.Equal(t, "root", got)
	assert.True(t, rt.Delete(""))
	assert.False(t, rt.Contains(""))
}

func TestTST_EmptyKeyRejected(t *testing.T) {
	tst := trie.NewTST[int]()
	require.ErrorIs(t, tst.Put("", 1), trie.ErrEmptyKey)
	_, ok := tst.Get("")
	assert.False(t, ok)
}
