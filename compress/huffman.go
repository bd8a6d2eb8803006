package compress

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/katalvlaran/algokit/pq"
)

// huffNode is one trie node; leaves carry the symbol.
type huffNode struct {
	sym         byte
	freq        int
	left, right *huffNode
}

func (n *huffNode) isLeaf() bool { return n.left == nil && n.right == nil }

// HuffmanEncode compresses data with an optimal prefix code built from
// its symbol frequencies. Layout: the code trie in preorder (1+symbol for
// leaves, 0 for internal nodes), a 32-bit symbol count, then the coded
// symbols. Empty input encodes to a bare zero count.
// Complexity: O(n + 256·log 256).
func HuffmanEncode(data []byte) []byte {
	var out bytes.Buffer
	bw := NewBitWriter(&out)

	if len(data) == 0 {
		_ = bw.WriteBits(0, 32)
		_ = bw.Flush()

		return out.Bytes()
	}

	// 1) Frequencies → trie via repeated merging of the two lightest
	//    subtrees.
	var freq [256]int
	for _, b := range data {
		freq[b]++
	}
	root := buildHuffTrie(freq)

	// 2) Codes from the trie, then header and payload.
	codes := make(map[byte][]bool, 256)
	assignCodes(root, nil, codes)

	writeTrie(bw, root)
	_ = bw.WriteBits(uint64(len(data)), 32)
	for _, b := range data {
		for _, bit := range codes[b] {
			_ = bw.WriteBit(bit)
		}
	}
	_ = bw.Flush()

	return out.Bytes()
}

// HuffmanDecode reverses HuffmanEncode.
// Complexity: O(output bits).
func HuffmanDecode(encoded []byte) ([]byte, error) {
	br := NewBitReader(bytes.NewReader(encoded))

	// Empty payload: a stream holding only the zero count.
	if len(encoded) == 4 && encoded[0]|encoded[1]|encoded[2]|encoded[3] == 0 {
		return []byte{}, nil
	}

	root, err := readTrie(br, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: trie: %s", ErrCorruptStream, err)
	}
	count, err := br.ReadBits(32)
	if err != nil {
		return nil, fmt.Errorf("%w: symbol count: %s", ErrCorruptStream, err)
	}

	out := make([]byte, 0, count)
	for i := uint64(0); i < count; i++ {
		n := root
		for !n.isLeaf() {
			bit, berr := br.ReadBit()
			if berr != nil {
				return nil, fmt.Errorf("%w: payload: %s", ErrCorruptStream, berr)
			}
			if bit {
				n = n.right
			} else {
				n = n.left
			}
		}
		out = append(out, n.sym)
	}

	return out, nil
}

// buildHuffTrie merges the two lowest-frequency subtrees until one root
// remains, using the indexed heap keyed by node id.
func buildHuffTrie(freq [256]int) *huffNode {
	nodes := make([]*huffNode, 0, 511)
	heap := pq.NewIndexedMinPQ[int, int](256)
	for sym, f := range freq {
		if f > 0 {
			nodes = append(nodes, &huffNode{sym: byte(sym), freq: f})
			_ = heap.Insert(len(nodes)-1, f)
		}
	}

	for heap.Len() > 1 {
		i, _, _ := heap.Pop()
		j, _, _ := heap.Pop()
		merged := &huffNode{
			freq:  nodes[i].freq + nodes[j].freq,
			left:  nodes[i],
			right: nodes[j],
		}
		nodes = append(nodes, merged)
		_ = heap.Insert(len(nodes)-1, merged.freq)
	}
	last, _, _ := heap.Pop()

	return nodes[last]
}

// assignCodes walks the trie collecting the path bits per leaf. A
// single-leaf trie yields the empty code; the decoder then emits the
// symbol count times without consuming payload bits.
func assignCodes(n *huffNode, prefix []bool, codes map[byte][]bool) {
	if n.isLeaf() {
		codes[n.sym] = append([]bool(nil), prefix...)

		return
	}
	assignCodes(n.left, append(prefix, false), codes)
	assignCodes(n.right, append(prefix, true), codes)
}

// writeTrie serializes the trie in preorder: 1+symbol at leaves, 0 at
// internal nodes.
func writeTrie(bw *BitWriter, n *huffNode) {
	if n.isLeaf() {
		_ = bw.WriteBit(true)
		_ = bw.WriteByte(n.sym)

		return
	}
	_ = bw.WriteBit(false)
	writeTrie(bw, n.left)
	writeTrie(bw, n.right)
}

// readTrie rebuilds the preorder serialization; depth guards against
// malformed streams recursing forever.
func readTrie(br *BitReader, depth int) (*huffNode, error) {
	if depth > 256 {
		return nil, errors.New("trie deeper than the alphabet allows")
	}
	leaf, err := br.ReadBit()
	if err != nil {
		return nil, err
	}
	if leaf {
		sym, serr := br.ReadByte()
		if serr != nil {
			return nil, serr
		}

		return &huffNode{sym: sym}, nil
	}
	left, err := readTrie(br, depth+1)
	if err != nil {
		return nil, err
	}
	right, err := readTrie(br, depth+1)
	if err != nil {
		return nil, err
	}

	return &huffNode{left: left, right: right}, nil
}
