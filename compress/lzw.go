package compress

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// LZW codeword parameters: 12-bit codes, codes 0-255 preassigned to
// single bytes, lzwStop terminates the stream, dictionary growth resumes
// just past it.
const (
	lzwWidth = 12
	lzwStop  = 256
	lzwFirst = 257
	lzwMax   = 1 << lzwWidth
)

// LZWEncode compresses data with 12-bit Lempel-Ziv-Welch coding: the
// longest dictionary prefix of the remaining input is emitted, and that
// prefix plus the next byte joins the dictionary until it fills.
// Complexity: O(n).
func LZWEncode(data []byte) []byte {
	var out bytes.Buffer
	bw := NewBitWriter(&out)

	dict := make(map[string]int, lzwMax)
	for c := 0; c < 256; c++ {
		dict[string([]byte{byte(c)})] = c
	}
	nextCode := lzwFirst

	i := 0
	for i < len(data) {
		// 1) Longest match: grow until the extension is unknown.
		j := i + 1
		code := dict[string(data[i:j])]
		for j < len(data) {
			ext, ok := dict[string(data[i:j+1])]
			if !ok {
				break
			}
			code = ext
			j++
		}

		// 2) Emit the match, learn match+lookahead.
		_ = bw.WriteBits(uint64(code), lzwWidth)
		if j < len(data) && nextCode < lzwMax {
			dict[string(data[i:j+1])] = nextCode
			nextCode++
		}
		i = j
	}

	_ = bw.WriteBits(lzwStop, lzwWidth)
	_ = bw.Flush()

	return out.Bytes()
}

// LZWDecode reverses LZWEncode, growing the mirror dictionary one step
// behind the encoder. The one-step-ahead case — a code referencing the
// entry being defined — resolves to previous + previous[0].
// Complexity: O(output).
func LZWDecode(encoded []byte) ([]byte, error) {
	br := NewBitReader(bytes.NewReader(encoded))

	table := make([]string, lzwFirst, lzwMax)
	for c := 0; c < 256; c++ {
		table[c] = string([]byte{byte(c)})
	}

	var out bytes.Buffer
	prev := ""
	for {
		v, err := br.ReadBits(lzwWidth)
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return nil, fmt.Errorf("%w: missing stop code", ErrCorruptStream)
		}
		if err != nil {
			return nil, err
		}
		code := int(v)
		if code == lzwStop {
			break
		}

		var cur string
		switch {
		case code < len(table):
			cur = table[code]
		case code == len(table) && prev != "":
			cur = prev + prev[:1]
		default:
			return nil, fmt.Errorf("%w: codeword %d ahead of dictionary", ErrCorruptStream, code)
		}

		out.WriteString(cur)
		if prev != "" && len(table) < lzwMax {
			table = append(table, prev+cur[:1])
		}
		prev = cur
	}

	return out.Bytes(), nil
}
