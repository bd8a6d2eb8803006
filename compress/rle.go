package compress

import (
	"bytes"
	"errors"
	"io"
)

// ErrCorruptStream is returned when an encoded stream cannot be decoded.
var ErrCorruptStream = errors.New("compress: corrupt stream")

// maxRun is the largest run expressible in one 8-bit count.
const maxRun = 255

// RLEEncode run-length codes data at the bit level: alternating 8-bit run
// counts, starting with a run of zero bits. Runs longer than 255 are
// split with an interleaved zero-length run of the opposite bit.
// Complexity: O(bits).
func RLEEncode(data []byte) []byte {
	var out bytes.Buffer
	bw := NewBitWriter(&out)

	run := 0
	cur := false // runs start with zeros
	for _, b := range data {
		for i := 7; i >= 0; i-- {
			bit := b>>i&1 == 1
			switch {
			case bit == cur:
				if run == maxRun {
					_ = bw.WriteByte(maxRun)
					_ = bw.WriteByte(0) // empty run of the opposite bit
					run = 0
				}
				run++
			default:
				_ = bw.WriteByte(byte(run))
				cur = bit
				run = 1
			}
		}
	}
	_ = bw.WriteByte(byte(run))
	_ = bw.Flush()

	return out.Bytes()
}

// RLEDecode reverses RLEEncode. Returns ErrCorruptStream when the decoded
// bit count is not a whole number of bytes.
// Complexity: O(bits).
func RLEDecode(encoded []byte) ([]byte, error) {
	br := NewBitReader(bytes.NewReader(encoded))
	var out bytes.Buffer
	bw := NewBitWriter(&out)

	bits := 0
	cur := false
	for {
		count, err := br.ReadByte()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		for i := 0; i < int(count); i++ {
			_ = bw.WriteBit(cur)
		}
		bits += int(count)
		cur = !cur
	}
	if bits%8 != 0 {
		return nil, ErrCorruptStream
	}

	return out.Bytes(), nil
}
