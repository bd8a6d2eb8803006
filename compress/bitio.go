package compress

import (
	"errors"
	"io"
)

// ErrBitOverflow is returned when a requested bit width exceeds 64 or the
// value does not fit the width.
var ErrBitOverflow = errors.New("compress: bit width out of range")

// BitWriter packs bits MSB-first into an io.Writer, one byte at a time.
type BitWriter struct {
	w   io.Writer
	buf byte
	n   int // bits currently buffered, 0..7
}

// NewBitWriter wraps w.
func NewBitWriter(w io.Writer) *BitWriter {
	return &BitWriter{w: w}
}

// WriteBit appends a single bit.
func (bw *BitWriter) WriteBit(bit bool) error {
	bw.buf <<= 1
	if bit {
		bw.buf |= 1
	}
	bw.n++
	if bw.n == 8 {
		return bw.flushByte()
	}

	return nil
}

// WriteBits appends the low `width` bits of v, most significant first.
func (bw *BitWriter) WriteBits(v uint64, width int) error {
	if width < 0 || width > 64 {
		return ErrBitOverflow
	}
	if width < 64 && v>>width != 0 {
		return ErrBitOverflow
	}
	for i := width - 1; i >= 0; i-- {
		if err := bw.WriteBit(v>>i&1 == 1); err != nil {
			return err
		}
	}

	return nil
}

// WriteByte appends 8 bits.
func (bw *BitWriter) WriteByte(b byte) error {
	return bw.WriteBits(uint64(b), 8)
}

// Flush zero-pads the current byte to a boundary and writes it out.
// A no-op when already aligned.
func (bw *BitWriter) Flush() error {
	if bw.n == 0 {
		return nil
	}
	bw.buf <<= 8 - bw.n
	bw.n = 8

	return bw.flushByte()
}

func (bw *BitWriter) flushByte() error {
	_, err := bw.w.Write([]byte{bw.buf})
	bw.buf = 0
	bw.n = 0

	return err
}

// BitReader unpacks bits MSB-first from an io.Reader.
type BitReader struct {
	r   io.Reader
	buf byte
	n   int // bits remaining in buf
	one [1]byte
}

// NewBitReader wraps r.
func NewBitReader(r io.Reader) *BitReader {
	return &BitReader{r: r}
}

// ReadBit consumes one bit; io.EOF once the stream is exhausted.
func (br *BitReader) ReadBit() (bool, error) {
	if br.n == 0 {
		if _, err := io.ReadFull(br.r, br.one[:]); err != nil {
			return false, err
		}
		br.buf = br.one[0]
		br.n = 8
	}
	br.n--

	return br.buf>>br.n&1 == 1, nil
}

// ReadBits consumes `width` bits into the low end of the result.
func (br *BitReader) ReadBits(width int) (uint64, error) {
	if width < 0 || width > 64 {
		return 0, ErrBitOverflow
	}
	var v uint64
	for i := 0; i < width; i++ {
		bit, err := br.ReadBit()
		if err != nil {
			return 0, err
		}
		v <<= 1
		if bit {
			v |= 1
		}
	}

	return v, nil
}

// ReadByte consumes 8 bits.
func (br *BitReader) ReadByte() (byte, error) {
	v, err := br.ReadBits(8)

	return byte(v), err
}
