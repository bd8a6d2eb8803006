// Package compress implements three classical lossless codecs over a
// shared bit-stream layer.
//
//   - RLE — bit-level run-length coding with 8-bit run counts; wins on
//     long homogeneous runs (bitmaps), loses on noisy data.
//   - Huffman — optimal prefix codes from symbol frequencies; the code
//     trie travels in the output header, so decoding needs no side
//     channel.
//   - LZW — dictionary coding with 12-bit codewords; the decoder rebuilds
//     the dictionary on the fly, including the one-step-ahead corner case.
//
// Every codec satisfies Decode(Encode(x)) == x for arbitrary byte input.
// BitReader and BitWriter expose the underlying MSB-first bit streams for
// callers with custom formats.
package compress
