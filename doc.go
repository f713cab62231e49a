// Package bitkit provides bit-level primitives for columnar validity bitmaps.
//
// A validity bitmap holds one bit per row: a set bit marks a valid (non-null
// or selected) row, a clear bit a null one. Bit i lives in byte i>>3 at
// position i%8, least-significant bit first:
//
//	byte 0            byte 1
//	┌───────────────┐ ┌────────────────┐
//	│7 6 5 4 3 2 1 0│ │15 14 ... 9 8   │
//	└───────────────┘ └────────────────┘
//
// # Alignment
//
//	Padding(13, 8) // 3
//	Align(13, 8)   // 16
//
// # Building and Reading Bitmaps
//
//	bm := bitkit.PackBoolSlice([]bool{true, false, true}) // 8 bytes, bm[0] == 0b101
//	ok, _ := bitkit.SetBool(bm, 1, true)
//
//	seq, _ := bitkit.IterateBits(bm, 0, 3, bitkit.BoolAt)
//	for v := range seq {
//	    // true, true, true
//	}
//
// Packed bitmaps are always padded to a multiple of 8 bytes.
//
// # Population Count
//
// PopcntBitRange counts set bits in an arbitrary bit range. Unaligned head
// and tail bits are counted one by one; the byte-aligned middle goes through
// PopcntArrayRange, which consumes 4-byte words, then 2-byte words, then
// single bytes:
//
//	valid, _ := bitkit.ValidCount(bm, offset, length)
//	nulls, _ := bitkit.NullCount(bm, offset, length)
//
// # Errors
//
// Functions fail fast on invalid input: a non-positive alignment returns
// ErrInvalidAlignment, negative offsets or lengths ErrNegativeValue, and
// windows beyond the buffer an *OutOfRangeError (errors.Is ErrOutOfRange).
// An empty or inverted bit range is not an error and counts 0.
//
// All functions are safe for concurrent use on buffers nobody is writing to.
package bitkit
