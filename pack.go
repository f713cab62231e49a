package bitkit

import (
	"iter"
	"slices"
)

// packAlignment is the byte multiple every packed bitmap is padded to.
const packAlignment = 8

// PackBools packs values into an LSB-first bitmap: bit i is set iff the
// i-th value is true.
//
// Unused bits of the last byte are zero and the result is zero-padded to a
// multiple of 8 bytes. An empty sequence still produces one byte, so the
// result is never shorter than 8 bytes.
func PackBools(values iter.Seq[bool]) []byte {
	var (
		out  []byte
		cur  byte
		bit  uint
		full int
	)
	for v := range values {
		if v {
			cur |= 1 << bit
		}
		if bit++; bit == 8 {
			out = append(out, cur)
			full++
			cur, bit = 0, 0
		}
	}
	if full == 0 || bit > 0 {
		out = append(out, cur)
	}
	if r := len(out) % packAlignment; r != 0 {
		out = append(out, make([]byte, packAlignment-r)...)
	}
	return out
}

// PackBoolSlice is PackBools over a slice.
func PackBoolSlice(values []bool) []byte {
	return PackBools(slices.Values(values))
}
