package bitkit

import "encoding/binary"

// PopcntUint32 returns the number of set bits in word.
//
// It uses the parallel bit count: pairwise sums with 0x55555555, nibble sums
// with 0x33333333, byte sums with 0x0F0F0F0F, then a multiply that gathers
// the four byte counts into the top byte.
func PopcntUint32(word uint32) int {
	i := word - ((word >> 1) & 0x55555555)
	i = (i & 0x33333333) + ((i >> 2) & 0x33333333)
	return int((((i + (i >> 4)) & 0x0F0F0F0F) * 0x01010101) >> 24)
}

// PopcntArray returns the number of set bits across all of buf.
func PopcntArray(buf []byte) int {
	return popcntBytes(buf)
}

// PopcntArrayFrom returns the number of set bits in buf from byteOffset to
// the end of buf.
func PopcntArrayFrom(buf []byte, byteOffset int) (int, error) {
	if byteOffset < 0 {
		return 0, negative("byte offset", byteOffset)
	}
	if byteOffset > len(buf) {
		return 0, &OutOfRangeError{Index: byteOffset, Limit: len(buf), Unit: UnitByte}
	}
	return popcntBytes(buf[byteOffset:]), nil
}

// PopcntArrayRange returns the number of set bits in the byteLength bytes of
// buf starting at byteOffset.
func PopcntArrayRange(buf []byte, byteOffset, byteLength int) (int, error) {
	if err := checkByteRange(buf, byteOffset, byteLength); err != nil {
		return 0, err
	}
	return popcntBytes(buf[byteOffset : byteOffset+byteLength]), nil
}

// popcntBytes counts 4-byte words first, then a 2-byte word, then the last
// byte. Byte order is irrelevant to the count.
func popcntBytes(b []byte) int {
	cnt := 0
	for len(b) >= 4 {
		cnt += PopcntUint32(binary.BigEndian.Uint32(b))
		b = b[4:]
	}
	if len(b) >= 2 {
		cnt += PopcntUint32(uint32(binary.BigEndian.Uint16(b)))
		b = b[2:]
	}
	if len(b) == 1 {
		cnt += PopcntUint32(uint32(b[0]))
	}
	return cnt
}

// PopcntBitRange returns the number of set bits in the half-open bit range
// [lhs, rhs) of buf. An empty or inverted range counts 0 and is not an error.
func PopcntBitRange(buf []byte, lhs, rhs int) (int, error) {
	if rhs <= lhs {
		return 0, nil
	}
	if lhs < 0 {
		return 0, negative("lhs", lhs)
	}
	if err := checkBitRange(buf, lhs, rhs-lhs); err != nil {
		return 0, err
	}
	return popcntBitRange(buf, lhs, rhs), nil
}

// popcntBitRange assumes [lhs, rhs) lies inside buf.
func popcntBitRange(buf []byte, lhs, rhs int) int {
	if rhs <= lhs {
		return 0
	}

	// Fewer than 8 bits, possibly straddling a byte boundary.
	if rhs-lhs < 8 {
		it := newBitIterator[int](buf, lhs, rhs-lhs, BitAt)
		sum := 0
		for it.Next() {
			sum += it.Value()
		}
		return sum
	}

	rhsInside := rhs >> 3 << 3
	lhsInside := lhs
	if r := lhs % 8; r != 0 {
		lhsInside += 8 - r
	}

	return popcntBitRange(buf, lhs, lhsInside) +
		popcntBitRange(buf, rhsInside, rhs) +
		popcntBytes(buf[lhsInside>>3:rhsInside>>3])
}
