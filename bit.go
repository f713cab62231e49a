package bitkit

// GetBool reports whether bit (0-7) of b is set.
func GetBool(b byte, bit uint) bool {
	return b&(1<<bit) != 0
}

// GetBit returns bit (0-7) of b as 0 or 1.
func GetBit(b byte, bit uint) int {
	return int(b>>bit) & 1
}

// BoolAt adapts GetBool to the transform signature taken by IterateBits.
func BoolAt(_ int, b byte, bit uint) bool { return GetBool(b, bit) }

// BitAt adapts GetBit to the transform signature taken by IterateBits.
func BitAt(_ int, b byte, bit uint) int { return GetBit(b, bit) }

// SetBool sets bit index of buf when value is true and clears it otherwise.
// It returns the resulting value of the bit. buf is left untouched when
// index is out of range.
func SetBool(buf []byte, index int, value bool) (bool, error) {
	if index < 0 || index>>3 >= len(buf) {
		return false, &OutOfRangeError{Index: index, Limit: len(buf) << 3, Unit: UnitBit}
	}
	mask := byte(1) << (index % 8)
	if value {
		buf[index>>3] |= mask
	} else {
		buf[index>>3] &^= mask
	}
	return buf[index>>3]&mask != 0, nil
}
