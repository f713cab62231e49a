package bitkit

// ValidCount returns the number of valid rows in the window of length rows
// starting at row offset of a validity bitmap. A nil or empty bitmap marks
// every row valid.
func ValidCount(validity []byte, offset, length int) (int, error) {
	if length < 0 {
		return 0, negative("length", length)
	}
	if len(validity) == 0 {
		return length, nil
	}
	if err := checkBitRange(validity, offset, length); err != nil {
		return 0, err
	}
	return popcntBitRange(validity, offset, offset+length), nil
}

// NullCount returns the number of null rows in the window of length rows
// starting at row offset of a validity bitmap.
func NullCount(validity []byte, offset, length int) (int, error) {
	valid, err := ValidCount(validity, offset, length)
	if err != nil {
		return 0, err
	}
	return length - valid, nil
}

// TruncateBitmap returns the length bits of bitmap starting at bit offset as
// a zero-based bitmap padded to a multiple of 8 bytes.
//
// When offset is 0 and bitmap is already padded the input is returned as is,
// bits past length included. Otherwise the window is re-packed into a new
// buffer whose bits past length are zero.
func TruncateBitmap(bitmap []byte, offset, length int) ([]byte, error) {
	if err := checkBitRange(bitmap, offset, length); err != nil {
		return nil, err
	}
	if offset == 0 && len(bitmap) > 0 && len(bitmap)%packAlignment == 0 {
		return bitmap, nil
	}
	seq, err := IterateBits[bool](bitmap, offset, length, BoolAt)
	if err != nil {
		return nil, err
	}
	return PackBools(seq), nil
}
