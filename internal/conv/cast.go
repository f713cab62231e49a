package conv

import (
	"fmt"
	"math"
)

// MaxRows is the number of distinct row IDs a 32-bit Roaring bitmap holds.
const MaxRows = math.MaxUint32 + 1

// RowID converts a row index to a Roaring row ID.
func RowID(row int) (uint32, error) {
	if row < 0 {
		return 0, fmt.Errorf("row index %d cannot be converted to row id (negative)", row)
	}
	// On 64-bit systems, int can exceed uint32 max; on 32-bit, this is always false
	if uint64(row) > math.MaxUint32 {
		return 0, fmt.Errorf("row index %d cannot be converted to row id (too large)", row)
	}
	return uint32(row), nil
}

// RowIndex converts a Roaring row ID to a row index.
func RowIndex(id uint32) (int, error) {
	if uint64(id) > uint64(math.MaxInt) {
		return 0, fmt.Errorf("row id %d cannot be converted to row index (too large)", id)
	}
	return int(id), nil
}

// RowCount validates that a window of n rows is addressable by row IDs.
func RowCount(n int) error {
	if n < 0 {
		return fmt.Errorf("row count %d is negative", n)
	}
	if uint64(n) > MaxRows {
		return fmt.Errorf("row count %d exceeds %d addressable row ids", n, uint64(MaxRows))
	}
	return nil
}
