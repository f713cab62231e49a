package bitkit

import "fmt"

// Padding returns the smallest p >= 0 such that (value+p) is a multiple of
// alignment.
func Padding(value, alignment int) (int, error) {
	if alignment <= 0 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidAlignment, alignment)
	}
	if value < 0 {
		return 0, negative("value", value)
	}
	if r := value % alignment; r != 0 {
		return alignment - r, nil
	}
	return 0, nil
}

// Align rounds value up to the nearest multiple of alignment.
func Align(value, alignment int) (int, error) {
	p, err := Padding(value, alignment)
	if err != nil {
		return 0, err
	}
	return value + p, nil
}
