package bitkit

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidAlignment is returned when an alignment is not positive.
	ErrInvalidAlignment = errors.New("alignment must be positive")

	// ErrNegativeValue is returned when an offset, length or value that must
	// be non-negative is negative.
	ErrNegativeValue = errors.New("value must be non-negative")

	// ErrOutOfRange is the sentinel wrapped by every OutOfRangeError.
	ErrOutOfRange = errors.New("index out of range")
)

// Unit names what an OutOfRangeError index counts.
type Unit string

const (
	// UnitBit marks bit indices.
	UnitBit Unit = "bit"
	// UnitByte marks byte indices.
	UnitByte Unit = "byte"
)

// OutOfRangeError indicates an index or range end that lies beyond the
// buffer it addresses. Limit is the number of units the buffer holds.
//
// errors.Is(err, ErrOutOfRange) reports true for every OutOfRangeError.
type OutOfRangeError struct {
	Index int
	Limit int
	Unit  Unit
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s index %d out of range: buffer holds %d %ss", e.Unit, e.Index, e.Limit, e.Unit)
}

func (e *OutOfRangeError) Unwrap() error { return ErrOutOfRange }

func negative(name string, v int) error {
	return fmt.Errorf("%s %d: %w", name, v, ErrNegativeValue)
}

// checkBitRange validates the half-open bit window [begin, begin+length)
// against buf.
func checkBitRange(buf []byte, begin, length int) error {
	if begin < 0 {
		return negative("begin", begin)
	}
	if length < 0 {
		return negative("length", length)
	}
	if limit := len(buf) << 3; begin > limit || length > limit-begin {
		return &OutOfRangeError{Index: rangeEnd(begin, length), Limit: limit, Unit: UnitBit}
	}
	return nil
}

// checkByteRange validates the byte window [offset, offset+length) against buf.
func checkByteRange(buf []byte, offset, length int) error {
	if offset < 0 {
		return negative("byte offset", offset)
	}
	if length < 0 {
		return negative("byte length", length)
	}
	if offset > len(buf) || length > len(buf)-offset {
		return &OutOfRangeError{Index: rangeEnd(offset, length), Limit: len(buf), Unit: UnitByte}
	}
	return nil
}

// rangeEnd returns begin+length for non-negative operands, saturating at
// math.MaxInt.
func rangeEnd(begin, length int) int {
	if length > math.MaxInt-begin {
		return math.MaxInt
	}
	return begin + length
}
