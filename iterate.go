package bitkit

import "iter"

// BitIterator walks a window of a bitmap in ascending bit order.
//
// Each underlying byte is fetched once and then consumed bit by bit, so a
// run of contiguous bits inside one byte costs a single load. An iterator
// is single use and must not outlive mutations of its buffer.
type BitIterator[T any] struct {
	buf []byte
	get func(index int, b byte, bit uint) T

	byteIndex int
	bit       uint
	current   byte
	loaded    bool

	pos    int
	length int
	value  T
}

// NewBitIterator returns an iterator over the length bits of buf starting
// at bit begin. A zero length yields an empty iterator whatever begin is.
//
// get receives the position within this iteration (starting at 0), the byte
// holding the bit and the bit's position inside that byte.
func NewBitIterator[T any](buf []byte, begin, length int, get func(index int, b byte, bit uint) T) (*BitIterator[T], error) {
	if length == 0 {
		return &BitIterator[T]{get: get}, nil
	}
	if err := checkBitRange(buf, begin, length); err != nil {
		return nil, err
	}
	return newBitIterator(buf, begin, length, get), nil
}

// newBitIterator skips validation; [begin, begin+length) must lie inside buf.
func newBitIterator[T any](buf []byte, begin, length int, get func(index int, b byte, bit uint) T) *BitIterator[T] {
	return &BitIterator[T]{
		buf:       buf,
		get:       get,
		byteIndex: begin >> 3,
		bit:       uint(begin % 8),
		length:    length,
	}
}

// Next advances to the next bit and reports whether one was available.
func (it *BitIterator[T]) Next() bool {
	if it.pos >= it.length {
		return false
	}
	if !it.loaded {
		it.current = it.buf[it.byteIndex]
		it.byteIndex++
		it.loaded = true
	}

	it.value = it.get(it.pos, it.current, it.bit)
	it.pos++

	if it.bit++; it.bit == 8 {
		it.bit = 0
		it.loaded = false
	}
	return true
}

// Value returns the transform result for the bit reached by the last Next.
func (it *BitIterator[T]) Value() T { return it.value }

// Pos returns the number of bits consumed so far.
func (it *BitIterator[T]) Pos() int { return it.pos }

// Len returns the total number of bits the iterator covers.
func (it *BitIterator[T]) Len() int { return it.length }

// IterateBits returns a lazy sequence of get applied to the length bits of
// buf starting at bit begin.
//
// The sequence is single use: once consumed (fully or partially) a second
// range over it yields only the bits not yet produced.
func IterateBits[T any](buf []byte, begin, length int, get func(index int, b byte, bit uint) T) (iter.Seq[T], error) {
	it, err := NewBitIterator(buf, begin, length, get)
	if err != nil {
		return nil, err
	}
	return func(yield func(T) bool) {
		for it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}, nil
}
