package bitkit

import (
	"bytes"
	"errors"
	"math"
	"math/bits"
	"testing"

	"github.com/hupe1980/bitkit/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPopcntUint32(t *testing.T) {
	assert.Equal(t, 0, PopcntUint32(0))
	assert.Equal(t, 32, PopcntUint32(0xFFFFFFFF))
	assert.Equal(t, 1, PopcntUint32(1))
	assert.Equal(t, 1, PopcntUint32(0x80000000))
	assert.Equal(t, 16, PopcntUint32(0x55555555))

	rng := testutil.NewRNG(4711)
	for i := 0; i < 1000; i++ {
		w := uint32(rng.Intn(1 << 31))
		w |= uint32(rng.Intn(2)) << 31
		assert.Equal(t, bits.OnesCount32(w), PopcntUint32(w))
	}
}

func TestPopcntArray(t *testing.T) {
	for n := 0; n <= 11; n++ {
		buf := bytes.Repeat([]byte{0xFF}, n)
		assert.Equal(t, 8*n, PopcntArray(buf), "n=%d", n)
	}

	rng := testutil.NewRNG(4711)
	buf := rng.Bytes(103)
	assert.Equal(t, testutil.NaiveCount(buf, 0, len(buf)*8), PopcntArray(buf))
}

func TestPopcntArrayRange(t *testing.T) {
	rng := testutil.NewRNG(4711)
	buf := rng.Bytes(37)

	for off := 0; off <= len(buf); off++ {
		for n := 0; off+n <= len(buf); n++ {
			got, err := PopcntArrayRange(buf, off, n)
			require.NoError(t, err)
			assert.Equal(t, testutil.NaiveCount(buf, off*8, (off+n)*8), got, "off=%d n=%d", off, n)
		}
	}
}

func TestPopcntArrayRange_DoesNotReadPastRange(t *testing.T) {
	buf := []byte{0x00, 0x01, 0x03, 0xFF, 0xFF}

	got, err := PopcntArrayRange(buf, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, got)
}

func TestPopcntArrayRange_Invalid(t *testing.T) {
	buf := make([]byte, 4)

	_, err := PopcntArrayRange(buf, 2, 3)
	assert.ErrorIs(t, err, ErrOutOfRange)

	var oor *OutOfRangeError
	require.True(t, errors.As(err, &oor))
	assert.Equal(t, UnitByte, oor.Unit)
	assert.Equal(t, 5, oor.Index)
	assert.Equal(t, 4, oor.Limit)

	_, err = PopcntArrayRange(buf, -1, 1)
	assert.ErrorIs(t, err, ErrNegativeValue)

	_, err = PopcntArrayRange(buf, 0, -1)
	assert.ErrorIs(t, err, ErrNegativeValue)
}

func TestPopcntArrayRange_ExtremeWindow(t *testing.T) {
	buf := []byte{0xFF, 0xFF}

	for _, w := range [][2]int{{math.MaxInt, 1}, {1, math.MaxInt}, {math.MaxInt, math.MaxInt}, {3, 0}} {
		n, err := PopcntArrayRange(buf, w[0], w[1])
		assert.ErrorIs(t, err, ErrOutOfRange, "offset=%d length=%d", w[0], w[1])
		assert.Zero(t, n)
	}

	_, err := PopcntArrayRange(buf, math.MinInt, 1)
	assert.ErrorIs(t, err, ErrNegativeValue)
}

func TestPopcntArrayFrom(t *testing.T) {
	buf := []byte{0xFF, 0x0F, 0x01}

	for off, want := range []int{13, 5, 1, 0} {
		got, err := PopcntArrayFrom(buf, off)
		require.NoError(t, err)
		assert.Equal(t, want, got, "off=%d", off)
	}

	_, err := PopcntArrayFrom(buf, 4)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = PopcntArrayFrom(buf, math.MaxInt)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = PopcntArrayFrom(buf, -1)
	assert.ErrorIs(t, err, ErrNegativeValue)
}

func TestPopcntBitRange(t *testing.T) {
	buf := []byte{0b10110000}

	got, err := PopcntBitRange(buf, 4, 8)
	require.NoError(t, err)
	assert.Equal(t, 3, got)

	tests := []struct {
		name     string
		buf      []byte
		lhs, rhs int
		want     int
	}{
		{"Single bit set", []byte{0b100}, 2, 3, 1},
		{"Single bit clear", []byte{0b100}, 1, 2, 0},
		{"Straddles boundary under 8 bits", []byte{0xC0, 0x03}, 6, 10, 4},
		{"Exactly 8 unaligned", []byte{0xF0, 0x0F}, 4, 12, 8},
		{"Aligned bytes", []byte{0xFF, 0x0F, 0xF0}, 8, 24, 8},
		{"Head middle tail", []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, 3, 45, 42},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := PopcntBitRange(tt.buf, tt.lhs, tt.rhs)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPopcntBitRange_EmptyOrInverted(t *testing.T) {
	buf := []byte{0xFF}

	for _, r := range [][2]int{{0, 0}, {5, 5}, {8, 2}, {100, 3}, {-4, -9}, {1000, 1000}} {
		got, err := PopcntBitRange(buf, r[0], r[1])
		require.NoError(t, err)
		assert.Zero(t, got)
	}
}

func TestPopcntBitRange_OutOfRange(t *testing.T) {
	buf := []byte{0xFF, 0xFF}

	_, err := PopcntBitRange(buf, 0, 17)
	assert.ErrorIs(t, err, ErrOutOfRange)

	_, err = PopcntBitRange(buf, -1, 4)
	assert.ErrorIs(t, err, ErrNegativeValue)
}

func TestPopcntBitRange_ExtremeBounds(t *testing.T) {
	buf := []byte{0xFF, 0xFF}

	tests := []struct {
		name     string
		lhs, rhs int
		want     error
	}{
		{"MinInt lhs", math.MinInt, 4, ErrNegativeValue},
		{"MinInt to MaxInt", math.MinInt, math.MaxInt, ErrNegativeValue},
		{"MaxInt rhs", 0, math.MaxInt, ErrOutOfRange},
		{"Both near MaxInt", math.MaxInt - 8, math.MaxInt, ErrOutOfRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := PopcntBitRange(buf, tt.lhs, tt.rhs)
			assert.ErrorIs(t, err, tt.want)
			assert.Zero(t, n)
		})
	}

	// Inverted ranges stay permissive even at the extremes.
	n, err := PopcntBitRange(buf, math.MaxInt, math.MinInt)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestPopcntBitRange_MatchesNaive(t *testing.T) {
	rng := testutil.NewRNG(4711)
	buf := rng.Bytes(29)
	n := len(buf) * 8

	for lhs := 0; lhs <= n; lhs++ {
		for rhs := lhs; rhs <= n; rhs++ {
			got, err := PopcntBitRange(buf, lhs, rhs)
			require.NoError(t, err)
			require.Equal(t, testutil.NaiveCount(buf, lhs, rhs), got, "[%d, %d)", lhs, rhs)
		}
	}
}

func TestPopcntBitRange_Additive(t *testing.T) {
	rng := testutil.NewRNG(4711)
	buf := rng.Bytes(64)
	n := len(buf) * 8

	for i := 0; i < 500; i++ {
		lhs, rhs := rng.Range(n)
		m := lhs + rng.Intn(rhs-lhs+1)

		whole, err := PopcntBitRange(buf, lhs, rhs)
		require.NoError(t, err)
		left, err := PopcntBitRange(buf, lhs, m)
		require.NoError(t, err)
		right, err := PopcntBitRange(buf, m, rhs)
		require.NoError(t, err)

		assert.Equal(t, whole, left+right, "lhs=%d m=%d rhs=%d", lhs, m, rhs)
	}
}

func BenchmarkPopcntBitRange(b *testing.B) {
	rng := testutil.NewRNG(4711)
	buf := rng.Bytes(1 << 16)
	lhs, rhs := 3, len(buf)*8-5

	b.ReportAllocs()
	b.SetBytes(int64(len(buf)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = PopcntBitRange(buf, lhs, rhs)
	}
}

func BenchmarkPopcntArray(b *testing.B) {
	rng := testutil.NewRNG(4711)
	buf := rng.Bytes(1 << 16)

	b.ReportAllocs()
	b.SetBytes(int64(len(buf)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = PopcntArray(buf)
	}
}
