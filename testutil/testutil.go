package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Bytes returns n uniformly random bytes.
func (r *RNG) Bytes(n int) []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(r.rand.Intn(256))
	}
	return b
}

// Bools returns n booleans, each true with probability density.
func (r *RNG) Bools(n int, density float64) []bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]bool, n)
	for i := range out {
		out[i] = r.rand.Float64() < density
	}
	return out
}

// Range returns a random half-open range [lhs, rhs) with 0 <= lhs <= rhs <= n.
func (r *RNG) Range(n int) (lhs, rhs int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, b := r.rand.Intn(n+1), r.rand.Intn(n+1)
	if a > b {
		a, b = b, a
	}
	return a, b
}

// NaiveCount counts the set bits of the bit range [lhs, rhs) of buf one bit
// at a time. It is the reference the optimized counters are checked against.
func NaiveCount(buf []byte, lhs, rhs int) int {
	cnt := 0
	for i := lhs; i < rhs; i++ {
		cnt += int(buf[i>>3]>>(i%8)) & 1
	}
	return cnt
}

// Unpack returns the first n bits of buf as booleans.
func Unpack(buf []byte, n int) []bool {
	out := make([]bool, n)
	for i := range out {
		out[i] = buf[i>>3]&(1<<(i%8)) != 0
	}
	return out
}
