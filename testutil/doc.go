// Package testutil provides testing utilities for bitkit.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating reproducible random bitmaps and
// computing reference results bit by bit.
//
// # Random Bitmaps
//
//	rng := testutil.NewRNG(seed)
//	bools := rng.Bools(1000, 0.3) // ~30% true
//	bm := rng.Bytes(64)           // uniform random bytes
//
// # Ground Truth
//
//	want := testutil.NaiveCount(bm, lhs, rhs)
//	bools := testutil.Unpack(bm, n)
package testutil
