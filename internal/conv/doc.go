// Package conv converts between bitmap row indices and Roaring row IDs.
//
// Dense validity bitmaps address rows with Go ints while Roaring bitmaps hold
// uint32 row IDs. The conversions here reject values that do not survive the
// round trip instead of silently truncating them.
package conv
