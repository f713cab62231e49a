// Package selection converts between dense validity bitmaps and Roaring
// row-ID sets.
//
// Columnar buffers carry validity as packed LSB-first bitmaps (see bitkit),
// while filters and indexes prefer compressed sets of row IDs. FromValidity
// and ToValidity move a window of rows between the two:
//
//	rows, err := selection.FromValidity(ctx, validity, offset, length)
//	validity, err := selection.ToValidity(ctx, rows, length)
//
// Row i of the window is bit offset+i of the validity bitmap and row ID i of
// the Roaring bitmap.
package selection
