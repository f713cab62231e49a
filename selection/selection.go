package selection

import (
	"context"
	"errors"
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/bitkit"
	"github.com/hupe1980/bitkit/internal/conv"
)

// ErrRowOutOfRange is returned when a row ID does not fit the target window.
var ErrRowOutOfRange = errors.New("row id out of range")

// FromValidity returns the IDs of the valid rows among the length rows of
// validity starting at bit offset. Row IDs are relative to offset.
func FromValidity(ctx context.Context, validity []byte, offset, length int, opts ...Option) (*roaring.Bitmap, error) {
	o := applyOptions(opts)

	rb, err := fromValidity(ctx, validity, offset, length)
	if err != nil {
		o.logger.LogConversion(ctx, "from_validity", length, 0, err)
		return nil, err
	}

	o.logger.LogConversion(ctx, "from_validity", length, int(rb.GetCardinality()), nil)
	return rb, nil
}

func fromValidity(ctx context.Context, validity []byte, offset, length int) (*roaring.Bitmap, error) {
	if err := conv.RowCount(length); err != nil {
		return nil, fmt.Errorf("selection: %w", err)
	}

	it, err := bitkit.NewBitIterator[bool](validity, offset, length, bitkit.BoolAt)
	if err != nil {
		return nil, fmt.Errorf("selection: %w", err)
	}

	rb := roaring.New()
	ids := make([]uint32, 0, 64)
	for row := 0; it.Next(); row++ {
		if row%cancelCheckRows == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		if !it.Value() {
			continue
		}
		id, err := conv.RowID(row)
		if err != nil {
			return nil, fmt.Errorf("selection: %w", err)
		}
		ids = append(ids, id)
		if len(ids) == cap(ids) {
			rb.AddMany(ids)
			ids = ids[:0]
		}
	}
	rb.AddMany(ids)

	return rb, nil
}

// ToValidity packs rows into a validity bitmap of length rows. The result
// has the layout of bitkit.PackBools: LSB-first, zero tail, padded to a
// multiple of 8 bytes.
func ToValidity(ctx context.Context, rows *roaring.Bitmap, length int, opts ...Option) ([]byte, error) {
	o := applyOptions(opts)

	buf, valid, err := toValidity(ctx, rows, length)
	o.logger.LogConversion(ctx, "to_validity", length, valid, err)
	if err != nil {
		return nil, err
	}
	return buf, nil
}

func toValidity(ctx context.Context, rows *roaring.Bitmap, length int) ([]byte, int, error) {
	if err := conv.RowCount(length); err != nil {
		return nil, 0, fmt.Errorf("selection: %w", err)
	}

	size, err := bitkit.Align(max((length+7)>>3, 1), 8)
	if err != nil {
		return nil, 0, err
	}
	buf := make([]byte, size)
	if rows == nil {
		return buf, 0, nil
	}

	valid := 0
	it := rows.Iterator()
	for it.HasNext() {
		if valid%cancelCheckRows == 0 {
			if err := ctx.Err(); err != nil {
				return nil, 0, err
			}
		}

		id := it.Next()
		row, err := conv.RowIndex(id)
		if err != nil {
			return nil, 0, fmt.Errorf("selection: %w", err)
		}
		if row >= length {
			return nil, 0, fmt.Errorf("selection: row %d, window of %d rows: %w", id, length, ErrRowOutOfRange)
		}
		if _, err := bitkit.SetBool(buf, row, true); err != nil {
			return nil, 0, fmt.Errorf("selection: %w", err)
		}
		valid++
	}

	return buf, valid, nil
}
