package gridscroll

import "math"

// AlignIndex returns the index of the first item in the row that holds index.
func AlignIndex(index int, l Layout) int {
	return int(alignDown(float64(index), l.cols()))
}

// IndexToOffset returns the scroll offset, relative to the start of the
// items (after the header), at which the row holding index begins.
// Out-of-range indices are not clamped.
func IndexToOffset(index int, l Layout) float64 {
	return float64(AlignIndex(index, l)) * l.RowHeight()
}

// OffsetToIndex returns the row-aligned index of the item whose row contains
// the given offset. offset is relative to the start of the items.
// Returns 0 for a degenerate layout.
func OffsetToIndex(offset float64, l Layout) int {
	rowHeight := l.RowHeight()
	if rowHeight <= 0 {
		return 0
	}
	return int(alignDown(math.Floor(offset/rowHeight), l.cols()))
}
