package gridscroll

import "math"

// RangeInput is the viewport state read for one recomputation.
type RangeInput struct {
	Current      Range   // Range committed by the previous recomputation
	ViewportSize float64 // Visible extent along the scroll axis
	DataLength   int     // Total number of items
	ScrollOffset float64 // Raw scroll offset, header region included
	Layout       Layout
}

// RangeResult is the outcome of one recomputation.
type RangeResult struct {
	Range             Range   // New materialized range
	ContentOffset     float64 // Pixel offset of the first materialized item
	FirstVisibleIndex int     // Row-aligned index of the first visible item
}

// ComputeRange decides which items to materialize for the given viewport state.
//
// The scroll offset is shifted by the header height so that index 0 begins
// where the header ends. When the list shrank below the previous range, the
// first visible index is pulled back so the tail of the new list fills the
// viewport. Then at most one side of the range is grown: the start side when
// fewer than MinBufferPx pixels are materialized above the viewport, otherwise
// the end side when fewer than MinBufferPx are materialized below it. Growth
// targets MaxBufferPx. Both ends are finally aligned to whole rows.
//
// ComputeRange is pure: identical inputs always produce identical results.
func ComputeRange(in RangeInput) RangeResult {
	l := in.Layout
	dataLength := in.DataLength
	if dataLength < 0 {
		dataLength = 0
	}

	if l.Degenerate() {
		// Items have no height: everything fits, nothing to window.
		return RangeResult{Range: Range{Start: 0, End: dataLength}}
	}

	cols := l.cols()
	rowHeight := l.RowHeight()
	total := float64(dataLength)
	viewportSize := math.Max(in.ViewportSize, 0)

	offset := in.ScrollOffset - l.HeaderHeight
	first := alignDown(offset/rowHeight, cols)

	start := float64(in.Current.Start)
	end := float64(in.Current.End)

	// List got shorter while scrolled near its tail.
	if end > total {
		maxVisible := math.Ceil(viewportSize / rowHeight)
		clamped := math.Max(0, math.Min(first, total-maxVisible))
		if clamped != first {
			first = clamped
			offset = first * rowHeight
			start = math.Floor(first)
		}
		end = math.Max(0, math.Min(total, start+maxVisible))
	}

	startBuffer := offset - start*rowHeight
	if startBuffer < l.MinBufferPx && start != 0 {
		expandStart := math.Ceil((l.MaxBufferPx - startBuffer) / rowHeight)
		start = math.Max(0, start-expandStart)
		end = math.Min(total, math.Ceil(first+(viewportSize+l.MinBufferPx)/rowHeight))
	} else {
		endBuffer := end*rowHeight - (offset + viewportSize)
		if endBuffer < l.MinBufferPx && end != total {
			expandEnd := math.Ceil((l.MaxBufferPx - endBuffer) / rowHeight)
			if expandEnd > 0 {
				end = math.Min(total, end+expandEnd)
				start = math.Max(0, math.Floor(first-l.MinBufferPx/rowHeight))
			}
		}
	}

	// Whole rows only, so a grid row never straddles the materialized boundary.
	start = alignDown(start, cols)
	end = alignUp(end, cols)

	// Keep the range inside the data; a partial final row ends at dataLength.
	end = clampf(end, 0, total)
	start = alignDown(clampf(start, 0, end), cols)

	visible := alignDown(math.Max(0, math.Floor(first)), cols)

	return RangeResult{
		Range:             Range{Start: int(start), End: int(end)},
		ContentOffset:     rowHeight * start,
		FirstVisibleIndex: int(visible),
	}
}
