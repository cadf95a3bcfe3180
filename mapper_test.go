package gridscroll_test

import (
	"testing"

	"github.com/go-theft-auto/gridscroll"
)

func TestIndexToOffset(t *testing.T) {
	tests := map[string]struct {
		index       int
		layout      gridscroll.Layout
		wantAligned int
		wantOffset  float64
	}{
		"second item of a row maps to row start": {
			index:       7,
			layout:      gridLayout(),
			wantAligned: 6,
			wantOffset:  390,
		},
		"first item of a row": {
			index:       6,
			layout:      gridLayout(),
			wantAligned: 6,
			wantOffset:  390,
		},
		"single column": {
			index:       13,
			layout:      listLayout(),
			wantAligned: 13,
			wantOffset:  260,
		},
		"out of range index passes through": {
			index:       1_000_001,
			layout:      gridLayout(),
			wantAligned: 1_000_000,
			wantOffset:  65_000_000,
		},
		"degenerate layout": {
			index:       9,
			layout:      gridscroll.Layout{RowSize: 0, Columns: 3},
			wantAligned: 9,
			wantOffset:  0,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := gridscroll.AlignIndex(tt.index, tt.layout); got != tt.wantAligned {
				t.Errorf("AlignIndex(%d) = %d, want %d", tt.index, got, tt.wantAligned)
			}
			if got := gridscroll.IndexToOffset(tt.index, tt.layout); got != tt.wantOffset {
				t.Errorf("IndexToOffset(%d) = %v, want %v", tt.index, got, tt.wantOffset)
			}
		})
	}
}

func TestOffsetToIndex(t *testing.T) {
	l := gridLayout()
	for _, idx := range []int{0, 2, 6, 40, 998} {
		offset := gridscroll.IndexToOffset(idx, l)
		if got := gridscroll.OffsetToIndex(offset, l); got != idx {
			t.Errorf("OffsetToIndex(IndexToOffset(%d)) = %d", idx, got)
		}
		// Anywhere inside the row maps back to its first item.
		if got := gridscroll.OffsetToIndex(offset+l.RowSize-1, l); got != idx {
			t.Errorf("OffsetToIndex(row %d + %v) = %d", idx, l.RowSize-1, got)
		}
	}

	if got := gridscroll.OffsetToIndex(500, gridscroll.Layout{}); got != 0 {
		t.Errorf("degenerate OffsetToIndex = %d, want 0", got)
	}
}
