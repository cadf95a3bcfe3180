package gridscroll_test

import (
	"testing"

	"github.com/go-theft-auto/gridscroll"
)

func TestContentSize(t *testing.T) {
	tests := map[string]struct {
		dataLength int
		layout     gridscroll.Layout
		want       float64
	}{
		"grid with header and footer": {
			dataLength: 10,
			layout:     gridscroll.Layout{RowSize: 130, Columns: 2, HeaderHeight: 50, FooterHeight: 20},
			want:       720,
		},
		"single column": {
			dataLength: 100,
			layout:     gridscroll.DefaultLayout(),
			want:       2000,
		},
		// 10 items on 3 columns occupy 4 rows (240px) but the extent is
		// extrapolated per item: 10 * 60/3 = 200.
		"partial last row is not rounded up": {
			dataLength: 10,
			layout:     gridscroll.Layout{RowSize: 60, Columns: 3},
			want:       200,
		},
		"empty list keeps header and footer": {
			dataLength: 0,
			layout:     gridscroll.Layout{RowSize: 130, Columns: 2, HeaderHeight: 50, FooterHeight: 20},
			want:       70,
		},
		"degenerate layout has no item extent": {
			dataLength: 10,
			layout:     gridscroll.Layout{RowSize: 130, Columns: 0, HeaderHeight: 5},
			want:       5,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := gridscroll.ContentSize(tt.dataLength, tt.layout)
			if got != tt.want {
				t.Errorf("ContentSize(%d) = %v, want %v", tt.dataLength, got, tt.want)
			}
		})
	}
}
