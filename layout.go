package gridscroll

// Default layout values, matching a single-column list of 20px rows.
const (
	DefaultRowSize     = 20
	DefaultColumns     = 1
	DefaultMinBufferPx = 100
	DefaultMaxBufferPx = 200
)

// Layout describes the fixed geometry of a virtualized grid.
//
// RowSize is the pixel height of one full grid row. Columns items share a row,
// so each item accounts for RowSize/Columns pixels of scroll extent.
// HeaderHeight and FooterHeight are non-virtualized regions before and after
// the items that still consume scroll space.
type Layout struct {
	RowSize      float64 `yaml:"row_size" json:"row_size"`
	Columns      int     `yaml:"columns" json:"columns"`
	HeaderHeight float64 `yaml:"header_height" json:"header_height"`
	FooterHeight float64 `yaml:"footer_height" json:"footer_height"`
	MinBufferPx  float64 `yaml:"min_buffer_px" json:"min_buffer_px"`
	MaxBufferPx  float64 `yaml:"max_buffer_px" json:"max_buffer_px"`
}

// DefaultLayout returns a single-column layout with 20px rows and a
// 100px/200px prefetch buffer.
func DefaultLayout() Layout {
	return Layout{
		RowSize:     DefaultRowSize,
		Columns:     DefaultColumns,
		MinBufferPx: DefaultMinBufferPx,
		MaxBufferPx: DefaultMaxBufferPx,
	}
}

// RowHeight returns the per-item share of a row's height (RowSize / Columns).
// Returns 0 for a degenerate layout.
func (l Layout) RowHeight() float64 {
	if l.Degenerate() {
		return 0
	}
	return l.RowSize / float64(l.Columns)
}

// Degenerate reports whether the layout cannot place items on rows
// (zero row size or zero columns). Such layouts materialize every item.
func (l Layout) Degenerate() bool {
	return l.RowSize <= 0 || l.Columns <= 0
}

// cols returns the column count used for row alignment (never below 1).
func (l Layout) cols() int {
	if l.Columns < 1 {
		return 1
	}
	return l.Columns
}

// Validate checks the layout and returns a *ConfigurationError for the first
// offending field.
func (l Layout) Validate() error {
	negatives := []struct {
		field string
		value float64
	}{
		{"rowSize", l.RowSize},
		{"cols", float64(l.Columns)},
		{"offsetHeight", l.HeaderHeight},
		{"footerHeight", l.FooterHeight},
		{"minBufferPx", l.MinBufferPx},
	}
	for _, n := range negatives {
		if n.value < 0 || !finite(n.value) {
			return &ConfigurationError{Field: n.field, Value: n.value, Reason: ErrNegativeLayout}
		}
	}
	if l.MaxBufferPx < l.MinBufferPx || !finite(l.MaxBufferPx) {
		return &ConfigurationError{Field: "maxBufferPx", Value: l.MaxBufferPx, Reason: ErrInvalidBuffer}
	}
	return nil
}
