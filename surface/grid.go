package surface

import (
	"github.com/go-theft-auto/gridscroll"
)

// Rect is an axis-aligned rectangle in viewport pixels.
type Rect struct {
	X, Y float64 // top-left
	W, H float64
}

// Intersects reports whether r and o overlap.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X &&
		r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

// Cell is the placement of one materialized item.
type Cell struct {
	Index int
	Row   int
	Col   int
	Rect  Rect
}

// Frame is the geometry of one viewport frame in viewport coordinates:
// y=0 is the top edge of the visible area.
type Frame struct {
	Bounds Rect
	Header Rect
	Footer Rect
	Cells  []Cell
	Thumb  Rect // zero when everything fits
}

// Grid lays materialized items out in rows of Layout.Columns cells.
type Grid struct {
	Width          float64
	Gap            float64
	ScrollbarWidth float64
}

const minThumbHeight = 20

// Frame computes the placement of the rendered range of v under l.
func (g Grid) Frame(v *Viewport, l gridscroll.Layout) Frame {
	scroll := v.ScrollOffset()
	size := v.ViewportSize()
	total := v.TotalContentSize()
	contentWidth := max(0, g.Width-g.ScrollbarWidth)

	f := Frame{
		Bounds: Rect{W: g.Width, H: size},
		Header: Rect{Y: -scroll, W: contentWidth, H: l.HeaderHeight},
		Footer: Rect{Y: total - l.FooterHeight - scroll, W: contentWidth, H: l.FooterHeight},
	}

	cols := max(1, l.Columns)
	cellW := max(0, (contentWidth-g.Gap*float64(cols-1))/float64(cols))
	cellH := max(0, l.RowSize-g.Gap)

	r := v.RenderedRange()
	top := l.HeaderHeight + v.ContentOffset() - scroll
	f.Cells = make([]Cell, 0, r.Len())
	for i := r.Start; i < r.End; i++ {
		row := (i - r.Start) / cols
		col := i % cols
		f.Cells = append(f.Cells, Cell{
			Index: i,
			Row:   i / cols,
			Col:   col,
			Rect: Rect{
				X: float64(col) * (cellW + g.Gap),
				Y: top + float64(row)*l.RowSize,
				W: cellW,
				H: cellH,
			},
		})
	}

	if g.ScrollbarWidth > 0 && total > size && size > 0 {
		thumbH := max(minThumbHeight, size*size/total)
		thumbY := 0.0
		if maxScroll := total - size; maxScroll > 0 {
			thumbY = scroll / maxScroll * (size - thumbH)
		}
		f.Thumb = Rect{X: g.Width - g.ScrollbarWidth, Y: thumbY, W: g.ScrollbarWidth, H: thumbH}
	}
	return f
}

// Visible returns the cells that intersect the visible area.
func (f Frame) Visible() []Cell {
	out := make([]Cell, 0, len(f.Cells))
	for _, c := range f.Cells {
		if c.Rect.Intersects(f.Bounds) {
			out = append(out, c)
		}
	}
	return out
}

// Palette colors a painted frame. Colors are packed with RGBA.
type Palette struct {
	Background uint32
	Header     uint32
	Footer     uint32
	Cell       uint32
	CellAlt    uint32
	Highlight  uint32
	Scrollbar  uint32
}

// DefaultPalette is a dark theme.
func DefaultPalette() Palette {
	return Palette{
		Background: RGBA(24, 24, 28, 255),
		Header:     RGBA(52, 72, 112, 255),
		Footer:     RGBA(52, 52, 60, 255),
		Cell:       RGBA(70, 70, 82, 255),
		CellAlt:    RGBA(82, 82, 96, 255),
		Highlight:  RGBA(200, 140, 60, 255),
		Scrollbar:  RGBA(120, 120, 130, 200),
	}
}

// Paint appends the frame to dl, clipped to its bounds. Cells of the row at
// highlight are drawn with the highlight color; pass -1 to disable.
func (f Frame) Paint(dl *DrawList, p Palette, highlight int) {
	b := f.Bounds
	dl.PushClipRect(float32(b.X), float32(b.Y), float32(b.X+b.W), float32(b.Y+b.H))
	defer dl.PopClipRect()

	dl.AddRect(b, p.Background)
	for _, c := range f.Cells {
		if !c.Rect.Intersects(b) {
			continue
		}
		color := p.Cell
		if c.Row%2 == 1 {
			color = p.CellAlt
		}
		if highlight >= 0 && c.Index == highlight {
			color = p.Highlight
		}
		dl.AddRect(c.Rect, color)
	}
	if f.Header.Intersects(b) {
		dl.AddRect(f.Header, p.Header)
	}
	if f.Footer.Intersects(b) {
		dl.AddRect(f.Footer, p.Footer)
	}
	dl.AddRect(f.Thumb, p.Scrollbar)
}
