package surface

import (
	"github.com/go-theft-auto/gridscroll"
)

// Smooth scroll tuning. Each Step closes diff*dt*smoothSpeed of the remaining
// distance and snaps once the distance drops under snapThreshold pixels.
const (
	smoothSpeed   = 15.0
	snapThreshold = 0.5
)

// pageFraction is the share of the viewport height moved by PageUp/PageDown.
const pageFraction = 0.8

// Viewport is an in-memory scrollable region that implements
// gridscroll.Viewport. It owns the scroll position, clamps it to the content
// extent reported by the strategy and forwards host events to the strategy.
//
// A Viewport is driven from a single goroutine (the host's event loop),
// like the rest of an immediate-mode frame.
type Viewport struct {
	strategy *gridscroll.Strategy

	dataLength int
	size       float64
	scroll     float64

	target    float64
	animating bool

	total         float64
	rendered      gridscroll.Range
	contentOffset float64

	listeners map[int]func(gridscroll.Range)
	nextID    int
}

var _ gridscroll.Viewport = (*Viewport)(nil)

// NewViewport creates a viewport of the given height holding dataLength items.
func NewViewport(size float64, dataLength int) *Viewport {
	return &Viewport{
		size:       max(0, size),
		dataLength: max(0, dataLength),
	}
}

// Bind attaches s to the viewport. Any previously bound strategy is detached.
func (v *Viewport) Bind(s *gridscroll.Strategy) {
	if v.strategy != nil && v.strategy != s {
		v.strategy.Detach()
	}
	v.strategy = s
	if s != nil {
		s.Attach(v)
	}
}

// Unbind detaches the bound strategy, if any.
func (v *Viewport) Unbind() {
	if v.strategy == nil {
		return
	}
	v.strategy.Detach()
	v.strategy = nil
}

// Strategy returns the bound strategy or nil.
func (v *Viewport) Strategy() *gridscroll.Strategy { return v.strategy }

// OnRangeChange registers fn to run whenever the rendered range changes.
// Hosts use it to schedule a redraw. The returned func removes fn.
func (v *Viewport) OnRangeChange(fn func(gridscroll.Range)) (cancel func()) {
	if fn == nil {
		return func() {}
	}
	if v.listeners == nil {
		v.listeners = make(map[int]func(gridscroll.Range))
	}
	id := v.nextID
	v.nextID++
	v.listeners[id] = fn
	return func() { delete(v.listeners, id) }
}

// gridscroll.Viewport

func (v *Viewport) DataLength() int                 { return v.dataLength }
func (v *Viewport) ViewportSize() float64           { return v.size }
func (v *Viewport) MeasureScrollOffset() float64    { return v.scroll }
func (v *Viewport) RenderedRange() gridscroll.Range { return v.rendered }

func (v *Viewport) SetRenderedRange(r gridscroll.Range) {
	if r == v.rendered {
		return
	}
	v.rendered = r
	for _, fn := range v.listeners {
		fn(r)
	}
}

func (v *Viewport) SetRenderedContentOffset(offset float64) { v.contentOffset = offset }

// SetTotalContentSize stores the scroll extent and re-clamps the position.
// Clamping here does not notify the strategy: it is mid-recomputation and
// reads the clamped offset right after.
func (v *Viewport) SetTotalContentSize(size float64) {
	v.total = max(0, size)
	v.scroll = v.clamp(v.scroll)
	v.target = v.clamp(v.target)
}

// ScrollToOffset jumps to offset or, for ScrollSmooth, starts an animation
// that Step advances.
func (v *Viewport) ScrollToOffset(offset float64, behavior gridscroll.ScrollBehavior) {
	offset = v.clamp(offset)
	if behavior == gridscroll.ScrollSmooth {
		v.target = offset
		v.animating = v.target != v.scroll
		return
	}
	v.animating = false
	v.target = offset
	v.setScroll(offset)
}

// Host events

// ScrollOffset returns the current scroll position.
func (v *Viewport) ScrollOffset() float64 { return v.scroll }

// TotalContentSize returns the last extent reported by the strategy.
func (v *Viewport) TotalContentSize() float64 { return v.total }

// ContentOffset returns the pixel offset of the first rendered item.
func (v *Viewport) ContentOffset() float64 { return v.contentOffset }

// MaxScroll returns the largest valid scroll offset.
func (v *Viewport) MaxScroll() float64 { return max(0, v.total-v.size) }

// Animating reports whether a smooth scroll is in progress.
func (v *Viewport) Animating() bool { return v.animating }

// SetScrollOffset moves to offset immediately, cancelling any animation.
func (v *Viewport) SetScrollOffset(offset float64) {
	v.animating = false
	v.target = v.clamp(offset)
	v.setScroll(v.target)
}

// ScrollBy moves the scroll position by dy pixels.
func (v *Viewport) ScrollBy(dy float64) {
	v.SetScrollOffset(v.scroll + dy)
}

// PageDown scrolls forward by most of a viewport.
func (v *Viewport) PageDown() { v.ScrollBy(v.size * pageFraction) }

// PageUp scrolls back by most of a viewport.
func (v *Viewport) PageUp() { v.ScrollBy(-v.size * pageFraction) }

// Home scrolls to the top.
func (v *Viewport) Home() { v.SetScrollOffset(0) }

// End scrolls to the bottom.
func (v *Viewport) End() { v.SetScrollOffset(v.MaxScroll()) }

// Step advances a smooth scroll by dt seconds. It returns true while the
// animation is still running.
func (v *Viewport) Step(dt float64) bool {
	if !v.animating {
		return false
	}
	diff := v.target - v.scroll
	if diff < snapThreshold && diff > -snapThreshold {
		v.animating = false
		v.setScroll(v.target)
		return false
	}
	step := diff * min(1, dt*smoothSpeed)
	v.setScroll(v.scroll + step)
	return true
}

// SetDataLength changes the item count and notifies the strategy.
func (v *Viewport) SetDataLength(n int) {
	n = max(0, n)
	if n == v.dataLength {
		return
	}
	v.dataLength = n
	if v.strategy != nil {
		v.strategy.OnDataLengthChanged()
	}
}

// Resize changes the viewport height. The scroll position is re-clamped
// and the strategy recomputes as if scrolled.
func (v *Viewport) Resize(size float64) {
	size = max(0, size)
	if size == v.size {
		return
	}
	v.size = size
	v.scroll = v.clamp(v.scroll)
	v.target = v.clamp(v.target)
	if v.strategy != nil {
		v.strategy.OnScrolled()
	}
}

// SetHeaderHeight updates the header height of the bound strategy's layout.
func (v *Viewport) SetHeaderHeight(h float64) error {
	return v.updateLayout(func(l *gridscroll.Layout) { l.HeaderHeight = h })
}

// SetFooterHeight updates the footer height of the bound strategy's layout.
func (v *Viewport) SetFooterHeight(h float64) error {
	return v.updateLayout(func(l *gridscroll.Layout) { l.FooterHeight = h })
}

// SetColumns updates the column count of the bound strategy's layout.
func (v *Viewport) SetColumns(cols int) error {
	return v.updateLayout(func(l *gridscroll.Layout) { l.Columns = cols })
}

func (v *Viewport) updateLayout(edit func(*gridscroll.Layout)) error {
	if v.strategy == nil {
		return nil
	}
	l := v.strategy.Layout()
	before := l
	edit(&l)
	if l == before {
		return nil
	}
	return v.strategy.UpdateConfig(l)
}

func (v *Viewport) setScroll(offset float64) {
	offset = v.clamp(offset)
	if offset == v.scroll {
		return
	}
	v.scroll = offset
	if v.strategy != nil {
		v.strategy.OnScrolled()
	}
}

func (v *Viewport) clamp(offset float64) float64 {
	return min(max(0, offset), v.MaxScroll())
}
