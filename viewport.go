package gridscroll

// Viewport is the measurement and mutation surface a host exposes to a
// Strategy. The strategy owns the materialized range of an attached viewport:
// nothing else should call SetRenderedRange while attached.
type Viewport interface {
	// DataLength returns the current item count.
	DataLength() int
	// ViewportSize returns the visible extent along the scroll axis.
	ViewportSize() float64
	// MeasureScrollOffset returns the raw scroll offset, header included.
	MeasureScrollOffset() float64
	// RenderedRange returns the range last committed by SetRenderedRange.
	RenderedRange() Range

	SetRenderedRange(r Range)
	SetRenderedContentOffset(offset float64)
	SetTotalContentSize(size float64)

	// ScrollToOffset requests a scroll. The viewport clamps the offset.
	ScrollToOffset(offset float64, behavior ScrollBehavior)
}
