package gridscroll

import (
	"sync"

	"go.uber.org/zap"
)

// work is a bit-set of pending recomputation steps.
type work uint8

const (
	workContentSize work = 1 << iota
	workRange
)

// lifecycle is the attachment state of a Strategy.
type lifecycle int

const (
	unattached lifecycle = iota
	attached
	detached
)

// Strategy keeps a Viewport's materialized range in step with its scroll
// position, data length and layout.
//
// A Strategy serves one scrollable region. Recomputations never interleave:
// a request arriving while one is in flight (for example from a viewport
// callback) is queued and drained before the in-flight call returns.
// After Detach every method is a silent no-op.
type Strategy struct {
	mu       sync.Mutex
	layout   Layout
	viewport Viewport
	state    lifecycle
	running  bool
	pending  work

	notifier *IndexNotifier
	logger   *zap.Logger
}

// New creates an unattached strategy. The initial layout is DefaultLayout
// adjusted by opts; an invalid layout yields a *ConfigurationError.
func New(opts ...Option) (*Strategy, error) {
	o := applyOptions(opts)
	l := layoutFrom(o)
	if err := l.Validate(); err != nil {
		return nil, err
	}
	lg := GetOpt(o, OptLogger)
	if lg == nil {
		lg = logger
	}
	return &Strategy{
		layout:   l,
		notifier: NewIndexNotifier(),
		logger:   lg,
	}, nil
}

// Layout returns the active layout.
func (s *Strategy) Layout() Layout {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.layout
}

// Attached reports whether a viewport is currently attached.
func (s *Strategy) Attached() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == attached
}

// Attach binds the strategy to vp and establishes the initial content size
// and range. Attaching again replaces the viewport. Ignored after Detach.
func (s *Strategy) Attach(vp Viewport) {
	if vp == nil {
		return
	}
	s.mu.Lock()
	if s.state == detached {
		s.mu.Unlock()
		return
	}
	if s.state == attached && s.viewport != vp {
		s.logger.Warn("strategy re-attached to a different viewport")
	}
	s.viewport = vp
	s.state = attached
	s.mu.Unlock()

	s.request(workContentSize | workRange)
}

// Detach releases the viewport and closes the change notifier for good.
func (s *Strategy) Detach() {
	s.mu.Lock()
	if s.state == detached {
		s.mu.Unlock()
		return
	}
	s.state = detached
	s.viewport = nil
	s.pending = 0
	s.mu.Unlock()

	s.notifier.Close()
}

// OnScrolled recomputes the rendered range after the viewport scrolled.
func (s *Strategy) OnScrolled() {
	s.request(workRange)
}

// OnDataLengthChanged recomputes the content size and rendered range after
// the item count changed.
func (s *Strategy) OnDataLengthChanged() {
	s.request(workContentSize | workRange)
}

// UpdateConfig validates and installs a new layout, then recomputes the
// content size and rendered range. An invalid layout is rejected with a
// *ConfigurationError and the previous layout stays active. After Detach the
// update is ignored and nil is returned.
func (s *Strategy) UpdateConfig(l Layout) error {
	s.mu.Lock()
	if s.state == detached {
		s.mu.Unlock()
		return nil
	}
	if err := l.Validate(); err != nil {
		s.mu.Unlock()
		s.logger.Warn("layout update rejected", zap.Error(err))
		return err
	}
	s.layout = l
	s.mu.Unlock()

	s.request(workContentSize | workRange)
	return nil
}

// ScrollToIndex asks the viewport to scroll to the row holding index.
// The index is not bounds-checked; the viewport clamps the offset.
func (s *Strategy) ScrollToIndex(index int, behavior ScrollBehavior) {
	s.mu.Lock()
	vp, l := s.viewport, s.layout
	s.mu.Unlock()
	if vp == nil {
		return
	}
	offset := IndexToOffset(index, l)
	s.logger.Debug("scroll to index",
		zap.Int("index", index),
		zap.Int("aligned", AlignIndex(index, l)),
		zap.Float64("offset", offset),
		zap.Stringer("behavior", behavior))
	vp.ScrollToOffset(offset, behavior)
}

// Subscribe registers fn for first-visible-index changes.
// See IndexNotifier.Subscribe.
func (s *Strategy) Subscribe(fn func(int)) (cancel func()) {
	return s.notifier.Subscribe(fn)
}

// Changes returns a channel of first-visible-index changes, closed on Detach.
// See IndexNotifier.Changes.
func (s *Strategy) Changes() (<-chan int, func()) {
	return s.notifier.Changes()
}

// FirstVisibleIndex returns the last published first visible index.
func (s *Strategy) FirstVisibleIndex() (int, bool) {
	return s.notifier.Last()
}

// request queues w and, unless a recomputation is already running, drains
// the queue on the calling goroutine.
func (s *Strategy) request(w work) {
	s.mu.Lock()
	if s.state != attached {
		s.mu.Unlock()
		return
	}
	s.pending |= w
	if s.running {
		s.mu.Unlock()
		return
	}
	s.running = true
	for s.pending != 0 && s.state == attached {
		next := s.pending
		s.pending = 0
		vp, l := s.viewport, s.layout
		s.mu.Unlock()

		s.recompute(vp, l, next)

		s.mu.Lock()
	}
	s.running = false
	s.mu.Unlock()
}

// recompute runs the requested steps: content size first, then the range.
func (s *Strategy) recompute(vp Viewport, l Layout, w work) {
	dataLength := vp.DataLength()
	if w&workContentSize != 0 {
		size := ContentSize(dataLength, l)
		vp.SetTotalContentSize(size)
		s.logger.Debug("content size",
			zap.Int("dataLength", dataLength),
			zap.Float64("size", size))
	}
	if w&workRange == 0 {
		return
	}

	res := ComputeRange(RangeInput{
		Current:      vp.RenderedRange(),
		ViewportSize: vp.ViewportSize(),
		DataLength:   dataLength,
		ScrollOffset: vp.MeasureScrollOffset(),
		Layout:       l,
	})
	vp.SetRenderedRange(res.Range)
	vp.SetRenderedContentOffset(res.ContentOffset)
	s.logger.Debug("rendered range",
		zap.Int("start", res.Range.Start),
		zap.Int("end", res.Range.End),
		zap.Float64("contentOffset", res.ContentOffset),
		zap.Int("firstVisible", res.FirstVisibleIndex))
	s.notifier.Publish(res.FirstVisibleIndex)
}
