/*
Package gridscroll computes which slice of a very large, uniformly sized item
list should be materialized inside a scrollable region.

# Overview

A host (a GL window, a terminal, a test fake) implements the Viewport
interface. A Strategy attached to it reads the scroll offset, viewport size
and item count on every event and writes back three things:

  - the total scrollable extent (SetTotalContentSize),
  - the half-open range of item indices to materialize (SetRenderedRange),
  - the pixel offset at which the first materialized item is placed
    (SetRenderedContentOffset).

It also publishes the first visible index whenever it changes.

Items are laid out on a grid of Columns items per row. Every row is RowSize
pixels tall, so each item accounts for RowSize/Columns pixels of scroll
extent. A fixed header and footer consume scroll space without being
virtualized.

# Quick Start

	s, err := gridscroll.New(
	    gridscroll.WithRowSize(130),
	    gridscroll.WithColumns(3),
	    gridscroll.WithHeaderHeight(50),
	    gridscroll.WithBuffer(100, 200),
	)
	if err != nil {
	    return err
	}
	s.Attach(viewport)
	defer s.Detach()

	cancel := s.Subscribe(func(first int) {
	    fmt.Println("first visible:", first)
	})
	defer cancel()

	// From the host's event handlers:
	s.OnScrolled()
	s.OnDataLengthChanged()
	s.ScrollToIndex(42, gridscroll.ScrollSmooth)

# Buffering

The range always extends past the visible area. When fewer than MinBufferPx
pixels of materialized items remain above the viewport, the start is moved
back so that about MaxBufferPx pixels are available; otherwise the same check
runs below the viewport. Only one side grows per recomputation, the start side
first.

# Row alignment

Range boundaries are multiples of Columns, so a row is either fully
materialized or not at all. Hosts that lay cells out with a CSS-style grid
rely on this: dropping a single item from the front would shift every
following item into the wrong column. The only unaligned boundary is an End
equal to the item count when the last row is partial.

# Layout updates

UpdateConfig replaces the layout and recomputes. Column count and header or
footer heights usually change together with the window size, see the surface
package for breakpoint and height helpers.

# Logging

Strategies log through zap. The package logger writes to stderr at Info;
SetVerbose(true) turns on per-recomputation Debug lines, SetLogger or
WithLogger redirect output.
*/
package gridscroll
