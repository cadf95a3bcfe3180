// Package surface is a host-side scrollable region for gridscroll.
//
// Viewport holds the scroll position and item count of one region and
// implements gridscroll.Viewport, so a Strategy can be bound to it directly.
// Grid turns the materialized range into cell rectangles, and Frame.Paint
// appends them to a DrawList that a rendering backend consumes.
//
//	s, _ := gridscroll.New(gridscroll.WithRowSize(130), gridscroll.WithColumns(3))
//	vp := surface.NewViewport(600, 10_000)
//	vp.Bind(s)
//	defer vp.Unbind()
//
//	vp.ScrollBy(240)
//	frame := surface.Grid{Width: 800}.Frame(vp, s.Layout())
package surface
