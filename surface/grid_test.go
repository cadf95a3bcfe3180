package surface_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/gridscroll"
	"github.com/go-theft-auto/gridscroll/surface"
)

func boundGrid(t *testing.T) (*surface.Viewport, *gridscroll.Strategy) {
	t.Helper()
	s, err := gridscroll.New(
		gridscroll.WithRowSize(130),
		gridscroll.WithColumns(2),
		gridscroll.WithHeaderHeight(50),
		gridscroll.WithFooterHeight(20),
		gridscroll.WithBuffer(100, 200),
	)
	require.NoError(t, err)
	vp := surface.NewViewport(300, 10)
	vp.Bind(s)
	t.Cleanup(vp.Unbind)
	return vp, s
}

func TestGrid_FramePlacesCells(t *testing.T) {
	vp, s := boundGrid(t)
	require.Equal(t, gridscroll.Range{Start: 0, End: 8}, vp.RenderedRange())

	f := surface.Grid{Width: 200}.Frame(vp, s.Layout())

	assert.Equal(t, surface.Rect{W: 200, H: 50}, f.Header)
	assert.Equal(t, surface.Rect{Y: 700, W: 200, H: 20}, f.Footer)
	assert.Equal(t, surface.Rect{}, f.Thumb)
	require.Len(t, f.Cells, 8)

	want := []surface.Cell{
		{Index: 0, Row: 0, Col: 0, Rect: surface.Rect{X: 0, Y: 50, W: 100, H: 130}},
		{Index: 3, Row: 1, Col: 1, Rect: surface.Rect{X: 100, Y: 180, W: 100, H: 130}},
	}
	got := []surface.Cell{f.Cells[0], f.Cells[3]}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("cells mismatch (-want +got):\n%s", diff)
	}

	visible := f.Visible()
	require.Len(t, visible, 4, "rows at y=50 and y=180 intersect a 300px viewport")
	assert.Equal(t, 3, visible[3].Index)
}

func TestGrid_FrameFollowsScroll(t *testing.T) {
	vp, s := boundGrid(t)

	vp.End()
	require.Equal(t, 420.0, vp.ScrollOffset())

	f := surface.Grid{Width: 200, Gap: 10}.Frame(vp, s.Layout())
	last := f.Cells[len(f.Cells)-1]

	assert.Equal(t, 9, last.Index)
	assert.Equal(t, 4, last.Row)
	assert.Equal(t, 95.0, last.Rect.W)
	assert.Equal(t, 120.0, last.Rect.H)
	// Row 4 starts 4*130 below the header, shifted up by the scroll offset.
	assert.InDelta(t, 50+4*130-420, last.Rect.Y, 1e-9)
	assert.Equal(t, 280.0, f.Footer.Y)
}

func TestGrid_Scrollbar(t *testing.T) {
	vp, s := boundGrid(t)
	g := surface.Grid{Width: 200, ScrollbarWidth: 10}

	f := g.Frame(vp, s.Layout())
	assert.Equal(t, surface.Rect{X: 190, Y: 0, W: 10, H: 125}, f.Thumb)
	assert.Equal(t, 95.0, f.Cells[0].Rect.W)

	vp.End()
	f = g.Frame(vp, s.Layout())
	assert.InDelta(t, 300-125, f.Thumb.Y, 1e-9)
}

func TestFrame_Paint(t *testing.T) {
	vp, s := boundGrid(t)
	f := surface.Grid{Width: 200}.Frame(vp, s.Layout())
	p := surface.DefaultPalette()

	dl := surface.AcquireDrawList()
	defer surface.ReleaseDrawList(dl)
	f.Paint(dl, p, 2)
	dl.Finalize()

	// Background, four visible cells and the header.
	require.Len(t, dl.CmdBuffer, 1)
	assert.Equal(t, uint32(36), dl.CmdBuffer[0].ElemCount)
	assert.Equal(t, [4]float32{0, 0, 200, 300}, dl.CmdBuffer[0].ClipRect)
	require.Len(t, dl.VtxBuffer, 24)

	assert.Equal(t, p.Background, dl.VtxBuffer[0].Color)
	assert.Equal(t, p.Cell, dl.VtxBuffer[4].Color)
	assert.Equal(t, p.Highlight, dl.VtxBuffer[12].Color)
	assert.Equal(t, p.CellAlt, dl.VtxBuffer[16].Color)
	assert.Equal(t, p.Header, dl.VtxBuffer[20].Color)
}

func TestDrawList_SkipsTransparentAndEmpty(t *testing.T) {
	dl := surface.AcquireDrawList()
	defer surface.ReleaseDrawList(dl)

	dl.AddRect(surface.Rect{W: 10, H: 10}, surface.RGBA(255, 0, 0, 0))
	dl.AddRect(surface.Rect{W: 0, H: 10}, surface.RGBA(255, 0, 0, 255))
	dl.PushClipRect(0, 0, 5, 5)
	dl.PopClipRect()
	dl.AddRect(surface.Rect{X: 1, Y: 2, W: 3, H: 4}, surface.RGBA(255, 0, 0, 255))
	dl.Finalize()

	require.Len(t, dl.CmdBuffer, 1)
	assert.Equal(t, uint32(6), dl.CmdBuffer[0].ElemCount)
	assert.Equal(t, []uint32{0, 1, 2, 0, 2, 3}, dl.IdxBuffer)
	assert.Equal(t, [2]float32{4, 6}, dl.VtxBuffer[2].Pos)
	assert.Equal(t, uint32(0xFF0000FF), dl.VtxBuffer[0].Color)
}
