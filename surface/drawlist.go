package surface

import "sync"

// Vertex is one corner of a colored quad. The layout matches the vertex
// attributes bound by the OpenGL backend.
type Vertex struct {
	Pos   [2]float32
	Color uint32 // packed 0xAABBGGRR
}

// DrawCmd is a run of indices sharing one clip rectangle.
type DrawCmd struct {
	ElemCount   uint32
	ClipRect    [4]float32 // x1, y1, x2, y2
	IndexOffset uint32
}

var drawListPool = sync.Pool{
	New: func() any {
		return &DrawList{
			VtxBuffer: make([]Vertex, 0, 512),
			IdxBuffer: make([]uint32, 0, 768),
			CmdBuffer: make([]DrawCmd, 0, 4),
		}
	},
}

// AcquireDrawList returns an empty DrawList from the pool.
func AcquireDrawList() *DrawList {
	dl := drawListPool.Get().(*DrawList)
	dl.Reset()
	return dl
}

// ReleaseDrawList hands dl back to the pool.
func ReleaseDrawList(dl *DrawList) {
	if dl != nil {
		drawListPool.Put(dl)
	}
}

// DrawList collects the quads of one frame.
type DrawList struct {
	CmdBuffer []DrawCmd
	VtxBuffer []Vertex
	IdxBuffer []uint32

	clip      [4]float32
	clipStack [][4]float32
}

var noClip = [4]float32{-1e9, -1e9, 1e9, 1e9}

// Reset empties the list and keeps its buffers.
func (dl *DrawList) Reset() {
	dl.CmdBuffer = dl.CmdBuffer[:0]
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.IdxBuffer = dl.IdxBuffer[:0]
	dl.clipStack = dl.clipStack[:0]
	dl.clip = noClip
}

// PushClipRect restricts following quads to the given rectangle.
func (dl *DrawList) PushClipRect(x1, y1, x2, y2 float32) {
	dl.clipStack = append(dl.clipStack, dl.clip)
	dl.clip = [4]float32{x1, y1, x2, y2}
	dl.split()
}

// PopClipRect restores the previous clip rectangle.
func (dl *DrawList) PopClipRect() {
	n := len(dl.clipStack)
	if n == 0 {
		return
	}
	dl.clip = dl.clipStack[n-1]
	dl.clipStack = dl.clipStack[:n-1]
	dl.split()
}

// AddRect adds a filled rectangle. Fully transparent colors are skipped.
func (dl *DrawList) AddRect(r Rect, color uint32) {
	if color&0xFF000000 == 0 || r.W <= 0 || r.H <= 0 {
		return
	}
	if len(dl.CmdBuffer) == 0 {
		dl.split()
	}
	x, y := float32(r.X), float32(r.Y)
	w, h := float32(r.W), float32(r.H)
	base := uint32(len(dl.VtxBuffer))
	dl.VtxBuffer = append(dl.VtxBuffer,
		Vertex{Pos: [2]float32{x, y}, Color: color},
		Vertex{Pos: [2]float32{x + w, y}, Color: color},
		Vertex{Pos: [2]float32{x + w, y + h}, Color: color},
		Vertex{Pos: [2]float32{x, y + h}, Color: color},
	)
	dl.IdxBuffer = append(dl.IdxBuffer, base, base+1, base+2, base, base+2, base+3)
	dl.CmdBuffer[len(dl.CmdBuffer)-1].ElemCount += 6
}

// AddRectOutline adds the four edges of r.
func (dl *DrawList) AddRectOutline(r Rect, color uint32, thickness float64) {
	dl.AddRect(Rect{X: r.X, Y: r.Y, W: r.W, H: thickness}, color)
	dl.AddRect(Rect{X: r.X, Y: r.Y + r.H - thickness, W: r.W, H: thickness}, color)
	dl.AddRect(Rect{X: r.X, Y: r.Y + thickness, W: thickness, H: r.H - 2*thickness}, color)
	dl.AddRect(Rect{X: r.X + r.W - thickness, Y: r.Y + thickness, W: thickness, H: r.H - 2*thickness}, color)
}

// Finalize drops empty commands. Call it before handing the list to a renderer.
func (dl *DrawList) Finalize() {
	kept := dl.CmdBuffer[:0]
	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount > 0 {
			kept = append(kept, cmd)
		}
	}
	dl.CmdBuffer = kept
}

func (dl *DrawList) split() {
	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		ClipRect:    dl.clip,
		IndexOffset: uint32(len(dl.IdxBuffer)),
	})
}

// RGBA packs a color as 0xAABBGGRR.
func RGBA(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}
