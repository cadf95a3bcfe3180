// Command gen renders the grid at several widths and scroll positions,
// captures framebuffer pixels, and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/gridscroll"
	"github.com/go-theft-auto/gridscroll/backend/opengl"
	"github.com/go-theft-auto/gridscroll/surface"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot is one captured grid state.
type screenshot struct {
	name          string // filename without extension
	width, height int
	items         int
	scroll        func(vp *surface.Viewport) // positions the viewport before capture
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	// Larger than every screenshot; only the projection changes per capture.
	window, err := glfw.CreateWindow(1000, 700, "screenshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(1000, 700)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer renderer.Delete()

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := buildScreenshots()
	for _, s := range shots {
		if err := capture(renderer, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(renderer *opengl.Renderer, s screenshot, outDir string) error {
	renderer.Resize(s.width, s.height)

	// Fresh strategy per screenshot so nothing leaks between captures.
	strategy, err := gridscroll.New(
		gridscroll.WithRowSize(130),
		gridscroll.WithColumns(surface.DefaultBreakpoints().ColumnsFor(float64(s.width))),
		gridscroll.WithHeaderHeight(50),
		gridscroll.WithFooterHeight(20),
	)
	if err != nil {
		return err
	}
	vp := surface.NewViewport(float64(s.height), s.items)
	vp.Bind(strategy)
	defer vp.Unbind()

	if s.scroll != nil {
		s.scroll(vp)
	}
	for vp.Step(1.0 / 60.0) {
	}

	gl.Viewport(0, 0, int32(s.width), int32(s.height))
	gl.ClearColor(0.12, 0.12, 0.14, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	first, _ := strategy.FirstVisibleIndex()
	frame := surface.Grid{Width: float64(s.width), Gap: 6, ScrollbarWidth: 8}.Frame(vp, strategy.Layout())
	dl := surface.AcquireDrawList()
	frame.Paint(dl, surface.DefaultPalette(), first)
	err = renderer.Render(dl)
	surface.ReleaseDrawList(dl)
	if err != nil {
		return err
	}

	pixels := make([]byte, s.width*s.height*4)
	gl.ReadPixels(0, 0, int32(s.width), int32(s.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	// OpenGL rows start at the bottom.
	stride := s.width * 4
	for y := 0; y < s.height; y++ {
		src := (s.height - 1 - y) * stride
		copy(img.Pix[y*stride:(y+1)*stride], pixels[src:src+stride])
	}

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

// buildScreenshots lists the captured states: one per column breakpoint plus
// the scroll positions worth documenting.
func buildScreenshots() []screenshot {
	return []screenshot{
		{name: "grid_three_columns", width: 1000, height: 600, items: 1000},
		{name: "grid_two_columns", width: 800, height: 600, items: 1000},
		{name: "grid_one_column", width: 480, height: 600, items: 1000},
		{
			name: "grid_scrolled", width: 800, height: 600, items: 1000,
			scroll: func(vp *surface.Viewport) { vp.SetScrollOffset(2600) },
		},
		{
			name: "grid_tail", width: 800, height: 600, items: 1001,
			scroll: func(vp *surface.Viewport) { vp.End() },
		},
		{
			name: "grid_jump", width: 800, height: 600, items: 100_000,
			scroll: func(vp *surface.Viewport) { vp.Apply(surface.CmdJumpLast) },
		},
		{name: "grid_short", width: 800, height: 600, items: 5},
	}
}
