// Example opens a window showing a 100 000 item grid that only ever draws
// the rows gridscroll materializes.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// Scroll with the wheel, arrows, PageUp/PageDown and Home/End; Ctrl+Home and
// Ctrl+End animate. Resize the window to cross the column breakpoints.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"go.uber.org/zap"

	"github.com/go-theft-auto/gridscroll"
	"github.com/go-theft-auto/gridscroll/backend/opengl"
	"github.com/go-theft-auto/gridscroll/surface"
)

const (
	windowWidth  = 800
	windowHeight = 600
	windowTitle  = "gridscroll example"
	itemCount    = 100_000
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
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

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(windowWidth, windowHeight)
	if err != nil {
		return fmt.Errorf("renderer: %w", err)
	}
	defer renderer.Delete()

	strategy, err := gridscroll.New(
		gridscroll.WithRowSize(130),
		gridscroll.WithHeaderHeight(50),
		gridscroll.WithFooterHeight(20),
	)
	if err != nil {
		return err
	}
	strategy.Subscribe(func(first int) {
		window.SetTitle(fmt.Sprintf("%s - first visible %d", windowTitle, first))
	})

	vp := surface.NewViewport(windowHeight, itemCount)
	vp.Bind(strategy)
	defer vp.Unbind()

	input := opengl.NewInputAdapter(window, vp, surface.DefaultBreakpoints())
	vp.OnRangeChange(func(r gridscroll.Range) {
		gridscroll.Logger().Debug("range changed", zap.Int("start", r.Start), zap.Int("end", r.End))
		input.MarkDirty()
	})

	palette := surface.DefaultPalette()
	last := glfw.GetTime()
	for !window.ShouldClose() {
		glfw.PollEvents()

		now := glfw.GetTime()
		dt := now - last
		last = now
		input.Update(dt)

		w, h := window.GetFramebufferSize()
		renderer.Resize(w, h)
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		first, _ := strategy.FirstVisibleIndex()
		frame := surface.Grid{Width: float64(w), Gap: 6, ScrollbarWidth: 8}.Frame(vp, strategy.Layout())
		dl := surface.AcquireDrawList()
		frame.Paint(dl, palette, first)
		err := renderer.Render(dl)
		surface.ReleaseDrawList(dl)
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}

		window.SwapBuffers()
	}
	return nil
}
