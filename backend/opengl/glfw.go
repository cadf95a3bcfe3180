package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/gridscroll/surface"
)

// DefaultWheelStep is the scroll distance of one wheel notch in pixels.
const DefaultWheelStep = 40

// InputAdapter routes GLFW window events to a surface.Viewport: wheel and
// navigation keys scroll it, framebuffer resizes resize it and pick the
// column count from Breakpoints.
//
// GLFW delivers callbacks from PollEvents, so the viewport is only touched
// on the thread running the event loop.
type InputAdapter struct {
	window      *glfw.Window
	viewport    *surface.Viewport
	breakpoints surface.Breakpoints
	wheelStep   float64

	dirty bool
}

// NewInputAdapter installs the callbacks on window. Breakpoints are applied
// once for the current framebuffer size.
func NewInputAdapter(window *glfw.Window, vp *surface.Viewport, bp surface.Breakpoints) *InputAdapter {
	a := &InputAdapter{
		window:      window,
		viewport:    vp,
		breakpoints: bp,
		wheelStep:   DefaultWheelStep,
	}

	window.SetKeyCallback(a.keyCallback)
	window.SetScrollCallback(a.scrollCallback)
	window.SetFramebufferSizeCallback(a.framebufferSizeCallback)

	w, h := window.GetFramebufferSize()
	a.framebufferSizeCallback(window, w, h)
	return a
}

// SetWheelStep changes the distance scrolled per wheel notch.
func (a *InputAdapter) SetWheelStep(px float64) {
	if px > 0 {
		a.wheelStep = px
	}
}

// Update advances smooth scrolling by dt seconds and reports whether the
// frame needs to be redrawn.
func (a *InputAdapter) Update(dt float64) bool {
	animating := a.viewport.Step(dt)
	dirty := a.dirty || animating
	a.dirty = false
	return dirty
}

// MarkDirty forces the next Update to report a redraw.
func (a *InputAdapter) MarkDirty() { a.dirty = true }

func (a *InputAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action == glfw.Release {
		return
	}
	if key == glfw.KeyEscape {
		w.SetShouldClose(true)
		return
	}
	cmd := glfwKeyToCommand(key, mods)
	if cmd == surface.CmdNone {
		return
	}
	a.viewport.Apply(cmd)
	a.dirty = true
}

func (a *InputAdapter) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	a.viewport.ScrollBy(-yoff * a.wheelStep)
	a.dirty = true
}

func (a *InputAdapter) framebufferSizeCallback(w *glfw.Window, width, height int) {
	a.viewport.Resize(float64(height))
	if cols := a.breakpoints.ColumnsFor(float64(width)); cols > 0 {
		// A rejected layout keeps the previous columns.
		_ = a.viewport.SetColumns(cols)
	}
	a.dirty = true
}

// glfwKeyToCommand maps navigation keys. Ctrl+Home and Ctrl+End animate.
func glfwKeyToCommand(key glfw.Key, mods glfw.ModifierKey) surface.Command {
	ctrl := mods&glfw.ModControl != 0
	switch key {
	case glfw.KeyUp, glfw.KeyK:
		return surface.CmdLineUp
	case glfw.KeyDown, glfw.KeyJ:
		return surface.CmdLineDown
	case glfw.KeyPageUp:
		return surface.CmdPageUp
	case glfw.KeyPageDown, glfw.KeySpace:
		return surface.CmdPageDown
	case glfw.KeyHome:
		if ctrl {
			return surface.CmdJumpFirst
		}
		return surface.CmdHome
	case glfw.KeyEnd:
		if ctrl {
			return surface.CmdJumpLast
		}
		return surface.CmdEnd
	default:
		return surface.CmdNone
	}
}
