// Package terminal hosts a gridscroll strategy in a bubbletea program.
//
// The terminal works in character cells: one scroll unit is one line, so a
// layout for this host has RowSize, HeaderHeight and FooterHeight measured in
// lines. ScaleLayout converts a pixel layout.
package terminal

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-theft-auto/gridscroll"
	"github.com/go-theft-auto/gridscroll/surface"
)

// Approximate pixel size of one terminal cell, used to reuse pixel based
// layouts and breakpoints.
const (
	LineHeight = 16
	CharWidth  = 8
)

// chromeLines is the status line plus the help line.
const chromeLines = 2

const frameInterval = time.Second / 60

// ScaleLayout converts a pixel layout into lines. RowSize never drops
// below one line.
func ScaleLayout(l gridscroll.Layout) gridscroll.Layout {
	lines := func(px float64) float64 { return math.Round(px / LineHeight) }
	return gridscroll.Layout{
		RowSize:      max(1, lines(l.RowSize)),
		Columns:      l.Columns,
		HeaderHeight: lines(l.HeaderHeight),
		FooterHeight: lines(l.FooterHeight),
		MinBufferPx:  lines(l.MinBufferPx),
		MaxBufferPx:  lines(l.MaxBufferPx),
	}
}

type promptKind int

const (
	promptNone promptKind = iota
	promptIndex
	promptCount
)

type tickMsg time.Time

// Model is the bubbletea model of the terminal host.
type Model struct {
	strategy    *gridscroll.Strategy
	viewport    *surface.Viewport
	breakpoints surface.Breakpoints
	behavior    gridscroll.ScrollBehavior

	keys   KeyMap
	help   help.Model
	input  textinput.Model
	prompt promptKind
	styles Styles

	width, height int
	ticking       bool
	status        string
}

// New binds s to a fresh viewport holding items. The viewport gets its size
// from the first tea.WindowSizeMsg.
func New(s *gridscroll.Strategy, items int, bp surface.Breakpoints, behavior gridscroll.ScrollBehavior) Model {
	vp := surface.NewViewport(0, items)
	vp.Bind(s)

	ti := textinput.New()
	ti.CharLimit = 12
	ti.Validate = func(v string) error {
		if v == "" {
			return nil
		}
		_, err := strconv.Atoi(v)
		return err
	}

	return Model{
		strategy:    s,
		viewport:    vp,
		breakpoints: bp,
		behavior:    behavior,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		input:       ti,
		styles:      DefaultStyles(),
	}
}

// Viewport exposes the bound viewport.
func (m Model) Viewport() *surface.Viewport { return m.viewport }

// Close detaches the strategy. Call it after the program exits.
func (m Model) Close() { m.viewport.Unbind() }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.viewport.Resize(float64(max(0, msg.Height-chromeLines)))
		if cols := m.breakpoints.ColumnsFor(float64(msg.Width * CharWidth)); cols > 0 {
			if err := m.viewport.SetColumns(cols); err != nil {
				m.status = err.Error()
			}
		}
		return m, nil

	case tea.MouseMsg:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.viewport.ScrollBy(-1)
		case tea.MouseButtonWheelDown:
			m.viewport.ScrollBy(1)
		}
		return m, nil

	case tickMsg:
		if m.viewport.Step(frameInterval.Seconds()) {
			return m, tick()
		}
		m.ticking = false
		return m, nil

	case tea.KeyMsg:
		if m.prompt != promptNone {
			return m.updatePrompt(msg)
		}
		return m.updateKeys(msg)
	}
	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.ToggleSmooth):
		if m.behavior == gridscroll.ScrollSmooth {
			m.behavior = gridscroll.ScrollInstant
		} else {
			m.behavior = gridscroll.ScrollSmooth
		}
		m.status = "jumps: " + m.behavior.String()
		return m, nil
	case key.Matches(msg, m.keys.GoToIndex):
		return m.openPrompt(promptIndex, "go to index: ")
	case key.Matches(msg, m.keys.SetCount):
		return m.openPrompt(promptCount, "item count: ")
	}

	if cmd := m.keys.command(msg); cmd != surface.CmdNone {
		m.viewport.Apply(cmd)
		m.status = ""
		return m.animate()
	}
	return m, nil
}

func (m Model) openPrompt(kind promptKind, label string) (tea.Model, tea.Cmd) {
	m.prompt = kind
	m.input.Prompt = label
	m.input.SetValue("")
	return m, m.input.Focus()
}

func (m Model) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.closePrompt()
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		kind := m.prompt
		n, err := strconv.Atoi(strings.TrimSpace(m.input.Value()))
		m.closePrompt()
		if err != nil || n < 0 {
			m.status = fmt.Sprintf("not a valid number: %q", m.input.Value())
			return m, nil
		}
		switch kind {
		case promptIndex:
			m.strategy.ScrollToIndex(n, m.behavior)
			m.status = fmt.Sprintf("jumped to %d", n)
			return m.animate()
		case promptCount:
			m.viewport.SetDataLength(n)
			m.status = fmt.Sprintf("%d items", n)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) closePrompt() {
	m.prompt = promptNone
	m.input.Blur()
}

// animate starts the frame ticker when a smooth scroll is pending.
func (m Model) animate() (tea.Model, tea.Cmd) {
	if !m.viewport.Animating() || m.ticking {
		return m, nil
	}
	m.ticking = true
	return m, tick()
}

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}
