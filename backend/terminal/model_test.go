package terminal

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/go-theft-auto/gridscroll"
	"github.com/go-theft-auto/gridscroll/surface"
)

// lineLayout is a one-column list of 3-line rows with a 2-line header.
func lineLayout() gridscroll.Layout {
	return gridscroll.Layout{
		RowSize:      3,
		Columns:      1,
		HeaderHeight: 2,
		MinBufferPx:  5,
		MaxBufferPx:  10,
	}
}

func newModel(t *testing.T, items int, behavior gridscroll.ScrollBehavior) Model {
	t.Helper()
	s, err := gridscroll.New(gridscroll.WithLayout(lineLayout()), gridscroll.WithLogger(zaptest.NewLogger(t)))
	require.NoError(t, err)
	m := New(s, items, surface.DefaultBreakpoints(), behavior)
	t.Cleanup(m.Close)
	return m
}

func send(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(Model)
	}
	return m, cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typed(s string) []tea.Msg {
	msgs := make([]tea.Msg, 0, len(s))
	for _, r := range s {
		msgs = append(msgs, runes(string(r)))
	}
	return msgs
}

func TestScaleLayout(t *testing.T) {
	got := ScaleLayout(gridscroll.Layout{
		RowSize:      130,
		Columns:      3,
		HeaderHeight: 50,
		FooterHeight: 20,
		MinBufferPx:  100,
		MaxBufferPx:  200,
	})
	want := gridscroll.Layout{
		RowSize:      8,
		Columns:      3,
		HeaderHeight: 3,
		FooterHeight: 1,
		MinBufferPx:  6,
		MaxBufferPx:  13,
	}
	assert.Equal(t, want, got)
	assert.Equal(t, 1.0, ScaleLayout(gridscroll.Layout{RowSize: 4}).RowSize)
}

func TestModel_WindowSize(t *testing.T) {
	m := newModel(t, 1000, gridscroll.ScrollInstant)
	assert.Empty(t, m.View(), "nothing to draw before the first size")

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 22})

	assert.Equal(t, 20.0, m.Viewport().ViewportSize())
	assert.Equal(t, 2, m.strategy.Layout().Columns, "800px wide falls in the two-column breakpoint")
	assert.Equal(t, 1502.0, m.Viewport().TotalContentSize())
}

func TestModel_NavigationKeys(t *testing.T) {
	m := newModel(t, 1000, gridscroll.ScrollInstant)
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 40, Height: 22})
	vp := m.Viewport()

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 3.0, vp.ScrollOffset(), "one row")

	m, _ = send(t, m, runes("j"), runes("k"))
	assert.Equal(t, 3.0, vp.ScrollOffset())

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyPgDown})
	assert.Equal(t, 19.0, vp.ScrollOffset())

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnd})
	assert.Equal(t, vp.MaxScroll(), vp.ScrollOffset())

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyHome})
	assert.Equal(t, 0.0, vp.ScrollOffset())

	_, _ = send(t, m, tea.MouseMsg{Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	assert.Equal(t, 1.0, vp.ScrollOffset())
}

func TestModel_GoToIndexPrompt(t *testing.T) {
	m := newModel(t, 1000, gridscroll.ScrollInstant)
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 40, Height: 22})

	m, _ = send(t, m, runes(":"))
	require.Equal(t, promptIndex, m.prompt)
	assert.Contains(t, m.View(), "go to index:")

	m, _ = send(t, m, typed("42")...)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, promptNone, m.prompt)
	// Index offsets leave the header out, so the 2-line header pushes row 42
	// down and row 41 is the first one visible.
	assert.Equal(t, 126.0, m.Viewport().ScrollOffset())
	first, _ := m.strategy.FirstVisibleIndex()
	assert.Equal(t, 41, first)
	assert.True(t, m.Viewport().RenderedRange().Contains(42))
	assert.Contains(t, m.View(), "jumped to 42")
}

func TestModel_SetCountPrompt(t *testing.T) {
	m := newModel(t, 1000, gridscroll.ScrollInstant)
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 40, Height: 22})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnd})

	m, _ = send(t, m, runes("n"))
	m, _ = send(t, m, typed("5")...)
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	vp := m.Viewport()
	assert.Equal(t, 5, vp.DataLength())
	assert.Equal(t, 17.0, vp.TotalContentSize())
	assert.Equal(t, 0.0, vp.ScrollOffset(), "everything fits")
	assert.LessOrEqual(t, vp.RenderedRange().End, 5)
}

func TestModel_PromptRejectsGarbage(t *testing.T) {
	m := newModel(t, 1000, gridscroll.ScrollInstant)
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 40, Height: 22})

	m, _ = send(t, m, runes(":"))
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Contains(t, m.status, "not a valid number")
	assert.Equal(t, 0.0, m.Viewport().ScrollOffset())

	m, _ = send(t, m, runes("n"), tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, promptNone, m.prompt)
	assert.Equal(t, 1000, m.Viewport().DataLength())
}

func TestModel_SmoothJumpTicks(t *testing.T) {
	m := newModel(t, 1000, gridscroll.ScrollInstant)
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 40, Height: 22})

	m, _ = send(t, m, runes("s"))
	require.Equal(t, gridscroll.ScrollSmooth, m.behavior)

	m, _ = send(t, m, runes(":"))
	m, _ = send(t, m, typed("100")...)
	m, cmd := send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd, "smooth jump schedules a frame")
	require.True(t, m.ticking)

	for i := 0; cmd != nil; i++ {
		require.Less(t, i, 1000, "animation never settled")
		m, cmd = send(t, m, tickMsg(time.Now()))
	}
	assert.False(t, m.ticking)
	assert.Equal(t, 300.0, m.Viewport().ScrollOffset())
}

func TestModel_HelpAndQuit(t *testing.T) {
	m := newModel(t, 10, gridscroll.ScrollInstant)
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 12})

	m, _ = send(t, m, runes("?"))
	assert.True(t, m.help.ShowAll)
	assert.Contains(t, m.View(), "jump to last")

	_, cmd := send(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModel_ViewDrawsRows(t *testing.T) {
	m := newModel(t, 1000, gridscroll.ScrollInstant)
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 40, Height: 12})

	view := m.View()
	lines := strings.Split(view, "\n")
	require.Len(t, lines, 12)

	assert.Contains(t, lines[0], "1000 items")
	assert.Contains(t, lines[2], "#0")
	assert.Contains(t, lines[5], "#1")
	assert.NotContains(t, view, "·", "every visible row is materialized")
	assert.Contains(t, lines[10], "items 0-")
	assert.Contains(t, lines[10], "first 0")
}
