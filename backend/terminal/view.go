package terminal

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles holds the lipgloss styles of the terminal host.
type Styles struct {
	Header      lipgloss.Style
	Footer      lipgloss.Style
	Cell        lipgloss.Style
	CellAlt     lipgloss.Style
	Highlight   lipgloss.Style
	Placeholder lipgloss.Style
	Status      lipgloss.Style
}

// DefaultStyles returns a dark theme matching surface.DefaultPalette.
func DefaultStyles() Styles {
	return Styles{
		Header:      lipgloss.NewStyle().Background(lipgloss.Color("#344870")).Foreground(lipgloss.Color("#FFFFFF")).Bold(true),
		Footer:      lipgloss.NewStyle().Background(lipgloss.Color("#34343C")).Foreground(lipgloss.Color("#B0B0B0")),
		Cell:        lipgloss.NewStyle().Background(lipgloss.Color("#464652")).Foreground(lipgloss.Color("#E0E0E0")),
		CellAlt:     lipgloss.NewStyle().Background(lipgloss.Color("#525260")).Foreground(lipgloss.Color("#E0E0E0")),
		Highlight:   lipgloss.NewStyle().Background(lipgloss.Color("#C88C3C")).Foreground(lipgloss.Color("#000000")).Bold(true),
		Placeholder: lipgloss.NewStyle().Faint(true),
		Status:      lipgloss.NewStyle().Faint(true),
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	var b strings.Builder
	for _, line := range m.gridLines() {
		b.WriteString(line)
		b.WriteByte('\n')
	}
	b.WriteString(m.styles.Status.Render(m.statusLine()))
	b.WriteByte('\n')
	if m.prompt != promptNone {
		b.WriteString(m.input.View())
	} else {
		b.WriteString(m.help.View(m.keys))
	}
	return b.String()
}

// gridLines renders one string per visible line of the scroll area.
func (m Model) gridLines() []string {
	l := m.strategy.Layout()
	n := max(0, m.height-chromeLines)
	lines := make([]string, n)

	scroll := m.viewport.ScrollOffset()
	total := m.viewport.TotalContentSize()
	rendered := m.viewport.RenderedRange()
	dataLength := m.viewport.DataLength()
	first, _ := m.strategy.FirstVisibleIndex()

	cols := max(1, l.Columns)
	cellW := max(1, (m.width-(cols-1))/cols)
	top := math.Floor(scroll)

	for y := range lines {
		sy := top + float64(y)
		switch {
		case sy >= total:
		case sy < l.HeaderHeight:
			text := ""
			if sy == 0 {
				text = fmt.Sprintf(" %d items", dataLength)
			}
			lines[y] = m.styles.Header.Width(m.width).Render(text)
		case sy >= total-l.FooterHeight:
			lines[y] = m.styles.Footer.Width(m.width).Render("")
		case l.RowSize > 0:
			itemY := sy - l.HeaderHeight
			row := int(itemY / l.RowSize)
			labelLine := itemY-float64(row)*l.RowSize < 1
			cells := make([]string, 0, cols)
			for c := 0; c < cols; c++ {
				idx := row*cols + c
				if idx >= dataLength {
					break
				}
				cells = append(cells, m.cell(idx, row, labelLine, cellW, first, rendered.Contains(idx)))
			}
			lines[y] = strings.Join(cells, " ")
		}
	}
	return lines
}

func (m Model) cell(idx, row int, label bool, width, first int, materialized bool) string {
	if !materialized {
		// A visible row outside the range would be a windowing bug; show it.
		return m.styles.Placeholder.Width(width).Render(truncate("·", width))
	}
	style := m.styles.Cell
	if row%2 == 1 {
		style = m.styles.CellAlt
	}
	if idx == first {
		style = m.styles.Highlight
	}
	text := ""
	if label {
		text = truncate(fmt.Sprintf("#%d", idx), width)
	}
	return style.Width(width).Render(text)
}

func (m Model) statusLine() string {
	if m.status != "" {
		return m.status
	}
	r := m.viewport.RenderedRange()
	first, _ := m.strategy.FirstVisibleIndex()
	return fmt.Sprintf("items %d-%d of %d | first %d | scroll %.0f/%.0f | %d cols | jumps %s",
		r.Start, r.End, m.viewport.DataLength(), first,
		m.viewport.ScrollOffset(), m.viewport.MaxScroll(),
		m.strategy.Layout().Columns, m.behavior)
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width])
}
