package surface

import "sort"

// Breakpoint selects Columns when the available width is at most MaxWidth.
type Breakpoint struct {
	MaxWidth float64 `yaml:"max_width" json:"max_width"`
	Columns  int     `yaml:"columns" json:"columns"`
}

// Breakpoints maps a region width to a column count. The narrowest matching
// breakpoint wins; widths above every breakpoint use Default.
type Breakpoints struct {
	Default int          `yaml:"default" json:"default"`
	Steps   []Breakpoint `yaml:"steps" json:"steps"`
}

// DefaultBreakpoints returns three columns, two at 900px and below and one
// at 500px and below.
func DefaultBreakpoints() Breakpoints {
	return Breakpoints{
		Default: 3,
		Steps: []Breakpoint{
			{MaxWidth: 900, Columns: 2},
			{MaxWidth: 500, Columns: 1},
		},
	}
}

// ColumnsFor returns the column count for width.
func (b Breakpoints) ColumnsFor(width float64) int {
	steps := append([]Breakpoint(nil), b.Steps...)
	sort.Slice(steps, func(i, j int) bool { return steps[i].MaxWidth < steps[j].MaxWidth })
	for _, s := range steps {
		if width <= s.MaxWidth {
			return s.Columns
		}
	}
	return b.Default
}
