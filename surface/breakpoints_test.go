package surface_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-theft-auto/gridscroll/surface"
)

func TestBreakpoints_ColumnsFor(t *testing.T) {
	b := surface.DefaultBreakpoints()

	tests := []struct {
		width float64
		want  int
	}{
		{1920, 3},
		{901, 3},
		{900, 2},
		{700, 2},
		{500, 1},
		{320, 1},
		{0, 1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, b.ColumnsFor(tt.width), "width %v", tt.width)
	}
}

func TestBreakpoints_UnorderedSteps(t *testing.T) {
	b := surface.Breakpoints{
		Default: 6,
		Steps: []surface.Breakpoint{
			{MaxWidth: 1200, Columns: 4},
			{MaxWidth: 400, Columns: 1},
			{MaxWidth: 800, Columns: 2},
		},
	}

	assert.Equal(t, 1, b.ColumnsFor(400))
	assert.Equal(t, 2, b.ColumnsFor(401))
	assert.Equal(t, 4, b.ColumnsFor(1000))
	assert.Equal(t, 6, b.ColumnsFor(1201))
	assert.Equal(t, 1200.0, b.Steps[0].MaxWidth, "input slice is not reordered")
}
