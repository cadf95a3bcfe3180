package surface_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/gridscroll/surface"
)

func TestViewport_Apply(t *testing.T) {
	vp, _ := boundList(t)

	vp.Apply(surface.CmdLineDown)
	vp.Apply(surface.CmdLineDown)
	assert.Equal(t, 40.0, vp.ScrollOffset())

	vp.Apply(surface.CmdLineUp)
	assert.Equal(t, 20.0, vp.ScrollOffset())

	vp.Apply(surface.CmdPageDown)
	assert.Equal(t, 100.0, vp.ScrollOffset())

	vp.Apply(surface.CmdEnd)
	assert.Equal(t, 19900.0, vp.ScrollOffset())

	vp.Apply(surface.CmdJumpFirst)
	require.True(t, vp.Animating())
	for vp.Step(0.05) {
	}
	assert.Equal(t, 0.0, vp.ScrollOffset())

	// The last item sits on the last row, which starts past MaxScroll.
	vp.Apply(surface.CmdJumpLast)
	for vp.Step(0.05) {
	}
	assert.Equal(t, 19900.0, vp.ScrollOffset())

	vp.Apply(surface.CmdNone)
	assert.Equal(t, 19900.0, vp.ScrollOffset())
}

func TestParseCommand(t *testing.T) {
	for c := surface.CmdNone; c <= surface.CmdJumpLast; c++ {
		got, err := surface.ParseCommand(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}

	_, err := surface.ParseCommand("sideways")
	assert.Error(t, err)
	assert.Equal(t, "Command(42)", surface.Command(42).String())
}
