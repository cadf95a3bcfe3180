package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/gridscroll"
)

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv("GRIDSCROLL_ITEMS", "")
	t.Setenv("GRIDSCROLL_COLUMNS", "")
	t.Setenv("GRIDSCROLL_VERBOSE", "")
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, gridscroll.DefaultLayout(), cfg.Layout)
	assert.Equal(t, 10_000, cfg.Items)
	assert.Equal(t, gridscroll.ScrollSmooth, cfg.ScrollBehavior())
	// 800px falls in the two-column breakpoint.
	assert.Equal(t, 2, cfg.ResponsiveLayout().Columns)
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "gridscroll.yaml")
	data := []byte(`
layout:
  row_size: 130
  columns: 3
  header_height: 50
items: 250
scroll:
  behavior: instant
breakpoints:
  default: 4
  steps:
    - max_width: 600
      columns: 2
`)
	require.NoError(t, os.WriteFile(path, data, 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 130.0, cfg.Layout.RowSize)
	assert.Equal(t, 3, cfg.Layout.Columns)
	assert.Equal(t, 50.0, cfg.Layout.HeaderHeight)
	// Keys absent from the file keep their defaults.
	assert.Equal(t, float64(gridscroll.DefaultMaxBufferPx), cfg.Layout.MaxBufferPx)
	assert.Equal(t, 600.0, cfg.Viewport.Height)
	assert.Equal(t, 250, cfg.Items)
	assert.Equal(t, gridscroll.ScrollInstant, cfg.ScrollBehavior())
	assert.Equal(t, 4, cfg.ResponsiveLayout().Columns)
}

func TestLoad_ParseError(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("layout: [unclosed"), 0644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestConfig_SaveLoad(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nested", "gridscroll.yaml")

	cfg := DefaultConfig()
	cfg.Layout.Columns = 5
	cfg.Logging.Format = "json"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestConfig_EnvOverrides(t *testing.T) {
	t.Setenv("GRIDSCROLL_ITEMS", "42")
	t.Setenv("GRIDSCROLL_COLUMNS", "6")
	t.Setenv("GRIDSCROLL_VERBOSE", "true")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 42, cfg.Items)
	assert.Equal(t, 6, cfg.Layout.Columns)
	assert.True(t, cfg.Logging.Verbose)
}

func TestConfig_EnvOverridesIgnoreGarbage(t *testing.T) {
	t.Setenv("GRIDSCROLL_ITEMS", "lots")
	t.Setenv("GRIDSCROLL_COLUMNS", "")
	t.Setenv("GRIDSCROLL_VERBOSE", "maybe")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestConfig_Validate(t *testing.T) {
	tests := map[string]struct {
		edit    func(*Config)
		wantErr string
	}{
		"negative items":    {func(c *Config) { c.Items = -1 }, "items must not be negative"},
		"zero height":       {func(c *Config) { c.Viewport.Height = 0 }, "viewport size must be positive"},
		"no default cols":   {func(c *Config) { c.Breakpoints.Default = 0 }, "breakpoints.default"},
		"bad step":          {func(c *Config) { c.Breakpoints.Steps[1].Columns = 0 }, "breakpoints.steps[1]"},
		"unknown behavior":  {func(c *Config) { c.Scroll.Behavior = "bouncy" }, "invalid scroll behavior"},
		"unknown log style": {func(c *Config) { c.Logging.Format = "xml" }, "invalid logging format"},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.edit(cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.wantErr)
		})
	}
}

func TestConfig_ValidateLayout(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Layout.MinBufferPx = 500

	err := cfg.Validate()
	var cfgErr *gridscroll.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.ErrorIs(t, err, gridscroll.ErrInvalidBuffer)
}
