// Package config loads the YAML settings shared by the gridscroll hosts.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/go-theft-auto/gridscroll"
	"github.com/go-theft-auto/gridscroll/surface"
)

// Config is the file format read by cmd/gridscroll.
type Config struct {
	Layout      gridscroll.Layout   `yaml:"layout"`
	Breakpoints surface.Breakpoints `yaml:"breakpoints"`
	Viewport    ViewportConfig      `yaml:"viewport"`
	Items       int                 `yaml:"items"`
	Scroll      ScrollConfig        `yaml:"scroll"`
	Logging     LoggingConfig       `yaml:"logging"`
}

// ViewportConfig is the initial size of the scrollable region in pixels.
type ViewportConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ScrollConfig tunes host-side scrolling.
type ScrollConfig struct {
	WheelStep float64 `yaml:"wheel_step"`
	Behavior  string  `yaml:"behavior"` // "instant" or "smooth", used for jumps
}

// LoggingConfig controls the zap logger built by the CLI.
type LoggingConfig struct {
	Verbose bool   `yaml:"verbose"`
	Format  string `yaml:"format"` // "console" or "json"
}

// DefaultConfig returns the built-in settings: the default layout, the
// default breakpoints and a 800x600 viewport over 10 000 items.
func DefaultConfig() *Config {
	return &Config{
		Layout:      gridscroll.DefaultLayout(),
		Breakpoints: surface.DefaultBreakpoints(),
		Viewport: ViewportConfig{
			Width:  800,
			Height: 600,
		},
		Items: 10_000,
		Scroll: ScrollConfig{
			WheelStep: 40,
			Behavior:  gridscroll.ScrollSmooth.String(),
		},
		Logging: LoggingConfig{
			Format: "console",
		},
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
// Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the configuration as YAML, creating the directory if needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides applies GRIDSCROLL_* environment variables.
// Unparseable values are ignored.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("GRIDSCROLL_ITEMS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Items = n
		}
	}
	if v := os.Getenv("GRIDSCROLL_COLUMNS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Layout.Columns = n
		}
	}
	if v := os.Getenv("GRIDSCROLL_VERBOSE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Logging.Verbose = b
		}
	}
}

// ValidFormats lists the accepted logging formats.
var ValidFormats = []string{"console", "json"}

// Validate checks the configuration. Layout problems are reported as the
// *gridscroll.ConfigurationError returned by Layout.Validate.
func (c *Config) Validate() error {
	if err := c.Layout.Validate(); err != nil {
		return err
	}
	if c.Items < 0 {
		return fmt.Errorf("items must not be negative, got %d", c.Items)
	}
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		return fmt.Errorf("viewport size must be positive, got %gx%g", c.Viewport.Width, c.Viewport.Height)
	}
	if c.Breakpoints.Default <= 0 {
		return errors.New("breakpoints.default must be at least 1")
	}
	for i, s := range c.Breakpoints.Steps {
		if s.Columns <= 0 || s.MaxWidth <= 0 {
			return fmt.Errorf("breakpoints.steps[%d] needs positive max_width and columns", i)
		}
	}
	switch c.Scroll.Behavior {
	case gridscroll.ScrollInstant.String(), gridscroll.ScrollSmooth.String():
	default:
		return fmt.Errorf("invalid scroll behavior: %s (valid: instant, smooth)", c.Scroll.Behavior)
	}
	validFormat := false
	for _, f := range ValidFormats {
		if c.Logging.Format == f {
			validFormat = true
			break
		}
	}
	if !validFormat {
		return fmt.Errorf("invalid logging format: %s (valid: %v)", c.Logging.Format, ValidFormats)
	}
	return nil
}

// ScrollBehavior returns the configured behavior for index jumps.
func (c *Config) ScrollBehavior() gridscroll.ScrollBehavior {
	return gridscroll.ParseScrollBehavior(c.Scroll.Behavior)
}

// ResponsiveLayout returns the layout with Columns taken from the
// breakpoints for the configured viewport width.
func (c *Config) ResponsiveLayout() gridscroll.Layout {
	l := c.Layout
	if cols := c.Breakpoints.ColumnsFor(c.Viewport.Width); cols > 0 {
		l.Columns = cols
	}
	return l
}
