// Command gridscroll drives the grid windowing strategy from the terminal:
// an interactive grid, a script simulator and a layout calculator.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/go-theft-auto/gridscroll"
	"github.com/go-theft-auto/gridscroll/internal/config"
)

// app carries the state shared by the subcommands.
type app struct {
	// Global flags
	configPath string
	verbose    bool
	logFormat  string
	logFile    string

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "gridscroll",
		Short: "Virtual scrolling for item grids",
		Long: `gridscroll computes which items of a long grid must be materialized
for the current scroll position, keeping a pixel buffer above and below
the visible area.

Use "tui" to scroll a grid interactively, "simulate" to replay event
scripts and "layout" to inspect the effective configuration.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "gridscroll.yaml", "Config file (missing file means defaults)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "Log encoding: console or json (default from config)")
	root.PersistentFlags().StringVar(&a.logFile, "log-file", "", "Write logs to this file instead of stderr")

	root.AddCommand(a.tuiCmd())
	root.AddCommand(a.simulateCmd())
	root.AddCommand(a.layoutCmd())
	return root
}

// init loads the configuration and builds the logger. Flags override the
// config file.
func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Logging.Verbose = a.verbose
	}
	if a.logFormat != "" {
		cfg.Logging.Format = a.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config %s: %w", a.configPath, err)
	}
	a.cfg = cfg

	logger, err := buildLogger(cfg.Logging, a.logFile)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger
	gridscroll.SetLogger(logger.Named("gridscroll"))
	gridscroll.SetVerbose(cfg.Logging.Verbose)
	return nil
}

func buildLogger(lc config.LoggingConfig, path string) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	zc.Encoding = lc.Format
	if lc.Format == "console" {
		zc.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	if lc.Verbose {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	if path != "" {
		zc.OutputPaths = []string{path}
	}
	return zc.Build()
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
